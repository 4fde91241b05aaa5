// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mealhub/internal/organization/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization/internal/repository"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrganizationNotFound = repository.ErrOrganizationNotFound
	ErrDuplicateOwner       = repository.ErrDuplicateOwner
)

// 未审核列表可以按这些字段搜索和排序
var listColumns = map[string]string{
	"name": "name",
	"city": "city",
}

//go:generate mockgen -source=./organization.go -package=orgmocks -destination=../../mocks/organization.mock.go OrganizationService
type OrganizationService interface {
	// Create 每个服务商只能有一个组织，新建的组织都是未审核状态
	Create(ctx context.Context, org domain.Organization) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Organization, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Organization, error)
	FindByOwner(ctx context.Context, ownerID int64) (domain.Organization, error)
	Verify(ctx context.Context, id int64) error
	ListUnverified(ctx context.Context, query map[string]string) ([]domain.Organization, querybuilder.Meta, error)
}

type organizationService struct {
	repo repository.OrganizationRepository
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{
		repo: repo,
	}
}

func (s *organizationService) Create(ctx context.Context, org domain.Organization) (int64, error) {
	_, err := s.repo.FindByOwner(ctx, org.OwnerID)
	switch {
	case err == nil:
		return 0, ErrDuplicateOwner
	case !errors.Is(err, ErrOrganizationNotFound):
		return 0, err
	}
	org.ID = 0
	org.IsVerified = false
	return s.repo.Create(ctx, org)
}

func (s *organizationService) FindByID(ctx context.Context, id int64) (domain.Organization, error) {
	return s.repo.FindById(ctx, id)
}

func (s *organizationService) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Organization, error) {
	orgs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Organization, len(orgs))
	for _, org := range orgs {
		res[org.ID] = org
	}
	return res, nil
}

func (s *organizationService) FindByOwner(ctx context.Context, ownerID int64) (domain.Organization, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *organizationService) Verify(ctx context.Context, id int64) error {
	if _, err := s.repo.FindById(ctx, id); err != nil {
		return err
	}
	return s.repo.Verify(ctx, id)
}

func (s *organizationService) ListUnverified(ctx context.Context, query map[string]string) ([]domain.Organization, querybuilder.Meta, error) {
	b := querybuilder.NewBuilder(query, querybuilder.WithColumns(listColumns)).
		Search("name", "city").
		Sort().
		Paginate()
	var (
		eg   errgroup.Group
		orgs []domain.Organization
		meta querybuilder.Meta
	)
	eg.Go(func() error {
		var err error
		orgs, err = s.repo.ListUnverified(ctx, b)
		return err
	})
	eg.Go(func() error {
		var err error
		meta, err = s.repo.CountUnverified(ctx, b)
		return err
	})
	return orgs, meta, eg.Wait()
}
