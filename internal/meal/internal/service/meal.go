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

	"github.com/ecodeclub/mealhub/internal/meal/internal/domain"
	"github.com/ecodeclub/mealhub/internal/meal/internal/repository"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMealNotFound           = repository.ErrMealNotFound
	ErrInsufficientStock      = repository.ErrInsufficientStock
	ErrOrganizationNotFound   = errors.New("请先创建组织")
	ErrOrganizationUnverified = errors.New("组织还没有通过审核")
)

// 公开列表允许的查询参数
var listColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"category":    "category",
	"price":       "price",
	"quantity":    "quantity",
	"inStock":     "in_stock",
	"orgId":       "org_id",
}

//go:generate mockgen -source=./meal.go -package=mealmocks -destination=../../mocks/meal.mock.go Service
type Service interface {
	// Create ownerID 是服务商的用户 ID，餐品挂在他已审核的组织下面
	Create(ctx context.Context, ownerID int64, meal domain.Meal) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Meal, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Meal, error)
	Reserve(ctx context.Context, items []domain.StockItem) error
	Release(ctx context.Context, items []domain.StockItem) error
	UpdateStock(ctx context.Context, ownerID int64, meal domain.Meal) error
	ListByOrg(ctx context.Context, orgID int64) ([]domain.Meal, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Meal, error)
	List(ctx context.Context, query map[string]string) ([]domain.Meal, querybuilder.Meta, error)
	Count(ctx context.Context, orgID int64) (int64, error)
	CountLowStock(ctx context.Context, orgID int64) (int64, error)
}

type service struct {
	repo   repository.MealRepository
	orgSvc organization.Service
}

func NewService(repo repository.MealRepository, orgSvc organization.Service) Service {
	return &service{repo: repo, orgSvc: orgSvc}
}

func (s *service) Create(ctx context.Context, ownerID int64, m domain.Meal) (int64, error) {
	org, err := s.verifiedOrg(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	m.ID = 0
	m.OrgID = org.ID
	return s.repo.Create(ctx, m)
}

func (s *service) verifiedOrg(ctx context.Context, ownerID int64) (organization.Organization, error) {
	org, err := s.orgSvc.FindByOwner(ctx, ownerID)
	if errors.Is(err, organization.ErrOrganizationNotFound) {
		return organization.Organization{}, ErrOrganizationNotFound
	}
	if err != nil {
		return organization.Organization{}, err
	}
	if !org.IsVerified {
		return organization.Organization{}, ErrOrganizationUnverified
	}
	return org, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Meal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Meal, error) {
	ms, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Meal, len(ms))
	for _, m := range ms {
		res[m.ID] = m
	}
	return res, nil
}

func (s *service) Reserve(ctx context.Context, items []domain.StockItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.repo.Reserve(ctx, items)
}

func (s *service) Release(ctx context.Context, items []domain.StockItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.repo.Release(ctx, items)
}

func (s *service) UpdateStock(ctx context.Context, ownerID int64, m domain.Meal) error {
	org, err := s.verifiedOrg(ctx, ownerID)
	if err != nil {
		return err
	}
	// 只能改自己组织的餐品
	m.OrgID = org.ID
	return s.repo.UpdateStock(ctx, m)
}

func (s *service) ListByOrg(ctx context.Context, orgID int64) ([]domain.Meal, error) {
	return s.repo.ListByOrg(ctx, orgID)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Meal, error) {
	org, err := s.verifiedOrg(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOrg(ctx, org.ID)
}

func (s *service) List(ctx context.Context, query map[string]string) ([]domain.Meal, querybuilder.Meta, error) {
	b := querybuilder.NewBuilder(query, querybuilder.WithColumns(listColumns)).
		Search("name", "description", "category").
		Filter().
		FilterByRange("price").
		Sort().
		Paginate().
		Fields()
	var (
		eg   errgroup.Group
		ms   []domain.Meal
		meta querybuilder.Meta
	)
	eg.Go(func() error {
		var err error
		ms, err = s.repo.List(ctx, b)
		return err
	})
	eg.Go(func() error {
		var err error
		meta, err = s.repo.CountTotal(ctx, b)
		return err
	})
	return ms, meta, eg.Wait()
}

func (s *service) Count(ctx context.Context, orgID int64) (int64, error) {
	return s.repo.Count(ctx, orgID)
}

func (s *service) CountLowStock(ctx context.Context, orgID int64) (int64, error) {
	return s.repo.CountLowStock(ctx, orgID, domain.LowStockThreshold)
}
