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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mealhub/internal/organization/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
)

var (
	ErrOrganizationNotFound = dao.ErrRecordNotFound
	ErrDuplicateOwner       = dao.ErrDuplicateOwner
)

//go:generate mockgen -source=./organization.go -package=repomocks -destination=mocks/organization.mock.go OrganizationRepository
type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Organization, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Organization, error)
	FindByOwner(ctx context.Context, ownerId int64) (domain.Organization, error)
	Verify(ctx context.Context, id int64) error
	ListUnverified(ctx context.Context, b *querybuilder.Builder) ([]domain.Organization, error)
	CountUnverified(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error)
}

type organizationRepository struct {
	dao dao.OrganizationDAO
}

func NewOrganizationRepository(d dao.OrganizationDAO) OrganizationRepository {
	return &organizationRepository{
		dao: d,
	}
}

func (r *organizationRepository) Create(ctx context.Context, org domain.Organization) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(org))
}

func (r *organizationRepository) FindById(ctx context.Context, id int64) (domain.Organization, error) {
	org, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Organization{}, err
	}
	return r.toDomain(org), nil
}

func (r *organizationRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Organization, error) {
	orgs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(orgs, func(idx int, src dao.Organization) domain.Organization {
		return r.toDomain(src)
	}), nil
}

func (r *organizationRepository) FindByOwner(ctx context.Context, ownerId int64) (domain.Organization, error) {
	org, err := r.dao.FindByOwner(ctx, ownerId)
	if err != nil {
		return domain.Organization{}, err
	}
	return r.toDomain(org), nil
}

func (r *organizationRepository) Verify(ctx context.Context, id int64) error {
	return r.dao.Verify(ctx, id)
}

func (r *organizationRepository) ListUnverified(ctx context.Context, b *querybuilder.Builder) ([]domain.Organization, error) {
	orgs, err := r.dao.ListUnverified(ctx, b)
	if err != nil {
		return nil, err
	}
	return slice.Map(orgs, func(idx int, src dao.Organization) domain.Organization {
		return r.toDomain(src)
	}), nil
}

func (r *organizationRepository) CountUnverified(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error) {
	return r.dao.CountUnverified(ctx, b)
}

func (r *organizationRepository) toEntity(org domain.Organization) dao.Organization {
	return dao.Organization{
		Id:          org.ID,
		Name:        org.Name,
		OwnerId:     org.OwnerID,
		Logo:        org.Logo,
		Description: org.Description,
		Street:      org.Address.Street,
		City:        org.Address.City,
		State:       org.Address.State,
		Zip:         org.Address.Zip,
		Phone:       org.Contact.Phone,
		Email:       org.Contact.Email,
		Website:     org.Contact.Website,
		IsVerified:  org.IsVerified,
	}
}

func (r *organizationRepository) toDomain(org dao.Organization) domain.Organization {
	return domain.Organization{
		ID:          org.Id,
		Name:        org.Name,
		OwnerID:     org.OwnerId,
		Logo:        org.Logo,
		Description: org.Description,
		Address: domain.Address{
			Street: org.Street,
			City:   org.City,
			State:  org.State,
			Zip:    org.Zip,
		},
		Contact: domain.Contact{
			Phone:   org.Phone,
			Email:   org.Email,
			Website: org.Website,
		},
		IsVerified: org.IsVerified,
		Ctime:      org.Ctime,
		Utime:      org.Utime,
	}
}
