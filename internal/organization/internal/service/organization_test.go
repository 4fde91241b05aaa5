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
	"testing"

	"github.com/ecodeclub/mealhub/internal/organization/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization/internal/repository"
	repomocks "github.com/ecodeclub/mealhub/internal/organization/internal/repository/mocks"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOrganizationService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.OrganizationRepository
		org     domain.Organization
		wantId  int64
		wantErr error
	}{
		{
			name: "创建成功，强制为未审核",
			mock: func(ctrl *gomock.Controller) repository.OrganizationRepository {
				repo := repomocks.NewMockOrganizationRepository(ctrl)
				repo.EXPECT().FindByOwner(gomock.Any(), int64(7)).Return(domain.Organization{}, ErrOrganizationNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.Organization{Name: "Green Bowl", OwnerID: 7}).Return(int64(3), nil)
				return repo
			},
			org:    domain.Organization{ID: 100, Name: "Green Bowl", OwnerID: 7, IsVerified: true},
			wantId: 3,
		},
		{
			name: "已经有组织",
			mock: func(ctrl *gomock.Controller) repository.OrganizationRepository {
				repo := repomocks.NewMockOrganizationRepository(ctrl)
				repo.EXPECT().FindByOwner(gomock.Any(), int64(7)).Return(domain.Organization{ID: 1, OwnerID: 7}, nil)
				return repo
			},
			org:     domain.Organization{Name: "Green Bowl", OwnerID: 7},
			wantErr: ErrDuplicateOwner,
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.OrganizationRepository {
				repo := repomocks.NewMockOrganizationRepository(ctrl)
				repo.EXPECT().FindByOwner(gomock.Any(), int64(7)).Return(domain.Organization{}, errors.New("db 错误"))
				return repo
			},
			org:     domain.Organization{Name: "Green Bowl", OwnerID: 7},
			wantErr: errors.New("db 错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewOrganizationService(tc.mock(ctrl))
			id, err := svc.Create(context.Background(), tc.org)
			if tc.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestOrganizationService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrganizationRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(404)).Return(domain.Organization{}, ErrOrganizationNotFound)
	repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Organization{ID: 1}, nil)
	repo.EXPECT().Verify(gomock.Any(), int64(1)).Return(nil)
	svc := NewOrganizationService(repo)

	assert.ErrorIs(t, svc.Verify(context.Background(), 404), ErrOrganizationNotFound)
	assert.NoError(t, svc.Verify(context.Background(), 1))
}

func TestOrganizationService_ListUnverified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrganizationRepository(ctrl)
	repo.EXPECT().ListUnverified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, b *querybuilder.Builder) ([]domain.Organization, error) {
			assert.Equal(t, 2, b.Page())
			assert.Equal(t, 5, b.Limit())
			return []domain.Organization{{ID: 6}}, nil
		})
	repo.EXPECT().CountUnverified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error) {
			return b.Meta(6), nil
		})
	svc := NewOrganizationService(repo)
	orgs, meta, err := svc.ListUnverified(context.Background(), map[string]string{"page": "2", "limit": "5"})
	assert.NoError(t, err)
	assert.Equal(t, []domain.Organization{{ID: 6}}, orgs)
	assert.Equal(t, querybuilder.Meta{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, meta)
}
