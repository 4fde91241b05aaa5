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
	"testing"

	"github.com/ecodeclub/mealhub/internal/meal"
	mealmocks "github.com/ecodeclub/mealhub/internal/meal/mocks"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization"
	orgmocks "github.com/ecodeclub/mealhub/internal/organization/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInventoryGate_Check(t *testing.T) {
	soup := meal.Meal{ID: 1, OrgID: 100, Price: decimal.RequireFromString("12.5"), InStock: true}
	rice := meal.Meal{ID: 2, OrgID: 200, Price: decimal.RequireFromString("2.5"), InStock: true}
	verified := map[int64]organization.Organization{
		100: {ID: 100, IsVerified: true},
		200: {ID: 200, IsVerified: true},
	}
	testCases := []struct {
		name      string
		reqs      []domain.ItemRequest
		mock      func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService)
		wantItems []domain.LineItem
		wantTotal string
		wantErr   error
	}{
		{
			name: "全部可售",
			reqs: []domain.ItemRequest{{MealID: 1, Quantity: 2}, {MealID: 2, Quantity: 3}},
			mock: func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(soup, nil)
				svc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(rice, nil)
				orgSvc.EXPECT().FindByIDs(gomock.Any(), gomock.InAnyOrder([]int64{100, 200})).Return(verified, nil)
			},
			wantItems: []domain.LineItem{
				{MealID: 1, OrgID: 100, Quantity: 2, UnitPrice: soup.Price, Status: domain.ItemStatusPending},
				{MealID: 2, OrgID: 200, Quantity: 3, UnitPrice: rice.Price, Status: domain.ItemStatusPending},
			},
			// (25 + 7.5) * 1.1
			wantTotal: "35.75",
		},
		{
			name: "餐品不存在",
			reqs: []domain.ItemRequest{{MealID: 3, Quantity: 1}},
			mock: func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(3)).Return(meal.Meal{}, meal.ErrMealNotFound)
			},
			wantErr: ErrMealNotFound,
		},
		{
			name: "已下架",
			reqs: []domain.ItemRequest{{MealID: 1, Quantity: 1}},
			mock: func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(meal.Meal{ID: 1, OrgID: 100, Price: soup.Price}, nil)
			},
			wantErr: ErrOutOfStock,
		},
		{
			name: "组织还没有通过审核",
			reqs: []domain.ItemRequest{{MealID: 1, Quantity: 1}, {MealID: 2, Quantity: 1}},
			mock: func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(soup, nil)
				svc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(rice, nil)
				orgSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
					Return(map[int64]organization.Organization{
						100: {ID: 100, IsVerified: true},
						200: {ID: 200},
					}, nil)
			},
			wantErr: ErrMealUnavailable,
		},
		{
			name: "组织已经不存在",
			reqs: []domain.ItemRequest{{MealID: 1, Quantity: 1}},
			mock: func(svc *mealmocks.MockService, orgSvc *orgmocks.MockOrganizationService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(soup, nil)
				orgSvc.EXPECT().FindByIDs(gomock.Any(), []int64{100}).
					Return(map[int64]organization.Organization{}, nil)
			},
			wantErr: ErrMealUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mealmocks.NewMockService(ctrl)
			orgSvc := orgmocks.NewMockOrganizationService(ctrl)
			tc.mock(svc, orgSvc)
			items, total, err := NewInventoryGate(svc, orgSvc).Check(context.Background(), tc.reqs)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantItems, items)
			assert.Equal(t, tc.wantTotal, total.StringFixed(2))
		})
	}
}
