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
	"fmt"
	"slices"

	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./gate.go -package=svcmocks -destination=mocks/gate.mock.go InventoryGate
type InventoryGate interface {
	// Check 校验每一个餐品都存在、在售并且所属组织已经通过审核，按照当前价格生成订单项和总价
	Check(ctx context.Context, reqs []domain.ItemRequest) ([]domain.LineItem, decimal.Decimal, error)
}

type inventoryGate struct {
	mealSvc meal.Service
	orgSvc  organization.Service
}

func NewInventoryGate(mealSvc meal.Service, orgSvc organization.Service) InventoryGate {
	return &inventoryGate{mealSvc: mealSvc, orgSvc: orgSvc}
}

func (g *inventoryGate) Check(ctx context.Context, reqs []domain.ItemRequest) ([]domain.LineItem, decimal.Decimal, error) {
	items := make([]domain.LineItem, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		eg.Go(func() error {
			m, err := g.mealSvc.FindByID(ctx, req.MealID)
			if errors.Is(err, meal.ErrMealNotFound) {
				return fmt.Errorf("%w, id %d", ErrMealNotFound, req.MealID)
			}
			if err != nil {
				return err
			}
			if !m.InStock {
				return fmt.Errorf("%w, id %d", ErrOutOfStock, req.MealID)
			}
			// 每个 goroutine 只写自己的下标
			items[i] = domain.LineItem{
				MealID:    m.ID,
				OrgID:     m.OrgID,
				Quantity:  req.Quantity,
				UnitPrice: m.Price,
				Status:    domain.ItemStatusPending,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, decimal.Zero, err
	}
	if err := g.checkOrgs(ctx, items); err != nil {
		return nil, decimal.Zero, err
	}
	return items, domain.TotalPrice(items), nil
}

// checkOrgs 组织被删除或者还没审核，它的餐品都不能下单
func (g *inventoryGate) checkOrgs(ctx context.Context, items []domain.LineItem) error {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !slices.Contains(ids, item.OrgID) {
			ids = append(ids, item.OrgID)
		}
	}
	orgs, err := g.orgSvc.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, item := range items {
		if org, ok := orgs[item.OrgID]; !ok || !org.IsVerified {
			return fmt.Errorf("%w, id %d", ErrMealUnavailable, item.MealID)
		}
	}
	return nil
}
