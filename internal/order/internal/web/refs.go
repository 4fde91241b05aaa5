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

package web

import (
	"context"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// refLoader 批量加载订单里面引用的餐品、组织和用户
type refLoader struct {
	mealSvc meal.Service
	orgSvc  organization.Service
	userSvc user.Service
	logger  *elog.Component
}

func newRefLoader(mealSvc meal.Service, orgSvc organization.Service, userSvc user.Service) *refLoader {
	return &refLoader{
		mealSvc: mealSvc,
		orgSvc:  orgSvc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

// load 关联数据只是用来展示的，加载失败的时候记录日志，返回不带关联数据的结果
func (l *refLoader) load(ctx context.Context, orders []domain.Order) refs {
	if len(orders) == 0 {
		return refs{}
	}
	mealIDs := make(map[int64]struct{}, len(orders))
	orgIDs := make(map[int64]struct{}, len(orders))
	customerIDs := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		customerIDs[o.CustomerID] = struct{}{}
		for _, item := range o.Items {
			mealIDs[item.MealID] = struct{}{}
			orgIDs[item.OrgID] = struct{}{}
		}
	}

	var res refs
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.meals, err = l.mealSvc.FindByIDs(ctx, mapx.Keys(mealIDs))
		return err
	})
	eg.Go(func() error {
		var err error
		res.orgs, err = l.orgSvc.FindByIDs(ctx, mapx.Keys(orgIDs))
		return err
	})
	eg.Go(func() error {
		var err error
		res.customers, err = l.userSvc.FindByIDs(ctx, mapx.Keys(customerIDs))
		return err
	})
	if err := eg.Wait(); err != nil {
		l.logger.Error("加载订单关联数据失败", elog.FieldErr(err))
	}
	return res
}
