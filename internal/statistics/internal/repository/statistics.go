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
	"github.com/ecodeclub/mealhub/internal/statistics/internal/domain"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/repository/dao"
)

// Scope 为 0 的字段不参与过滤
type Scope struct {
	OrgID      int64
	CustomerID int64
}

//go:generate mockgen -source=./statistics.go -package=repomocks -destination=mocks/statistics.mock.go StatisticsRepository
type StatisticsRepository interface {
	CountOrders(ctx context.Context, scope Scope) (int64, error)
	PaymentStats(ctx context.Context, scope Scope) ([]domain.PaymentStat, error)
	ShippingStats(ctx context.Context) ([]domain.ShippingStat, error)
	MonthlySales(ctx context.Context, scope Scope) ([]domain.MonthlySale, error)
	ItemStats(ctx context.Context, scope Scope) ([]domain.ItemStat, error)
}

type statisticsRepository struct {
	dao dao.StatisticsDAO
}

func NewStatisticsRepository(d dao.StatisticsDAO) StatisticsRepository {
	return &statisticsRepository{dao: d}
}

func (r *statisticsRepository) CountOrders(ctx context.Context, scope Scope) (int64, error) {
	return r.dao.CountOrders(ctx, r.toScope(scope))
}

func (r *statisticsRepository) PaymentStats(ctx context.Context, scope Scope) ([]domain.PaymentStat, error) {
	aggs, err := r.dao.PaymentStatusStats(ctx, r.toScope(scope))
	if err != nil {
		return nil, err
	}
	return domain.ClosePaymentStats(slice.Map(aggs, func(idx int, src dao.StatusAgg) domain.PaymentStat {
		return domain.PaymentStat{
			Status:  src.Status,
			Orders:  src.Cnt,
			Revenue: src.Revenue,
		}
	})), nil
}

func (r *statisticsRepository) ShippingStats(ctx context.Context) ([]domain.ShippingStat, error) {
	aggs, err := r.dao.ShippingStatusStats(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CloseShippingStats(slice.Map(aggs, func(idx int, src dao.StatusAgg) domain.ShippingStat {
		return domain.ShippingStat{
			Status: src.Status,
			Orders: src.Cnt,
		}
	})), nil
}

func (r *statisticsRepository) MonthlySales(ctx context.Context, scope Scope) ([]domain.MonthlySale, error) {
	aggs, err := r.dao.MonthlySales(ctx, r.toScope(scope))
	if err != nil {
		return nil, err
	}
	return slice.Map(aggs, func(idx int, src dao.MonthAgg) domain.MonthlySale {
		return domain.MonthlySale{
			Year:    src.Year,
			Month:   src.Month,
			Revenue: src.Revenue,
			Orders:  src.Orders,
		}
	}), nil
}

func (r *statisticsRepository) ItemStats(ctx context.Context, scope Scope) ([]domain.ItemStat, error) {
	aggs, err := r.dao.ItemStatusStats(ctx, r.toScope(scope))
	if err != nil {
		return nil, err
	}
	return domain.CloseItemStats(slice.Map(aggs, func(idx int, src dao.ItemStatusAgg) domain.ItemStat {
		return domain.ItemStat{
			Status:        src.Status,
			Count:         src.Cnt,
			TotalQuantity: src.Quantity,
		}
	})), nil
}

func (r *statisticsRepository) toScope(scope Scope) dao.Scope {
	return dao.Scope{
		OrgId:      scope.OrgID,
		CustomerId: scope.CustomerID,
	}
}
