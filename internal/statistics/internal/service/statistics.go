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

	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/domain"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrOrganizationNotFound = errors.New("请先创建组织")

//go:generate mockgen -source=./statistics.go -package=statisticsmocks -destination=../../mocks/statistics.mock.go Service
type Service interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)
	// ProviderStats 服务商所在组织的统计
	ProviderStats(ctx context.Context, ownerID int64) (domain.ProviderStats, error)
	CustomerStats(ctx context.Context, customerID int64) (domain.CustomerStats, error)
}

type service struct {
	repo    repository.StatisticsRepository
	mealSvc meal.Service
	orgSvc  organization.Service
}

func NewService(repo repository.StatisticsRepository, mealSvc meal.Service, orgSvc organization.Service) Service {
	return &service{
		repo:    repo,
		mealSvc: mealSvc,
		orgSvc:  orgSvc,
	}
}

func (s *service) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var (
		eg  errgroup.Group
		res domain.AdminStats
		all = repository.Scope{}
	)
	eg.Go(func() error {
		var err error
		res.TotalOrders, err = s.repo.CountOrders(ctx, all)
		return err
	})
	eg.Go(func() error {
		var err error
		res.PaymentStatus, err = s.repo.PaymentStats(ctx, all)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ShippingStatus, err = s.repo.ShippingStats(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.SalesData, err = s.repo.MonthlySales(ctx, all)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalProducts, err = s.mealSvc.Count(ctx, 0)
		return err
	})
	eg.Go(func() error {
		var err error
		res.LowStockProducts, err = s.mealSvc.CountLowStock(ctx, 0)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.AdminStats{}, err
	}
	res.TotalRevenue = paidRevenue(res.PaymentStatus)
	return res, nil
}

func (s *service) ProviderStats(ctx context.Context, ownerID int64) (domain.ProviderStats, error) {
	org, err := s.orgSvc.FindByOwner(ctx, ownerID)
	if errors.Is(err, organization.ErrOrganizationNotFound) {
		return domain.ProviderStats{}, ErrOrganizationNotFound
	}
	if err != nil {
		return domain.ProviderStats{}, err
	}
	var (
		eg    errgroup.Group
		scope = repository.Scope{OrgID: org.ID}
		res   = domain.ProviderStats{
			Organization: domain.Organization{
				Name:  org.Name,
				Phone: org.Contact.Phone,
				Email: org.Contact.Email,
			},
		}
	)
	eg.Go(func() error {
		var err error
		res.TotalOrders, err = s.repo.CountOrders(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.PaymentStatus, err = s.repo.PaymentStats(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.SalesData, err = s.repo.MonthlySales(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ProductStatus, err = s.repo.ItemStats(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TotalProducts, err = s.mealSvc.Count(ctx, org.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		res.LowStockProducts, err = s.mealSvc.CountLowStock(ctx, org.ID)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.ProviderStats{}, err
	}
	res.TotalRevenue = paidRevenue(res.PaymentStatus)
	return res, nil
}

func (s *service) CustomerStats(ctx context.Context, customerID int64) (domain.CustomerStats, error) {
	var (
		eg       errgroup.Group
		scope    = repository.Scope{CustomerID: customerID}
		res      domain.CustomerStats
		payments []domain.PaymentStat
	)
	eg.Go(func() error {
		var err error
		res.TotalOrders, err = s.repo.CountOrders(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		payments, err = s.repo.PaymentStats(ctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ItemStatus, err = s.repo.ItemStats(ctx, scope)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.CustomerStats{}, err
	}
	res.TotalSpent = paidRevenue(payments)
	for _, item := range res.ItemStatus {
		res.TotalProducts += item.TotalQuantity
	}
	return res, nil
}

func paidRevenue(stats []domain.PaymentStat) decimal.Decimal {
	return domain.Revenue(stats, order.PaymentStatusPaid.ToString()).Round(2)
}
