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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	tableOrders     = "orders"
	tableOrderItems = "order_items"
	statusPaid      = "Paid"
)

// Scope 为 0 的字段不参与过滤，OrgId 不为 0 的时候按订单项统计
type Scope struct {
	OrgId      int64
	CustomerId int64
}

type StatisticsDAO interface {
	CountOrders(ctx context.Context, scope Scope) (int64, error)
	PaymentStatusStats(ctx context.Context, scope Scope) ([]StatusAgg, error)
	ShippingStatusStats(ctx context.Context) ([]StatusAgg, error)
	// MonthlySales 只统计已支付订单
	MonthlySales(ctx context.Context, scope Scope) ([]MonthAgg, error)
	ItemStatusStats(ctx context.Context, scope Scope) ([]ItemStatusAgg, error)
}

type StatusAgg struct {
	Status  string
	Cnt     int64
	Revenue decimal.Decimal
}

type MonthAgg struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
	Orders  int64
}

type ItemStatusAgg struct {
	Status   string
	Cnt      int64
	Quantity int64
}

type StatisticsGORMDAO struct {
	db *egorm.Component
}

func NewStatisticsGORMDAO(db *egorm.Component) StatisticsDAO {
	return &StatisticsGORMDAO{db: db}
}

func (d *StatisticsGORMDAO) CountOrders(ctx context.Context, scope Scope) (int64, error) {
	var res int64
	if scope.OrgId > 0 {
		err := d.db.WithContext(ctx).Table(tableOrderItems).
			Where("org_id = ?", scope.OrgId).
			Distinct("order_id").
			Count(&res).Error
		return res, err
	}
	err := d.orders(ctx, scope).Count(&res).Error
	return res, err
}

// PaymentStatusStats 按订单统计的时候金额是订单总价，按组织统计的时候是订单项的单价乘以数量
func (d *StatisticsGORMDAO) PaymentStatusStats(ctx context.Context, scope Scope) ([]StatusAgg, error) {
	var res []StatusAgg
	if scope.OrgId > 0 {
		err := d.orgItems(ctx, scope.OrgId).
			Select("o.payment_status AS status, COUNT(DISTINCT o.id) AS cnt, " +
				"COALESCE(SUM(i.unit_price * i.quantity), 0) AS revenue").
			Group("o.payment_status").
			Scan(&res).Error
		return res, err
	}
	err := d.orders(ctx, scope).
		Select("payment_status AS status, COUNT(*) AS cnt, COALESCE(SUM(total_price), 0) AS revenue").
		Group("payment_status").
		Scan(&res).Error
	return res, err
}

func (d *StatisticsGORMDAO) ShippingStatusStats(ctx context.Context) ([]StatusAgg, error) {
	var res []StatusAgg
	err := d.db.WithContext(ctx).Table(tableOrders).
		Select("shipping_status AS status, COUNT(*) AS cnt").
		Group("shipping_status").
		Scan(&res).Error
	return res, err
}

func (d *StatisticsGORMDAO) MonthlySales(ctx context.Context, scope Scope) ([]MonthAgg, error) {
	var res []MonthAgg
	if scope.OrgId > 0 {
		err := d.orgItems(ctx, scope.OrgId).
			Where("o.payment_status = ?", statusPaid).
			Select("YEAR(FROM_UNIXTIME(o.ctime DIV 1000)) AS year, MONTH(FROM_UNIXTIME(o.ctime DIV 1000)) AS month, " +
				"SUM(i.unit_price * i.quantity) AS revenue, COUNT(DISTINCT o.id) AS orders").
			Group("year, month").
			Order("year, month").
			Scan(&res).Error
		return res, err
	}
	err := d.orders(ctx, scope).
		Where("payment_status = ?", statusPaid).
		Select("YEAR(FROM_UNIXTIME(ctime DIV 1000)) AS year, MONTH(FROM_UNIXTIME(ctime DIV 1000)) AS month, " +
			"SUM(total_price) AS revenue, COUNT(*) AS orders").
		Group("year, month").
		Order("year, month").
		Scan(&res).Error
	return res, err
}

func (d *StatisticsGORMDAO) ItemStatusStats(ctx context.Context, scope Scope) ([]ItemStatusAgg, error) {
	db := d.db.WithContext(ctx).Table(tableOrderItems + " AS i")
	if scope.OrgId > 0 {
		db = db.Where("i.org_id = ?", scope.OrgId)
	}
	if scope.CustomerId > 0 {
		db = db.Joins("JOIN "+tableOrders+" AS o ON o.id = i.order_id").
			Where("o.customer_id = ?", scope.CustomerId)
	}
	var res []ItemStatusAgg
	err := db.Select("i.status AS status, COUNT(*) AS cnt, COALESCE(SUM(i.quantity), 0) AS quantity").
		Group("i.status").
		Scan(&res).Error
	return res, err
}

func (d *StatisticsGORMDAO) orders(ctx context.Context, scope Scope) *gorm.DB {
	db := d.db.WithContext(ctx).Table(tableOrders)
	if scope.CustomerId > 0 {
		db = db.Where("customer_id = ?", scope.CustomerId)
	}
	return db
}

func (d *StatisticsGORMDAO) orgItems(ctx context.Context, orgId int64) *gorm.DB {
	return d.db.WithContext(ctx).Table(tableOrderItems+" AS i").
		Joins("JOIN "+tableOrders+" AS o ON o.id = i.order_id").
		Where("i.org_id = ?", orgId)
}
