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
	"time"

	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./order.go -package=daomocks -destination=mocks/order.mock.go OrderDAO
type OrderDAO interface {
	// Create 订单和订单项在同一个事务里面写入
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	AttachTransaction(ctx context.Context, id int64, txnId, txnStatus string) error
	// UpdatePayment 网关信息总是覆盖，支付状态只有在当前是 from 的时候才会改成 to，返回是否发生了状态变更
	UpdatePayment(ctx context.Context, txn Transaction, from, to string) (bool, error)
	// CancelUnpaid 没有拿到网关订单号的订单，超时之后直接关闭
	CancelUnpaid(ctx context.Context, id int64, from, to string) (bool, error)
	UpdateItemStatus(ctx context.Context, orderId, mealId, orgId int64, status string) error
	UpdateShippingStatus(ctx context.Context, id int64, status string) error
	FindById(ctx context.Context, id int64) (Order, error)
	FindByTxnId(ctx context.Context, txnId string) (Order, error)
	// FindItems orgId 不为 0 的时候只返回该组织的订单项
	FindItems(ctx context.Context, orderIds []int64, orgId int64) ([]OrderItem, error)
	List(ctx context.Context, b *querybuilder.Builder, scope Scope) ([]Order, error)
	CountTotal(ctx context.Context, b *querybuilder.Builder, scope Scope) (querybuilder.Meta, error)
	ListUnpaid(ctx context.Context, q UnpaidQuery) ([]Order, error)
}

// Scope 各个列表接口固定的查询范围，不受前端参数影响
type Scope struct {
	CustomerId       int64
	OrgId            int64
	ShippingStatuses []string
}

type UnpaidQuery struct {
	Status string
	// 是否已经拿到网关订单号
	HasTxn     bool
	CtimeStart int64
	CtimeEnd   int64
	AfterId    int64
	Limit      int
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return o.Id, err
}

func (d *OrderGORMDAO) AttachTransaction(ctx context.Context, id int64, txnId, txnStatus string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"txn_id":                 txnId,
			"txn_transaction_status": txnStatus,
			"utime":                  time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdatePayment(ctx context.Context, txn Transaction, from, to string) (bool, error) {
	var changed bool
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := txn.columns()
		cols["utime"] = time.Now().UnixMilli()
		if to != "" {
			cols["payment_status"] = to
			res := tx.Model(&Order{}).
				Where("txn_id = ? AND payment_status = ?", txn.Id, from).
				Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				changed = true
				return nil
			}
			delete(cols, "payment_status")
		}
		res := tx.Model(&Order{}).Where("txn_id = ?", txn.Id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
	return changed, err
}

func (d *OrderGORMDAO) CancelUnpaid(ctx context.Context, id int64, from, to string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND payment_status = ? AND txn_id = ?", id, from, "").
		Updates(map[string]any{
			"payment_status": to,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *OrderGORMDAO) UpdateItemStatus(ctx context.Context, orderId, mealId, orgId int64, status string) error {
	db := d.db.WithContext(ctx).Model(&OrderItem{}).
		Where("order_id = ? AND meal_id = ?", orderId, mealId)
	if orgId > 0 {
		db = db.Where("org_id = ?", orgId)
	}
	res := db.Updates(map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *OrderGORMDAO) UpdateShippingStatus(ctx context.Context, id int64, status string) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"shipping_status": status,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *OrderGORMDAO) FindById(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByTxnId(ctx context.Context, txnId string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("txn_id = ?", txnId).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItems(ctx context.Context, orderIds []int64, orgId int64) ([]OrderItem, error) {
	if len(orderIds) == 0 {
		return nil, nil
	}
	db := d.db.WithContext(ctx).Where("order_id IN ?", orderIds)
	if orgId > 0 {
		db = db.Where("org_id = ?", orgId)
	}
	var res []OrderItem
	err := db.Order("id").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, b *querybuilder.Builder, scope Scope) ([]Order, error) {
	var res []Order
	db := d.scoped(d.db.WithContext(ctx).Model(&Order{}), scope)
	err := b.Query(db).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountTotal(ctx context.Context, b *querybuilder.Builder, scope Scope) (querybuilder.Meta, error) {
	return b.CountTotal(ctx, d.scoped(d.db.WithContext(ctx).Model(&Order{}), scope))
}

func (d *OrderGORMDAO) scoped(db *gorm.DB, scope Scope) *gorm.DB {
	if scope.CustomerId > 0 {
		db = db.Where("customer_id = ?", scope.CustomerId)
	}
	if scope.OrgId > 0 {
		sub := d.db.Model(&OrderItem{}).Select("order_id").Where("org_id = ?", scope.OrgId)
		db = db.Where("id IN (?)", sub)
	}
	if len(scope.ShippingStatuses) > 0 {
		db = db.Where("shipping_status IN ?", scope.ShippingStatuses)
	}
	return db
}

func (d *OrderGORMDAO) ListUnpaid(ctx context.Context, q UnpaidQuery) ([]Order, error) {
	db := d.db.WithContext(ctx).
		Where("payment_status = ? AND id > ? AND ctime >= ? AND ctime < ?", q.Status, q.AfterId, q.CtimeStart, q.CtimeEnd)
	if q.HasTxn {
		db = db.Where("txn_id <> ?", "")
	} else {
		db = db.Where("txn_id = ?", "")
	}
	var res []Order
	err := db.Order("id").Limit(q.Limit).Find(&res).Error
	return res, err
}
