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
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
)

var ErrOrderNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./order.go -package=repomocks -destination=mocks/order.mock.go OrderRepository
type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	AttachTransaction(ctx context.Context, id int64, txn domain.Transaction) error
	// UpdatePayment 只有 Pending 的订单会变更支付状态，返回是否变更
	UpdatePayment(ctx context.Context, txn domain.Transaction, status domain.PaymentStatus) (bool, error)
	CancelUnpaid(ctx context.Context, id int64) (bool, error)
	UpdateItemStatus(ctx context.Context, orderID, mealID, orgID int64, status domain.ItemStatus) error
	UpdateShippingStatus(ctx context.Context, id int64, status domain.ShippingStatus) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByTransactionID(ctx context.Context, txnID string) (domain.Order, error)
	List(ctx context.Context, b *querybuilder.Builder, scope domain.Scope) ([]domain.Order, error)
	CountTotal(ctx context.Context, b *querybuilder.Builder, scope domain.Scope) (querybuilder.Meta, error)
	ListUnpaid(ctx context.Context, q domain.UnpaidQuery) ([]domain.Order, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o), slice.Map(o.Items, func(idx int, src domain.LineItem) dao.OrderItem {
		return dao.OrderItem{
			MealId:    src.MealID,
			OrgId:     src.OrgID,
			Quantity:  src.Quantity,
			UnitPrice: src.UnitPrice,
			Status:    src.Status.ToString(),
		}
	}))
}

func (r *orderRepository) AttachTransaction(ctx context.Context, id int64, txn domain.Transaction) error {
	return r.dao.AttachTransaction(ctx, id, txn.ID, txn.TransactionStatus)
}

func (r *orderRepository) UpdatePayment(ctx context.Context, txn domain.Transaction, status domain.PaymentStatus) (bool, error) {
	return r.dao.UpdatePayment(ctx, r.toTransactionEntity(txn),
		domain.PaymentStatusPending.ToString(), status.ToString())
}

func (r *orderRepository) CancelUnpaid(ctx context.Context, id int64) (bool, error) {
	return r.dao.CancelUnpaid(ctx, id,
		domain.PaymentStatusPending.ToString(), domain.PaymentStatusCancelled.ToString())
}

func (r *orderRepository) UpdateItemStatus(ctx context.Context, orderID, mealID, orgID int64, status domain.ItemStatus) error {
	return r.dao.UpdateItemStatus(ctx, orderID, mealID, orgID, status.ToString())
}

func (r *orderRepository) UpdateShippingStatus(ctx context.Context, id int64, status domain.ShippingStatus) error {
	return r.dao.UpdateShippingStatus(ctx, id, status.ToString())
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindByTransactionID(ctx context.Context, txnID string) (domain.Order, error) {
	o, err := r.dao.FindByTxnId(ctx, txnID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) withItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindItems(ctx, []int64{o.Id}, 0)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) List(ctx context.Context, b *querybuilder.Builder, scope domain.Scope) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, b, r.toScopeEntity(scope))
	if err != nil || len(os) == 0 {
		return nil, err
	}
	ids := slice.Map(os, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	// 一次性查出所有订单项，避免 N+1
	items, err := r.dao.FindItems(ctx, ids, scope.OrgID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.OrderItem, len(os))
	for _, item := range items {
		grouped[item.OrderId] = append(grouped[item.OrderId], item)
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, grouped[src.Id])
	}), nil
}

func (r *orderRepository) CountTotal(ctx context.Context, b *querybuilder.Builder, scope domain.Scope) (querybuilder.Meta, error) {
	return r.dao.CountTotal(ctx, b, r.toScopeEntity(scope))
}

func (r *orderRepository) ListUnpaid(ctx context.Context, q domain.UnpaidQuery) ([]domain.Order, error) {
	os, err := r.dao.ListUnpaid(ctx, dao.UnpaidQuery{
		Status:     domain.PaymentStatusPending.ToString(),
		HasTxn:     q.HasTransaction,
		CtimeStart: q.CtimeStart,
		CtimeEnd:   q.CtimeEnd,
		AfterId:    q.AfterID,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, err
	}
	// 只有关闭订单的时候需要订单项，这里不查
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), nil
}

func (r *orderRepository) toScopeEntity(scope domain.Scope) dao.Scope {
	return dao.Scope{
		CustomerId: scope.CustomerID,
		OrgId:      scope.OrgID,
		ShippingStatuses: slice.Map(scope.ShippingStatuses, func(idx int, src domain.ShippingStatus) string {
			return src.ToString()
		}),
	}
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:             o.ID,
		SN:             o.SN,
		CustomerId:     o.CustomerID,
		TotalPrice:     o.TotalPrice,
		PaymentStatus:  o.PaymentStatus.ToString(),
		ShippingStatus: o.ShippingStatus.ToString(),
		Transaction:    r.toTransactionEntity(o.Transaction),
	}
}

func (r *orderRepository) toTransactionEntity(txn domain.Transaction) dao.Transaction {
	return dao.Transaction{
		Id:                txn.ID,
		TransactionStatus: txn.TransactionStatus,
		BankStatus:        txn.BankStatus,
		SpCode:            txn.SPCode,
		SpMessage:         txn.SPMessage,
		Method:            txn.Method,
		DateTime:          txn.DateTime,
	}
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:             o.Id,
		SN:             o.SN,
		CustomerID:     o.CustomerId,
		TotalPrice:     o.TotalPrice,
		PaymentStatus:  domain.PaymentStatus(o.PaymentStatus),
		ShippingStatus: domain.ShippingStatus(o.ShippingStatus),
		Transaction: domain.Transaction{
			ID:                o.Transaction.Id,
			TransactionStatus: o.Transaction.TransactionStatus,
			BankStatus:        o.Transaction.BankStatus,
			SPCode:            o.Transaction.SpCode,
			SPMessage:         o.Transaction.SpMessage,
			Method:            o.Transaction.Method,
			DateTime:          o.Transaction.DateTime,
		},
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.LineItem {
			return domain.LineItem{
				MealID:    src.MealId,
				OrgID:     src.OrgId,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				Status:    domain.ItemStatus(src.Status),
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}
