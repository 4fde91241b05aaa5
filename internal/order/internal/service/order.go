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
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/order/internal/event"
	"github.com/ecodeclub/mealhub/internal/order/internal/repository"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/mqx"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mealhub/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound        = repository.ErrOrderNotFound
	ErrLineItemNotFound     = errors.New("订单项不存在")
	ErrMealNotFound         = errors.New("餐品不存在")
	ErrOutOfStock           = errors.New("餐品已售罄")
	ErrMealUnavailable      = errors.New("餐品所属组织还没有通过审核")
	ErrInvalidItems         = errors.New("订单项不合法")
	ErrInvalidStatus        = errors.New("状态不合法")
	ErrCustomerNotFound     = errors.New("用户不存在")
	ErrOrganizationNotFound = errors.New("请先创建组织")
	ErrUpstreamFailure      = payment.ErrUpstreamFailure
)

// 管理后台可以按用户过滤，用户自己和服务商的列表不行。
// 订单总价包含其他服务商的餐品，服务商不能按它过滤或者排序
var (
	baseColumns = map[string]string{
		"sn":             "sn",
		"paymentStatus":  "payment_status",
		"shippingStatus": "shipping_status",
	}
	priceColumns = map[string]string{
		"totalPrice": "total_price",
	}
	adminColumns = map[string]string{
		"customerId": "customer_id",
	}
)

const (
	// MaxItemQuantity 合并之后单个餐品的数量上限
	MaxItemQuantity = 1000

	attachRetryInterval = 50 * time.Millisecond
	attachMaxRetries    = 2
)

//go:generate mockgen -source=./order.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateOrder 校验库存、预留库存、写入订单，然后发起支付
	CreateOrder(ctx context.Context, req domain.CreateRequest) (domain.CreateResult, error)
	// VerifyPayment 去网关查询最终结果，可以重复调用
	VerifyPayment(ctx context.Context, txnID string) ([]payment.Verification, error)
	UpdateLineItemStatus(ctx context.Context, orderID, mealID int64, status domain.ItemStatus) error
	// UpdateProviderLineItemStatus 服务商只能修改自己组织的订单项
	UpdateProviderLineItemStatus(ctx context.Context, ownerID, orderID, mealID int64, status domain.ItemStatus) error
	UpdateShippingStatus(ctx context.Context, id int64, status domain.ShippingStatus) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	List(ctx context.Context, query map[string]string) ([]domain.Order, querybuilder.Meta, error)
	ListByCustomer(ctx context.Context, customerID int64, query map[string]string) ([]domain.Order, querybuilder.Meta, error)
	// ListByProvider 只返回服务商自己组织的订单项，总价也只算这部分
	ListByProvider(ctx context.Context, ownerID int64, query map[string]string) ([]domain.Order, querybuilder.Meta, error)
	// ListPending 待处理的订单，也就是配送状态是 Pending 或者 Preparing 的订单
	ListPending(ctx context.Context, query map[string]string) ([]domain.Order, querybuilder.Meta, error)
	ListUnpaid(ctx context.Context, q domain.UnpaidQuery) ([]domain.Order, error)
	// CancelUnpaid 关闭没有拿到网关订单号的订单，并且释放库存
	CancelUnpaid(ctx context.Context, id int64) error
}

type service struct {
	repo        repository.OrderRepository
	gate        InventoryGate
	mealSvc     meal.Service
	orgSvc      organization.Service
	userSvc     user.Service
	paymentSvc  payment.Service
	snGenerator *sequencenumber.Generator
	producer    mqx.Producer[event.OrderEvent]
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	gate InventoryGate,
	mealSvc meal.Service,
	orgSvc organization.Service,
	userSvc user.Service,
	paymentSvc payment.Service,
	snGenerator *sequencenumber.Generator,
	producer mqx.Producer[event.OrderEvent]) Service {
	return &service{
		repo:        repo,
		gate:        gate,
		mealSvc:     mealSvc,
		orgSvc:      orgSvc,
		userSvc:     userSvc,
		paymentSvc:  paymentSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, req domain.CreateRequest) (domain.CreateResult, error) {
	res, err := s.createOrder(ctx, req)
	switch {
	case err == nil:
		orderCreatedCounter.WithLabelValues("ok").Inc()
	case errors.Is(err, ErrUpstreamFailure):
		orderCreatedCounter.WithLabelValues("payment_failed").Inc()
	default:
		orderCreatedCounter.WithLabelValues("rejected").Inc()
	}
	return res, err
}

func (s *service) createOrder(ctx context.Context, req domain.CreateRequest) (domain.CreateResult, error) {
	if len(req.Items) == 0 {
		return domain.CreateResult{}, fmt.Errorf("%w: 至少需要一个餐品", ErrInvalidItems)
	}
	// 先逐项校验再合并，单项不超过上限，合并求和就不会溢出
	if err := checkQuantities(req.Items); err != nil {
		return domain.CreateResult{}, err
	}
	reqs := domain.MergeItems(req.Items)
	if err := checkQuantities(reqs); err != nil {
		return domain.CreateResult{}, err
	}
	customer, err := s.userSvc.FindByEmail(ctx, req.CustomerEmail)
	if errors.Is(err, user.ErrUserNotFound) {
		return domain.CreateResult{}, ErrCustomerNotFound
	}
	if err != nil {
		return domain.CreateResult{}, err
	}

	items, total, err := s.gate.Check(ctx, reqs)
	if err != nil {
		return domain.CreateResult{}, err
	}
	stock := s.toStockItems(items)
	err = s.mealSvc.Reserve(ctx, stock)
	if errors.Is(err, meal.ErrInsufficientStock) {
		return domain.CreateResult{}, fmt.Errorf("%w: 库存不足", ErrOutOfStock)
	}
	if err != nil {
		return domain.CreateResult{}, err
	}

	o := domain.Order{
		SN:             s.snGenerator.Generate(customer.ID),
		CustomerID:     customer.ID,
		Items:          items,
		TotalPrice:     total,
		PaymentStatus:  domain.PaymentStatusPending,
		ShippingStatus: domain.ShippingStatusPending,
	}
	o.ID, err = s.repo.Create(ctx, o)
	if err != nil {
		s.release(ctx, o, stock)
		return domain.CreateResult{}, err
	}
	s.produce(ctx, event.TypeOrderCreated, o)

	// 到这里订单总价已经确定，网关只调用一次
	pr, err := s.paymentSvc.Initiate(ctx, payment.InitiateRequest{
		Amount:          total,
		OrderID:         o.SN,
		CustomerName:    customer.Name,
		CustomerAddress: customer.Address,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerCity:    customer.City,
		ClientIP:        req.ClientIP,
	})
	if err != nil {
		// 订单保留在待支付状态，由对账任务关闭并释放库存
		s.logger.Error("发起支付失败",
			elog.Int64("orderId", o.ID),
			elog.String("sn", o.SN),
			elog.FieldErr(err))
		return domain.CreateResult{}, err
	}
	err = s.attachTransaction(ctx, o.ID, domain.Transaction{
		ID:                pr.GatewayOrderID,
		TransactionStatus: pr.TransactionStatus,
	})
	if err != nil {
		// 网关那边已经有订单了，没有这条日志就只能靠对账关单
		s.logger.Error("保存网关订单号失败，需要人工处理",
			elog.Int64("orderId", o.ID),
			elog.String("sn", o.SN),
			elog.String("gatewayOrderId", pr.GatewayOrderID),
			elog.FieldErr(err))
		return domain.CreateResult{}, fmt.Errorf("保存网关订单号失败 orderId %d: %w", o.ID, err)
	}
	return domain.CreateResult{
		OrderID:     o.ID,
		SN:          o.SN,
		CheckoutURL: pr.CheckoutURL,
	}, nil
}

func checkQuantities(items []domain.ItemRequest) error {
	for _, item := range items {
		if item.Quantity <= 0 || item.Quantity > MaxItemQuantity {
			return fmt.Errorf("%w: 餐品 %d 的数量必须在 1 到 %d 之间", ErrInvalidItems, item.MealID, MaxItemQuantity)
		}
	}
	return nil
}

func (s *service) attachTransaction(ctx context.Context, orderID int64, txn domain.Transaction) error {
	strategy, _ := retry.NewFixedIntervalRetryStrategy(attachRetryInterval, attachMaxRetries)
	return retry.Retry(ctx, strategy, func() error {
		return s.repo.AttachTransaction(ctx, orderID, txn)
	})
}

func (s *service) VerifyPayment(ctx context.Context, txnID string) ([]payment.Verification, error) {
	vs, err := s.paymentSvc.Verify(ctx, txnID)
	if err != nil || len(vs) == 0 {
		return vs, err
	}
	v := vs[0]
	status, ok := domain.PaymentStatusFromBank(v.BankStatus)
	label := status.ToString()
	if !ok {
		label = "Unknown"
		s.logger.Warn("未知的 bank_status，只更新网关信息",
			elog.String("txnId", txnID),
			elog.String("bankStatus", v.BankStatus))
	}
	paymentVerifiedCounter.WithLabelValues(label).Inc()
	changed, err := s.repo.UpdatePayment(ctx, domain.Transaction{
		ID:                txnID,
		TransactionStatus: v.TransactionStatus,
		BankStatus:        v.BankStatus,
		SPCode:            v.SPCode,
		SPMessage:         v.SPMessage,
		Method:            v.Method,
		DateTime:          v.DateTime,
	}, status)
	if err != nil || !changed {
		return vs, err
	}

	// 只有第一次从 Pending 变过去的时候才会走到这里
	o, err := s.repo.FindByTransactionID(ctx, txnID)
	if err != nil {
		s.logger.Error("支付状态已变更，但是查询订单失败",
			elog.String("txnId", txnID),
			elog.String("status", status.ToString()),
			elog.FieldErr(err))
		return vs, err
	}
	if status.Released() {
		s.release(ctx, o, s.toStockItems(o.Items))
	}
	s.produce(ctx, event.TypePaymentStatusChanged, o)
	return vs, nil
}

func (s *service) UpdateLineItemStatus(ctx context.Context, orderID, mealID int64, status domain.ItemStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.updateItemStatus(ctx, orderID, mealID, 0, status)
}

func (s *service) UpdateProviderLineItemStatus(ctx context.Context, ownerID, orderID, mealID int64, status domain.ItemStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	org, err := s.providerOrg(ctx, ownerID)
	if err != nil {
		return err
	}
	return s.updateItemStatus(ctx, orderID, mealID, org.ID, status)
}

// updateItemStatus orgID 为 0 表示不限制组织
func (s *service) updateItemStatus(ctx context.Context, orderID, mealID, orgID int64, status domain.ItemStatus) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	item, ok := o.Item(mealID)
	if !ok || (orgID > 0 && item.OrgID != orgID) {
		return ErrLineItemNotFound
	}
	err = s.repo.UpdateItemStatus(ctx, orderID, mealID, orgID, status)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return ErrLineItemNotFound
	}
	return err
}

func (s *service) UpdateShippingStatus(ctx context.Context, id int64, status domain.ShippingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateShippingStatus(ctx, id, status)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, query map[string]string) ([]domain.Order, querybuilder.Meta, error) {
	return s.list(ctx, query, domain.Scope{}, priceColumns, adminColumns)
}

func (s *service) ListByCustomer(ctx context.Context, customerID int64, query map[string]string) ([]domain.Order, querybuilder.Meta, error) {
	return s.list(ctx, query, domain.Scope{CustomerID: customerID}, priceColumns)
}

func (s *service) ListByProvider(ctx context.Context, ownerID int64, query map[string]string) ([]domain.Order, querybuilder.Meta, error) {
	org, err := s.providerOrg(ctx, ownerID)
	if err != nil {
		return nil, querybuilder.Meta{}, err
	}
	os, meta, err := s.list(ctx, query, domain.Scope{OrgID: org.ID})
	if err != nil {
		return nil, querybuilder.Meta{}, err
	}
	for i := range os {
		// 订单可能包含其他服务商的餐品，总价和支付信息都不能给出去
		os[i].TotalPrice = domain.TotalPrice(os[i].Items)
		os[i].Transaction = domain.Transaction{}
	}
	return os, meta, nil
}

func (s *service) ListPending(ctx context.Context, query map[string]string) ([]domain.Order, querybuilder.Meta, error) {
	return s.list(ctx, query, domain.Scope{
		ShippingStatuses: []domain.ShippingStatus{domain.ShippingStatusPending, domain.ShippingStatusPreparing},
	}, priceColumns, adminColumns)
}

func (s *service) list(ctx context.Context, query map[string]string, scope domain.Scope,
	extra ...map[string]string) ([]domain.Order, querybuilder.Meta, error) {
	opts := []querybuilder.Option{querybuilder.WithColumns(baseColumns)}
	for _, cols := range extra {
		opts = append(opts, querybuilder.WithColumns(cols))
	}
	b := querybuilder.NewBuilder(query, opts...).
		Search("sn").
		Filter().
		FilterByRange("totalPrice").
		Sort().
		Paginate().
		Fields()
	var (
		eg   errgroup.Group
		os   []domain.Order
		meta querybuilder.Meta
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, b, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		meta, err = s.repo.CountTotal(ctx, b, scope)
		return err
	})
	return os, meta, eg.Wait()
}

func (s *service) ListUnpaid(ctx context.Context, q domain.UnpaidQuery) ([]domain.Order, error) {
	return s.repo.ListUnpaid(ctx, q)
}

func (s *service) CancelUnpaid(ctx context.Context, id int64) error {
	changed, err := s.repo.CancelUnpaid(ctx, id)
	if err != nil || !changed {
		return err
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	s.release(ctx, o, s.toStockItems(o.Items))
	s.produce(ctx, event.TypePaymentStatusChanged, o)
	return nil
}

func (s *service) providerOrg(ctx context.Context, ownerID int64) (organization.Organization, error) {
	org, err := s.orgSvc.FindByOwner(ctx, ownerID)
	if errors.Is(err, organization.ErrOrganizationNotFound) {
		return organization.Organization{}, ErrOrganizationNotFound
	}
	return org, err
}

func (s *service) release(ctx context.Context, o domain.Order, stock []meal.StockItem) {
	err := s.mealSvc.Release(ctx, stock)
	if err != nil {
		s.logger.Error("释放库存失败，需要人工处理",
			elog.Int64("orderId", o.ID),
			elog.String("sn", o.SN),
			elog.Any("items", stock),
			elog.FieldErr(err))
	}
}

func (s *service) produce(ctx context.Context, typ string, o domain.Order) {
	err := s.producer.Produce(ctx, event.OrderEvent{
		Type:          typ,
		OrderID:       o.ID,
		OrderSN:       o.SN,
		CustomerID:    o.CustomerID,
		TotalPrice:    o.TotalPrice.StringFixed(2),
		PaymentStatus: o.PaymentStatus.ToString(),
	})
	if err != nil {
		s.logger.Error("发送订单事件失败",
			elog.String("type", typ),
			elog.Int64("orderId", o.ID),
			elog.FieldErr(err))
	}
}

func (s *service) toStockItems(items []domain.LineItem) []meal.StockItem {
	return slice.Map(items, func(idx int, src domain.LineItem) meal.StockItem {
		return meal.StockItem{MealID: src.MealID, Quantity: src.Quantity}
	})
}
