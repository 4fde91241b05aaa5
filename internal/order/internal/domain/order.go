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

package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ServiceMultiplier 下单时在餐品小计上加收 10% 的服务费
var ServiceMultiplier = decimal.RequireFromString("1.1")

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

// PaymentStatuses 统计的时候按这个顺序输出，没有数据的状态补 0
var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
	PaymentStatusCancelled,
}

func (s PaymentStatus) ToString() string {
	return string(s)
}

// Released 支付失败或者取消之后要把预留的库存还回去
func (s PaymentStatus) Released() bool {
	return s == PaymentStatusFailed || s == PaymentStatusCancelled
}

// PaymentStatusFromBank 把网关的 bank_status 翻译成支付状态，不认识的状态返回 false
func PaymentStatusFromBank(bankStatus string) (PaymentStatus, bool) {
	switch bankStatus {
	case "Success":
		return PaymentStatusPaid, true
	case "Failed":
		return PaymentStatusFailed, true
	case "Cancel":
		return PaymentStatusCancelled, true
	default:
		return "", false
	}
}

type ShippingStatus string

const (
	ShippingStatusPending   ShippingStatus = "Pending"
	ShippingStatusAccepted  ShippingStatus = "Accepted"
	ShippingStatusPreparing ShippingStatus = "Preparing"
	ShippingStatusDelivered ShippingStatus = "Delivered"
	ShippingStatusCancelled ShippingStatus = "Cancelled"
)

var ShippingStatuses = []ShippingStatus{
	ShippingStatusPending,
	ShippingStatusAccepted,
	ShippingStatusPreparing,
	ShippingStatusDelivered,
	ShippingStatusCancelled,
}

func (s ShippingStatus) Valid() bool {
	return slices.Contains(ShippingStatuses, s)
}

func (s ShippingStatus) ToString() string {
	return string(s)
}

type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "Pending"
	ItemStatusPreparing ItemStatus = "Preparing"
	ItemStatusDelivered ItemStatus = "Delivered"
	ItemStatusCancelled ItemStatus = "Cancelled"
)

var ItemStatuses = []ItemStatus{
	ItemStatusPending,
	ItemStatusPreparing,
	ItemStatusDelivered,
	ItemStatusCancelled,
}

func (s ItemStatus) Valid() bool {
	return slices.Contains(ItemStatuses, s)
}

func (s ItemStatus) ToString() string {
	return string(s)
}

type Order struct {
	ID         int64
	SN         string
	CustomerID int64
	Items      []LineItem
	// 下单时计算，之后餐品改价不影响已有订单
	TotalPrice     decimal.Decimal
	PaymentStatus  PaymentStatus
	ShippingStatus ShippingStatus
	Transaction    Transaction
	Ctime          int64
	Utime          int64
}

// Item 按餐品查找订单项
func (o Order) Item(mealID int64) (LineItem, bool) {
	idx := slices.IndexFunc(o.Items, func(item LineItem) bool {
		return item.MealID == mealID
	})
	if idx < 0 {
		return LineItem{}, false
	}
	return o.Items[idx], true
}

type LineItem struct {
	MealID int64
	// 下单时餐品所属的组织，之后餐品换组织也不会变
	OrgID     int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Status    ItemStatus
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Transaction 网关最近一次返回的支付信息
type Transaction struct {
	// 网关订单号
	ID                string
	TransactionStatus string
	BankStatus        string
	SPCode            string
	SPMessage         string
	Method            string
	DateTime          string
}

type ItemRequest struct {
	MealID   int64
	Quantity int64
}

// MergeItems 同一个餐品出现多次的时候合并数量，保持第一次出现的顺序
func MergeItems(reqs []ItemRequest) []ItemRequest {
	res := make([]ItemRequest, 0, len(reqs))
	index := make(map[int64]int, len(reqs))
	for _, r := range reqs {
		if i, ok := index[r.MealID]; ok {
			res[i].Quantity += r.Quantity
			continue
		}
		index[r.MealID] = len(res)
		res = append(res, r)
	}
	return res
}

// TotalPrice 小计求和之后乘以服务费系数，保留两位小数
func TotalPrice(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum.Mul(ServiceMultiplier).Round(2)
}

type CreateRequest struct {
	CustomerEmail string
	Items         []ItemRequest
	ClientIP      string
}

type CreateResult struct {
	OrderID     int64
	SN          string
	CheckoutURL string
}

// Scope 列表接口固定的查询范围
type Scope struct {
	CustomerID int64
	// 不为 0 的时候只返回包含该组织订单项的订单，并且只带上该组织的订单项
	OrgID            int64
	ShippingStatuses []ShippingStatus
}

type UnpaidQuery struct {
	HasTransaction bool
	CtimeStart     int64
	CtimeEnd       int64
	AfterID        int64
	Limit          int
}
