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
	"time"

	"github.com/ecodeclub/mealhub/internal/order"
	"github.com/shopspring/decimal"
)

type AdminStats struct {
	TotalOrders      int64
	TotalRevenue     decimal.Decimal
	TotalProducts    int64
	LowStockProducts int64
	PaymentStatus    []PaymentStat
	ShippingStatus   []ShippingStat
	SalesData        []MonthlySale
}

type ProviderStats struct {
	Organization     Organization
	TotalOrders      int64
	TotalProducts    int64
	LowStockProducts int64
	// 只算已支付订单里面自己组织的订单项
	TotalRevenue  decimal.Decimal
	PaymentStatus []PaymentStat
	SalesData     []MonthlySale
	ProductStatus []ItemStat
}

type Organization struct {
	Name  string
	Phone string
	Email string
}

type CustomerStats struct {
	TotalOrders int64
	TotalSpent  decimal.Decimal
	// 所有订单项的数量之和
	TotalProducts int64
	ItemStatus    []ItemStat
}

type PaymentStat struct {
	Status  string
	Orders  int64
	Revenue decimal.Decimal
}

type ShippingStat struct {
	Status string
	Orders int64
}

type ItemStat struct {
	Status        string
	Count         int64
	TotalQuantity int64
}

type MonthlySale struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
	Orders  int64
}

// MonthName Jan 到 Dec
func (m MonthlySale) MonthName() string {
	if m.Month < 1 || m.Month > 12 {
		return ""
	}
	return time.Month(m.Month).String()[:3]
}

func ClosePaymentStats(stats []PaymentStat) []PaymentStat {
	return closeOver(order.PaymentStatuses, stats,
		func(s PaymentStat) string { return s.Status },
		func(status string) PaymentStat { return PaymentStat{Status: status, Revenue: decimal.Zero} })
}

func CloseShippingStats(stats []ShippingStat) []ShippingStat {
	return closeOver(order.ShippingStatuses, stats,
		func(s ShippingStat) string { return s.Status },
		func(status string) ShippingStat { return ShippingStat{Status: status} })
}

func CloseItemStats(stats []ItemStat) []ItemStat {
	return closeOver(order.ItemStatuses, stats,
		func(s ItemStat) string { return s.Status },
		func(status string) ItemStat { return ItemStat{Status: status} })
}

// closeOver 按固定的状态列表输出，没有数据的补零值，不认识的状态丢弃
func closeOver[S ~string, T any](statuses []S, stats []T, key func(T) string, zero func(string) T) []T {
	index := make(map[string]T, len(stats))
	for _, s := range stats {
		index[key(s)] = s
	}
	res := make([]T, 0, len(statuses))
	for _, status := range statuses {
		s, ok := index[string(status)]
		if !ok {
			s = zero(string(status))
		}
		res = append(res, s)
	}
	return res
}

// Revenue 取某个状态的金额，没有就是 0
func Revenue(stats []PaymentStat, status string) decimal.Decimal {
	for _, s := range stats {
		if s.Status == status {
			return s.Revenue
		}
	}
	return decimal.Zero
}
