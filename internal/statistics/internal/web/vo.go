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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mealhub/internal/statistics/internal/domain"
)

type AdminStats struct {
	TotalOrders      int64                  `json:"totalOrders"`
	TotalRevenue     float64                `json:"totalRevenue"`
	TotalProducts    int64                  `json:"totalProducts"`
	LowStockProducts int64                  `json:"lowStockProducts"`
	PaymentStatus    map[string]PaymentStat `json:"paymentStatus"`
	ShippingStatus   map[string]int64       `json:"shippingStatus"`
	SalesData        []MonthlySale          `json:"salesData"`
}

type ProviderStats struct {
	Organization     Organization           `json:"organization"`
	TotalOrders      int64                  `json:"totalOrders"`
	TotalProducts    int64                  `json:"totalProducts"`
	LowStockProducts int64                  `json:"lowStockProducts"`
	TotalRevenue     float64                `json:"totalRevenue"`
	PaymentStatus    map[string]PaymentStat `json:"paymentStatus"`
	SalesData        []MonthlySale          `json:"salesData"`
	ProductStatus    []ItemStat             `json:"productStatus"`
}

type Organization struct {
	Name    string  `json:"name"`
	Contact Contact `json:"contact"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CustomerStats struct {
	TotalOrders   int64            `json:"totalOrders"`
	TotalSpent    float64          `json:"totalSpent"`
	TotalProducts int64            `json:"totalProducts"`
	ItemStatus    map[string]int64 `json:"orderStatus"`
}

type PaymentStat struct {
	Orders  int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type MonthlySale struct {
	Year    int     `json:"year"`
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type ItemStat struct {
	Status        string `json:"status"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"totalQuantity"`
}

func newAdminStats(s domain.AdminStats) AdminStats {
	return AdminStats{
		TotalOrders:      s.TotalOrders,
		TotalRevenue:     s.TotalRevenue.InexactFloat64(),
		TotalProducts:    s.TotalProducts,
		LowStockProducts: s.LowStockProducts,
		PaymentStatus:    newPaymentStats(s.PaymentStatus),
		ShippingStatus: toMap(s.ShippingStatus, func(src domain.ShippingStat) (string, int64) {
			return src.Status, src.Orders
		}),
		SalesData: newSalesData(s.SalesData),
	}
}

func newProviderStats(s domain.ProviderStats) ProviderStats {
	return ProviderStats{
		Organization: Organization{
			Name: s.Organization.Name,
			Contact: Contact{
				Phone: s.Organization.Phone,
				Email: s.Organization.Email,
			},
		},
		TotalOrders:      s.TotalOrders,
		TotalProducts:    s.TotalProducts,
		LowStockProducts: s.LowStockProducts,
		TotalRevenue:     s.TotalRevenue.InexactFloat64(),
		PaymentStatus:    newPaymentStats(s.PaymentStatus),
		SalesData:        newSalesData(s.SalesData),
		ProductStatus: slice.Map(s.ProductStatus, func(idx int, src domain.ItemStat) ItemStat {
			return ItemStat{
				Status:        src.Status,
				Count:         src.Count,
				TotalQuantity: src.TotalQuantity,
			}
		}),
	}
}

func newCustomerStats(s domain.CustomerStats) CustomerStats {
	return CustomerStats{
		TotalOrders:   s.TotalOrders,
		TotalSpent:    s.TotalSpent.InexactFloat64(),
		TotalProducts: s.TotalProducts,
		ItemStatus: toMap(s.ItemStatus, func(src domain.ItemStat) (string, int64) {
			return src.Status, src.Count
		}),
	}
}

func newPaymentStats(stats []domain.PaymentStat) map[string]PaymentStat {
	return toMap(stats, func(src domain.PaymentStat) (string, PaymentStat) {
		return src.Status, PaymentStat{
			Orders:  src.Orders,
			Revenue: src.Revenue.Round(2).InexactFloat64(),
		}
	})
}

func newSalesData(sales []domain.MonthlySale) []MonthlySale {
	return slice.Map(sales, func(idx int, src domain.MonthlySale) MonthlySale {
		return MonthlySale{
			Year:    src.Year,
			Month:   src.MonthName(),
			Revenue: src.Revenue.Round(2).InexactFloat64(),
			Orders:  src.Orders,
		}
	})
}

func toMap[T any, V any](src []T, kv func(T) (string, V)) map[string]V {
	res := make(map[string]V, len(src))
	for _, s := range src {
		k, v := kv(s)
		res[k] = v
	}
	return res
}
