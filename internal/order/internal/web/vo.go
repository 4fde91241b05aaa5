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
	"github.com/ecodeclub/mealhub/internal/meal"
	"github.com/ecodeclub/mealhub/internal/order/internal/domain"
	"github.com/ecodeclub/mealhub/internal/organization"
	"github.com/ecodeclub/mealhub/internal/payment"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ecodeclub/mealhub/internal/user"
)

type CreateReq struct {
	// 前端生成，重复提交的时候保持不变
	RequestID string    `json:"requestId"`
	Products  []ItemReq `json:"products"`
}

type ItemReq struct {
	Product  int64 `json:"product"`
	Quantity int64 `json:"quantity"`
}

func (r CreateReq) toDomain(email, clientIP string) domain.CreateRequest {
	return domain.CreateRequest{
		CustomerEmail: email,
		ClientIP:      clientIP,
		Items: slice.Map(r.Products, func(idx int, src ItemReq) domain.ItemRequest {
			return domain.ItemRequest{
				MealID:   src.Product,
				Quantity: src.Quantity,
			}
		}),
	}
}

type CreateResp struct {
	OrderID     int64  `json:"orderId"`
	SN          string `json:"sn"`
	CheckoutURL string `json:"checkoutUrl"`
}

type VerifyReq struct {
	OrderID string `json:"order_id" form:"order_id"`
}

type Verification struct {
	OrderID           string `json:"orderId"`
	CustomerOrderID   string `json:"customerOrderId"`
	BankStatus        string `json:"bankStatus"`
	SPCode            string `json:"spCode"`
	SPMessage         string `json:"spMessage"`
	TransactionStatus string `json:"transactionStatus"`
	Method            string `json:"method"`
	DateTime          string `json:"dateTime"`
}

func newVerification(v payment.Verification) Verification {
	return Verification{
		OrderID:           v.GatewayOrderID,
		CustomerOrderID:   v.CustomerOrderID,
		BankStatus:        v.BankStatus,
		SPCode:            v.SPCode,
		SPMessage:         v.SPMessage,
		TransactionStatus: v.TransactionStatus,
		Method:            v.Method,
		DateTime:          v.DateTime,
	}
}

type IDReq struct {
	ID int64 `json:"id" form:"id"`
}

type UpdateItemStatusReq struct {
	OrderID int64  `json:"orderId"`
	MealID  int64  `json:"productId"`
	Status  string `json:"status"`
}

type UpdateShippingStatusReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type ListResp struct {
	Data []Order           `json:"data"`
	Meta querybuilder.Meta `json:"meta"`
}

type Order struct {
	ID             int64        `json:"id"`
	SN             string       `json:"sn"`
	Customer       Customer     `json:"customer"`
	Products       []LineItem   `json:"products"`
	TotalPrice     string       `json:"totalPrice"`
	PaymentStatus  string       `json:"paymentStatus"`
	ShippingStatus string       `json:"shippingStatus"`
	Transaction    *Transaction `json:"transaction,omitempty"`
	Ctime          int64        `json:"ctime"`
	Utime          int64        `json:"utime"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type LineItem struct {
	Product  Product `json:"product"`
	OrgID    int64   `json:"orgId"`
	OrgName  string  `json:"orgName,omitempty"`
	Quantity int64   `json:"quantity"`
	Price    string  `json:"price"`
	Status   string  `json:"status"`
}

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Images   []string `json:"images,omitempty"`
}

type Transaction struct {
	ID                string `json:"id"`
	TransactionStatus string `json:"transactionStatus"`
	BankStatus        string `json:"bankStatus"`
	SPCode            string `json:"spCode"`
	SPMessage         string `json:"spMessage"`
	Method            string `json:"method"`
	DateTime          string `json:"dateTime"`
}

// refs 列表里面需要展示的关联数据，查不到的时候只返回 ID
type refs struct {
	meals     map[int64]meal.Meal
	orgs      map[int64]organization.Organization
	customers map[int64]user.User
}

func (r refs) newOrder(o domain.Order) Order {
	c := r.customers[o.CustomerID]
	res := Order{
		ID: o.ID,
		SN: o.SN,
		Customer: Customer{
			ID:    o.CustomerID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		},
		Products: slice.Map(o.Items, func(idx int, src domain.LineItem) LineItem {
			return r.newLineItem(src)
		}),
		TotalPrice:     o.TotalPrice.StringFixed(2),
		PaymentStatus:  o.PaymentStatus.ToString(),
		ShippingStatus: o.ShippingStatus.ToString(),
		Ctime:          o.Ctime,
		Utime:          o.Utime,
	}
	if o.Transaction.ID != "" {
		res.Transaction = &Transaction{
			ID:                o.Transaction.ID,
			TransactionStatus: o.Transaction.TransactionStatus,
			BankStatus:        o.Transaction.BankStatus,
			SPCode:            o.Transaction.SPCode,
			SPMessage:         o.Transaction.SPMessage,
			Method:            o.Transaction.Method,
			DateTime:          o.Transaction.DateTime,
		}
	}
	return res
}

func (r refs) newLineItem(item domain.LineItem) LineItem {
	m := r.meals[item.MealID]
	return LineItem{
		Product: Product{
			ID:       item.MealID,
			Name:     m.Name,
			Category: m.Category,
			Images:   m.Images,
		},
		OrgID:    item.OrgID,
		OrgName:  r.orgs[item.OrgID].Name,
		Quantity: item.Quantity,
		Price:    item.UnitPrice.StringFixed(2),
		Status:   item.Status.ToString(),
	}
}
