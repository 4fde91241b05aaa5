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

import "github.com/ecodeclub/mealhub/internal/payment/internal/domain"

type tokenResp struct {
	Token      string `json:"token"`
	StoreID    int64  `json:"store_id"`
	ExecuteURL string `json:"execute_url"`
	TokenType  string `json:"token_type"`
	SPCode     string `json:"sp_code"`
	// 网关返回的字段名就是 massage
	Message   string `json:"massage"`
	ExpiresIn int64  `json:"expires_in"`
}

type secretPayReq struct {
	Prefix          string  `json:"prefix"`
	Token           string  `json:"token"`
	ReturnURL       string  `json:"return_url"`
	CancelURL       string  `json:"cancel_url"`
	StoreID         int64   `json:"store_id"`
	Amount          float64 `json:"amount"`
	OrderID         string  `json:"order_id"`
	Currency        string  `json:"currency"`
	CustomerName    string  `json:"customer_name"`
	CustomerAddress string  `json:"customer_address"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerCity    string  `json:"customer_city"`
	ClientIP        string  `json:"client_ip"`
}

type secretPayResp struct {
	CheckoutURL       string `json:"checkout_url"`
	SPOrderID         string `json:"sp_order_id"`
	CustomerOrderID   string `json:"customer_order_id"`
	TransactionStatus string `json:"transactionStatus"`
}

type verificationResp struct {
	OrderID           string `json:"order_id"`
	CustomerOrderID   string `json:"customer_order_id"`
	BankStatus        string `json:"bank_status"`
	SPCode            string `json:"sp_code"`
	SPMessage         string `json:"sp_message"`
	TransactionStatus string `json:"transaction_status"`
	Method            string `json:"method"`
	DateTime          string `json:"date_time"`
}

func (v verificationResp) toDomain() domain.Verification {
	return domain.Verification{
		GatewayOrderID:    v.OrderID,
		CustomerOrderID:   v.CustomerOrderID,
		BankStatus:        v.BankStatus,
		SPCode:            v.SPCode,
		SPMessage:         v.SPMessage,
		TransactionStatus: v.TransactionStatus,
		Method:            v.Method,
		DateTime:          v.DateTime,
	}
}

type spError struct {
	SPCode  string `json:"sp_code"`
	Message string `json:"message"`
}
