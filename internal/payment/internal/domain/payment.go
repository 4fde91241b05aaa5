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

import "github.com/shopspring/decimal"

// 网关返回的 bank_status
const (
	BankStatusSuccess = "Success"
	BankStatusFailed  = "Failed"
	BankStatusCancel  = "Cancel"
)

type InitiateRequest struct {
	Amount decimal.Decimal
	// 本地订单的关联 ID，网关回调的时候会带回来
	OrderID  string
	Currency string

	CustomerName    string
	CustomerAddress string
	CustomerEmail   string
	CustomerPhone   string
	CustomerCity    string
	ClientIP        string
}

type InitiateResult struct {
	CheckoutURL       string
	GatewayOrderID    string
	TransactionStatus string
}

// Verification 网关查询到的一条支付记录
type Verification struct {
	GatewayOrderID    string
	CustomerOrderID   string
	BankStatus        string
	SPCode            string
	SPMessage         string
	TransactionStatus string
	Method            string
	DateTime          string
}

type Token struct {
	Value      string `json:"value"`
	Type       string `json:"type"`
	StoreID    int64  `json:"storeId"`
	ExecuteURL string `json:"executeUrl"`
}
