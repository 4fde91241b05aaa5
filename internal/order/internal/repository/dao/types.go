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

import "github.com/shopspring/decimal"

type Order struct {
	Id             int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN             string          `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	CustomerId     int64           `gorm:"not null;index:idx_customer_id;comment:下单用户ID"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:含服务费的订单总价"`
	PaymentStatus  string          `gorm:"type:varchar(16);not null;index:idx_payment_status;comment:Pending/Paid/Failed/Cancelled"`
	ShippingStatus string          `gorm:"type:varchar(16);not null;index:idx_shipping_status;comment:Pending/Accepted/Preparing/Delivered/Cancelled"`
	Transaction    Transaction     `gorm:"embedded;embeddedPrefix:txn_"`
	Ctime          int64           `gorm:"index:idx_ctime"`
	Utime          int64
}

type Transaction struct {
	Id                string `gorm:"type:varchar(64);not null;default:'';index:idx_txn_id;comment:网关订单号"`
	TransactionStatus string `gorm:"type:varchar(32);not null;default:''"`
	BankStatus        string `gorm:"type:varchar(32);not null;default:''"`
	SpCode            string `gorm:"type:varchar(16);not null;default:''"`
	SpMessage         string `gorm:"type:varchar(255);not null;default:''"`
	Method            string `gorm:"type:varchar(32);not null;default:''"`
	DateTime          string `gorm:"type:varchar(32);not null;default:''"`
}

// columns 更新网关信息时使用，空字符串也要写进去
func (t Transaction) columns() map[string]any {
	return map[string]any{
		"txn_transaction_status": t.TransactionStatus,
		"txn_bank_status":        t.BankStatus,
		"txn_sp_code":            t.SpCode,
		"txn_sp_message":         t.SpMessage,
		"txn_method":             t.Method,
		"txn_date_time":          t.DateTime,
	}
}

type OrderItem struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId int64 `gorm:"not null;uniqueIndex:uniq_order_meal,priority:1;comment:订单自增ID"`
	MealId  int64 `gorm:"not null;uniqueIndex:uniq_order_meal,priority:2;index:idx_meal_id;comment:餐品ID"`
	// 下单时的快照
	OrgId     int64           `gorm:"not null;index:idx_org_id;comment:下单时餐品所属组织ID"`
	Quantity  int64           `gorm:"not null;comment:购买数量"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时的单价"`
	Status    string          `gorm:"type:varchar(16);not null;comment:Pending/Preparing/Delivered/Cancelled"`
	Ctime     int64
	Utime     int64
}
