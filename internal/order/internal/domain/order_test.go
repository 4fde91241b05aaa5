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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	testCases := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{
			name: "没有订单项",
			want: "0",
		},
		{
			name: "单个订单项",
			items: []LineItem{
				{UnitPrice: decimal.RequireFromString("12.5"), Quantity: 2},
			},
			want: "27.5",
		},
		{
			name: "多个订单项四舍五入",
			items: []LineItem{
				{UnitPrice: decimal.RequireFromString("9.99"), Quantity: 3},
				{UnitPrice: decimal.RequireFromString("0.05"), Quantity: 1},
			},
			// (29.97 + 0.05) * 1.1 = 33.022
			want: "33.02",
		},
		{
			name: "浮点数容易出错的值",
			items: []LineItem{
				{UnitPrice: decimal.RequireFromString("0.1"), Quantity: 3},
			},
			want: "0.33",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPrice(tc.items).String())
		})
	}
}

func TestMergeItems(t *testing.T) {
	res := MergeItems([]ItemRequest{
		{MealID: 2, Quantity: 1},
		{MealID: 1, Quantity: 2},
		{MealID: 2, Quantity: 3},
	})
	assert.Equal(t, []ItemRequest{
		{MealID: 2, Quantity: 4},
		{MealID: 1, Quantity: 2},
	}, res)
}

func TestPaymentStatusFromBank(t *testing.T) {
	testCases := []struct {
		bank   string
		want   PaymentStatus
		wantOk bool
	}{
		{bank: "Success", want: PaymentStatusPaid, wantOk: true},
		{bank: "Failed", want: PaymentStatusFailed, wantOk: true},
		{bank: "Cancel", want: PaymentStatusCancelled, wantOk: true},
		{bank: "Pending"},
		{bank: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.bank, func(t *testing.T) {
			got, ok := PaymentStatusFromBank(tc.bank)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOk, ok)
		})
	}
}

func TestOrder_Item(t *testing.T) {
	o := Order{Items: []LineItem{{MealID: 1, OrgID: 10}, {MealID: 2, OrgID: 20}}}
	item, ok := o.Item(2)
	assert.True(t, ok)
	assert.Equal(t, int64(20), item.OrgID)
	_, ok = o.Item(3)
	assert.False(t, ok)
}
