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

// LowStockThreshold 库存低于这个数量就算库存紧张
const LowStockThreshold = 10

var Categories = []string{
	"Smoothies",
	"Breakfast Bowls",
	"Pasta",
	"Harvest Bowls",
	"Grains",
	"Soups",
	"Snacks",
}

func IsValidCategory(c string) bool {
	return slices.Contains(Categories, c)
}

type Meal struct {
	ID          int64
	OrgID       int64
	Name        string
	Description string
	Category    string
	Images      []string
	Nutrition   Nutrition
	Price       decimal.Decimal
	// Quantity 可售数量，下单时原子扣减
	Quantity int64
	// InStock 服务商手动控制的上下架开关
	InStock bool
	Ctime   int64
	Utime   int64
}

func (m Meal) LowStock() bool {
	return m.Quantity < LowStockThreshold
}

type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// StockItem 一次预占或者释放的库存
type StockItem struct {
	MealID   int64
	Quantity int64
}
