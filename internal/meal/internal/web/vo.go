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
	"strings"

	"github.com/ecodeclub/mealhub/internal/meal/internal/domain"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/shopspring/decimal"
)

type Meal struct {
	ID          int64     `json:"id"`
	OrgID       int64     `json:"orgId,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Nutrition   Nutrition `json:"nutritionalInfo"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	InStock     bool      `json:"inStock"`
	Ctime       int64     `json:"ctime,omitempty"`
	Utime       int64     `json:"utime,omitempty"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func newMeal(m domain.Meal) Meal {
	return Meal{
		ID:          m.ID,
		OrgID:       m.OrgID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Images:      m.Images,
		Nutrition: Nutrition{
			Calories: m.Nutrition.Calories,
			Protein:  m.Nutrition.Protein,
			Carbs:    m.Nutrition.Carbs,
			Fat:      m.Nutrition.Fat,
		},
		Price:    m.Price.InexactFloat64(),
		Quantity: m.Quantity,
		InStock:  m.InStock,
		Ctime:    m.Ctime,
		Utime:    m.Utime,
	}
}

type CreateReq struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Nutrition   Nutrition `json:"nutritionalInfo"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
}

func (r CreateReq) validate() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "餐品名称不能为空"
	case !domain.IsValidCategory(r.Category):
		return "分类不合法"
	case r.Price <= 0:
		return "价格必须大于 0"
	case r.Quantity < 0:
		return "库存不能小于 0"
	}
	return ""
}

func (r CreateReq) toDomain() domain.Meal {
	return domain.Meal{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Category:    r.Category,
		Images:      r.Images,
		Nutrition: domain.Nutrition{
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Carbs:    r.Nutrition.Carbs,
			Fat:      r.Nutrition.Fat,
		},
		Price:    decimal.NewFromFloat(r.Price).Round(2),
		Quantity: r.Quantity,
		InStock:  true,
	}
}

type UpdateStockReq struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
	InStock  bool  `json:"inStock"`
}

type DetailReq struct {
	ID int64 `json:"id" form:"id"`
}

type ListResp struct {
	Data []Meal            `json:"data"`
	Meta querybuilder.Meta `json:"meta"`
}
