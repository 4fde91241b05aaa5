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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mealhub/internal/meal/internal/domain"
	"github.com/ecodeclub/mealhub/internal/meal/internal/repository/dao"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
)

var (
	ErrMealNotFound      = dao.ErrRecordNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

//go:generate mockgen -source=./meal.go -package=repomocks -destination=mocks/meal.mock.go MealRepository
type MealRepository interface {
	Create(ctx context.Context, meal domain.Meal) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Meal, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Meal, error)
	Reserve(ctx context.Context, items []domain.StockItem) error
	Release(ctx context.Context, items []domain.StockItem) error
	UpdateStock(ctx context.Context, meal domain.Meal) error
	ListByOrg(ctx context.Context, orgID int64) ([]domain.Meal, error)
	List(ctx context.Context, b *querybuilder.Builder) ([]domain.Meal, error)
	CountTotal(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error)
	Count(ctx context.Context, orgID int64) (int64, error)
	CountLowStock(ctx context.Context, orgID int64, threshold int64) (int64, error)
}

type mealRepository struct {
	dao dao.MealDAO
}

func NewMealRepository(d dao.MealDAO) MealRepository {
	return &mealRepository{dao: d}
}

func (r *mealRepository) Create(ctx context.Context, m domain.Meal) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(m))
}

func (r *mealRepository) FindByID(ctx context.Context, id int64) (domain.Meal, error) {
	m, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Meal{}, err
	}
	return r.toDomain(m), nil
}

func (r *mealRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Meal, error) {
	ms, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ms), nil
}

func (r *mealRepository) Reserve(ctx context.Context, items []domain.StockItem) error {
	return r.dao.Reserve(ctx, r.toStockItems(items))
}

func (r *mealRepository) Release(ctx context.Context, items []domain.StockItem) error {
	return r.dao.Release(ctx, r.toStockItems(items))
}

func (r *mealRepository) UpdateStock(ctx context.Context, m domain.Meal) error {
	return r.dao.UpdateStock(ctx, m.ID, m.OrgID, m.Quantity, m.InStock)
}

func (r *mealRepository) ListByOrg(ctx context.Context, orgID int64) ([]domain.Meal, error) {
	ms, err := r.dao.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ms), nil
}

func (r *mealRepository) List(ctx context.Context, b *querybuilder.Builder) ([]domain.Meal, error) {
	ms, err := r.dao.List(ctx, b)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ms), nil
}

func (r *mealRepository) CountTotal(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error) {
	return r.dao.CountTotal(ctx, b)
}

func (r *mealRepository) Count(ctx context.Context, orgID int64) (int64, error) {
	return r.dao.Count(ctx, orgID)
}

func (r *mealRepository) CountLowStock(ctx context.Context, orgID int64, threshold int64) (int64, error) {
	return r.dao.CountLowStock(ctx, orgID, threshold)
}

func (r *mealRepository) toStockItems(items []domain.StockItem) []dao.StockItem {
	return slice.Map(items, func(idx int, src domain.StockItem) dao.StockItem {
		return dao.StockItem{MealId: src.MealID, Quantity: src.Quantity}
	})
}

func (r *mealRepository) toDomains(ms []dao.Meal) []domain.Meal {
	return slice.Map(ms, func(idx int, src dao.Meal) domain.Meal {
		return r.toDomain(src)
	})
}

func (r *mealRepository) toEntity(m domain.Meal) dao.Meal {
	return dao.Meal{
		Id:          m.ID,
		OrgId:       m.OrgID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Images: sqlx.JsonColumn[[]string]{
			Val:   m.Images,
			Valid: len(m.Images) > 0,
		},
		Calories: m.Nutrition.Calories,
		Protein:  m.Nutrition.Protein,
		Carbs:    m.Nutrition.Carbs,
		Fat:      m.Nutrition.Fat,
		Price:    m.Price,
		Quantity: m.Quantity,
		InStock:  m.InStock,
	}
}

func (r *mealRepository) toDomain(m dao.Meal) domain.Meal {
	return domain.Meal{
		ID:          m.Id,
		OrgID:       m.OrgId,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Images:      m.Images.Val,
		Nutrition: domain.Nutrition{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		},
		Price:    m.Price,
		Quantity: m.Quantity,
		InStock:  m.InStock,
		Ctime:    m.Ctime,
		Utime:    m.Utime,
	}
}
