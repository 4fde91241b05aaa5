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

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrInsufficientStock 条件扣减没有命中任何行
	ErrInsufficientStock = errors.New("库存不足")
)

//go:generate mockgen -source=./meal.go -package=daomocks -destination=mocks/meal.mock.go MealDAO
type MealDAO interface {
	Insert(ctx context.Context, m Meal) (int64, error)
	FindById(ctx context.Context, id int64) (Meal, error)
	FindByIds(ctx context.Context, ids []int64) ([]Meal, error)
	// Reserve 在一个事务里面扣减所有库存，任何一个失败整体回滚
	Reserve(ctx context.Context, items []StockItem) error
	Release(ctx context.Context, items []StockItem) error
	UpdateStock(ctx context.Context, id, orgId, quantity int64, inStock bool) error
	ListByOrg(ctx context.Context, orgId int64) ([]Meal, error)
	List(ctx context.Context, b *querybuilder.Builder) ([]Meal, error)
	CountTotal(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error)
	// Count orgId 为 0 的时候统计全部
	Count(ctx context.Context, orgId int64) (int64, error)
	CountLowStock(ctx context.Context, orgId int64, threshold int64) (int64, error)
}

type StockItem struct {
	MealId   int64
	Quantity int64
}

type MealGORMDAO struct {
	db *egorm.Component
}

func NewMealGORMDAO(db *egorm.Component) MealDAO {
	return &MealGORMDAO{db: db}
}

func (d *MealGORMDAO) Insert(ctx context.Context, m Meal) (int64, error) {
	now := time.Now().UnixMilli()
	m.Utime, m.Ctime = now, now
	err := d.db.WithContext(ctx).Create(&m).Error
	return m.Id, err
}

func (d *MealGORMDAO) FindById(ctx context.Context, id int64) (Meal, error) {
	var res Meal
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *MealGORMDAO) FindByIds(ctx context.Context, ids []int64) ([]Meal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var res []Meal
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *MealGORMDAO) Reserve(ctx context.Context, items []StockItem) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&Meal{}).
				Where("id = ? AND in_stock = ? AND quantity >= ?", item.MealId, true, item.Quantity).
				Updates(map[string]any{
					"quantity": gorm.Expr("quantity - ?", item.Quantity),
					"utime":    now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}
		return nil
	})
}

func (d *MealGORMDAO) Release(ctx context.Context, items []StockItem) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			err := tx.Model(&Meal{}).
				Where("id = ?", item.MealId).
				Updates(map[string]any{
					"quantity": gorm.Expr("quantity + ?", item.Quantity),
					"utime":    now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *MealGORMDAO) UpdateStock(ctx context.Context, id, orgId, quantity int64, inStock bool) error {
	res := d.db.WithContext(ctx).Model(&Meal{}).
		Where("id = ? AND org_id = ?", id, orgId).
		Updates(map[string]any{
			"quantity": quantity,
			"in_stock": inStock,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *MealGORMDAO) ListByOrg(ctx context.Context, orgId int64) ([]Meal, error) {
	var res []Meal
	err := d.db.WithContext(ctx).Where("org_id = ?", orgId).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *MealGORMDAO) List(ctx context.Context, b *querybuilder.Builder) ([]Meal, error) {
	var res []Meal
	err := b.Query(d.db.WithContext(ctx).Model(&Meal{})).Find(&res).Error
	return res, err
}

func (d *MealGORMDAO) CountTotal(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error) {
	return b.CountTotal(ctx, d.db.Model(&Meal{}))
}

func (d *MealGORMDAO) Count(ctx context.Context, orgId int64) (int64, error) {
	var res int64
	err := d.byOrg(ctx, orgId).Count(&res).Error
	return res, err
}

func (d *MealGORMDAO) CountLowStock(ctx context.Context, orgId int64, threshold int64) (int64, error) {
	var res int64
	err := d.byOrg(ctx, orgId).Where("quantity < ?", threshold).Count(&res).Error
	return res, err
}

func (d *MealGORMDAO) byOrg(ctx context.Context, orgId int64) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Meal{})
	if orgId > 0 {
		db = db.Where("org_id = ?", orgId)
	}
	return db
}

type Meal struct {
	Id          int64                     `gorm:"primaryKey;autoIncrement;comment:餐品自增ID"`
	OrgId       int64                     `gorm:"not null;index:idx_org_id;comment:所属组织ID"`
	Name        string                    `gorm:"type:varchar(255);not null;comment:餐品名称"`
	Description string                    `gorm:"type:text;comment:餐品描述"`
	Category    string                    `gorm:"type:varchar(64);not null;index:idx_category;comment:分类"`
	Images      sqlx.JsonColumn[[]string] `gorm:"type:json;comment:图片,CDN绝对路径"`
	Calories    float64                   `gorm:"comment:热量"`
	Protein     float64                   `gorm:"comment:蛋白质"`
	Carbs       float64                   `gorm:"comment:碳水"`
	Fat         float64                   `gorm:"comment:脂肪"`
	Price       decimal.Decimal           `gorm:"type:decimal(10,2);not null;comment:单价"`
	Quantity    int64                     `gorm:"not null;default:0;comment:可售数量"`
	InStock     bool                      `gorm:"not null;comment:是否上架"`
	Ctime       int64
	Utime       int64
}
