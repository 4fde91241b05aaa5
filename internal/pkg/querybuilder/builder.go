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

// Package querybuilder 把前端传过来的查询参数转换成 GORM 查询。
// 所有的列表接口和部分统计接口共用同一套规则：搜索、过滤、范围过滤、排序、分页和字段投影。
package querybuilder

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/ecodeclub/ekit/mapx"
	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	KeySearchTerm = "searchTerm"
	KeySort       = "sort"
	KeyLimit      = "limit"
	KeyPage       = "page"
	KeyFields     = "fields"

	suffixMin = "Min"
	suffixMax = "Max"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// 每张表都有的列
var baseColumns = map[string]string{
	"id":        "id",
	"createdAt": "ctime",
	"updatedAt": "utime",
}

type Option func(b *Builder)

// WithColumns 查询参数名到列名的白名单，不在白名单里面的参数一律忽略
func WithColumns(columns map[string]string) Option {
	return func(b *Builder) {
		for k, v := range columns {
			b.columns[k] = v
		}
	}
}

// WithReserved 业务自己保留的参数，不参与等值过滤
func WithReserved(keys ...string) Option {
	return func(b *Builder) {
		for _, k := range keys {
			b.reserved[k] = struct{}{}
		}
	}
}

func WithDefaultSort(sort string) Option {
	return func(b *Builder) {
		b.defaultSort = sort
	}
}

func WithLimit(defaultLimit, maxLimit int) Option {
	return func(b *Builder) {
		b.defaultLimit = defaultLimit
		b.maxLimit = maxLimit
	}
}

type Builder struct {
	query       map[string]string
	columns     map[string]string
	reserved    map[string]struct{}
	defaultSort string

	defaultLimit int
	maxLimit     int

	conds   []clause.Expression
	orders  []clause.OrderByColumn
	selects []string
	page    int
	limit   int
}

func NewBuilder(query map[string]string, opts ...Option) *Builder {
	b := &Builder{
		query:   query,
		columns: make(map[string]string, len(baseColumns)),
		reserved: map[string]struct{}{
			KeySearchTerm: {},
			KeySort:       {},
			KeyLimit:      {},
			KeyPage:       {},
			KeyFields:     {},
		},
		defaultSort:  "-createdAt",
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
		page:         DefaultPage,
	}
	for k, v := range baseColumns {
		b.columns[k] = v
	}
	for _, opt := range opts {
		opt(b)
	}
	b.limit = b.defaultLimit
	return b
}

// FromValues 把 url.Values 拍平，同名参数只取第一个
func FromValues(values url.Values) map[string]string {
	res := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			res[k] = vs[0]
		}
	}
	return res
}

// Search 在给定的字段上做大小写不敏感的模糊匹配，多个字段之间是 OR
func (b *Builder) Search(keys ...string) *Builder {
	term := strings.TrimSpace(b.query[KeySearchTerm])
	if term == "" {
		return b
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	exprs := make([]clause.Expression, 0, len(keys))
	for _, k := range keys {
		col, ok := b.columns[k]
		if !ok {
			continue
		}
		exprs = append(exprs, clause.Expr{
			SQL:  "LOWER(?) LIKE ?",
			Vars: []any{clause.Column{Name: col}, pattern},
		})
	}
	switch len(exprs) {
	case 0:
	case 1:
		// 单个表达式不能包 Or，GORM 会把它用 OR 拼到前一个条件上
		b.conds = append(b.conds, exprs[0])
	default:
		b.conds = append(b.conds, clause.Or(exprs...))
	}
	return b
}

// Filter 非保留参数全部当成等值过滤
func (b *Builder) Filter() *Builder {
	keys := mapx.Keys(b.query)
	// map 遍历无序，排一下保证生成的 SQL 稳定
	slices.Sort(keys)
	for _, k := range keys {
		if _, ok := b.reserved[k]; ok {
			continue
		}
		col, ok := b.columns[k]
		if !ok {
			continue
		}
		b.conds = append(b.conds, clause.Eq{
			Column: clause.Column{Name: col},
			Value:  filterValue(b.query[k]),
		})
	}
	return b
}

// FilterByRange xxxMin / xxxMax 作为闭区间，解析失败的边界直接忽略
func (b *Builder) FilterByRange(keys ...string) *Builder {
	for _, k := range keys {
		col, ok := b.columns[k]
		if !ok {
			continue
		}
		if raw, ok := b.query[k+suffixMin]; ok {
			if v, err := cast.ToFloat64E(strings.TrimSpace(raw)); err == nil {
				b.conds = append(b.conds, clause.Gte{Column: clause.Column{Name: col}, Value: v})
			}
		}
		if raw, ok := b.query[k+suffixMax]; ok {
			if v, err := cast.ToFloat64E(strings.TrimSpace(raw)); err == nil {
				b.conds = append(b.conds, clause.Lte{Column: clause.Column{Name: col}, Value: v})
			}
		}
	}
	return b
}

// Sort 逗号分隔，- 前缀表示降序
func (b *Builder) Sort() *Builder {
	b.orders = b.parseSort(b.query[KeySort])
	if len(b.orders) == 0 {
		b.orders = b.parseSort(b.defaultSort)
	}
	return b
}

func (b *Builder) parseSort(raw string) []clause.OrderByColumn {
	var res []clause.OrderByColumn
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		col, ok := b.columns[field]
		if !ok {
			continue
		}
		res = append(res, clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc})
	}
	return res
}

func (b *Builder) Paginate() *Builder {
	b.page = DefaultPage
	if p, err := cast.ToIntE(strings.TrimSpace(b.query[KeyPage])); err == nil && p > 0 {
		b.page = p
	}
	b.limit = b.defaultLimit
	if l, err := cast.ToIntE(strings.TrimSpace(b.query[KeyLimit])); err == nil && l > 0 {
		b.limit = min(l, b.maxLimit)
	}
	return b
}

// Fields 字段投影，id 总是会被带上
func (b *Builder) Fields() *Builder {
	raw := strings.TrimSpace(b.query[KeyFields])
	if raw == "" {
		return b
	}
	selects := []string{"id"}
	for _, f := range strings.Split(raw, ",") {
		col, ok := b.columns[strings.TrimSpace(f)]
		if !ok || slices.Contains(selects, col) {
			continue
		}
		selects = append(selects, col)
	}
	if len(selects) > 1 {
		b.selects = selects
	}
	return b
}

// Where 只应用过滤条件，查询和计数共用，可以并发调用
func (b *Builder) Where(db *gorm.DB) *gorm.DB {
	if len(b.conds) == 0 {
		return db
	}
	return db.Clauses(clause.Where{Exprs: slices.Clone(b.conds)})
}

// Query 过滤条件 + 排序 + 分页 + 投影
func (b *Builder) Query(db *gorm.DB) *gorm.DB {
	db = b.Where(db)
	if len(b.orders) > 0 {
		db = db.Clauses(clause.OrderBy{Columns: slices.Clone(b.orders)})
	}
	if len(b.selects) > 0 {
		db = db.Select(slices.Clone(b.selects))
	}
	return db.Offset(b.Offset()).Limit(b.limit)
}

// CountTotal db 需要已经设置好 Model 或者 Table
func (b *Builder) CountTotal(ctx context.Context, db *gorm.DB) (Meta, error) {
	var total int64
	err := b.Where(db.WithContext(ctx)).Count(&total).Error
	if err != nil {
		return Meta{}, err
	}
	return b.Meta(total), nil
}

func (b *Builder) Meta(total int64) Meta {
	return NewMeta(b.page, b.limit, total)
}

func (b *Builder) Offset() int {
	return (b.page - 1) * b.limit
}

func (b *Builder) Limit() int {
	return b.limit
}

func (b *Builder) Page() int {
	return b.page
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewMeta(page, limit int, total int64) Meta {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func filterValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}
