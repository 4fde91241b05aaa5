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

	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateOwner 一个服务商只能创建一个组织
	ErrDuplicateOwner = errors.New("该用户已经创建过组织")
)

//go:generate mockgen -source=./organization.go -package=daomocks -destination=mocks/organization.mock.go OrganizationDAO
type OrganizationDAO interface {
	Create(ctx context.Context, org Organization) (int64, error)
	FindById(ctx context.Context, id int64) (Organization, error)
	FindByIds(ctx context.Context, ids []int64) ([]Organization, error)
	FindByOwner(ctx context.Context, ownerId int64) (Organization, error)
	Verify(ctx context.Context, id int64) error
	ListUnverified(ctx context.Context, b *querybuilder.Builder) ([]Organization, error)
	CountUnverified(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error)
}

type GORMOrganizationDAO struct {
	db *egorm.Component
}

func NewGORMOrganizationDAO(db *egorm.Component) OrganizationDAO {
	return &GORMOrganizationDAO{
		db: db,
	}
}

func (d *GORMOrganizationDAO) Create(ctx context.Context, org Organization) (int64, error) {
	now := time.Now().UnixMilli()
	org.Ctime = now
	org.Utime = now
	err := d.db.WithContext(ctx).Create(&org).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateOwner
		}
	}
	return org.Id, err
}

func (d *GORMOrganizationDAO) FindById(ctx context.Context, id int64) (Organization, error) {
	var org Organization
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&org).Error
	return org, err
}

func (d *GORMOrganizationDAO) FindByIds(ctx context.Context, ids []int64) ([]Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orgs []Organization
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&orgs).Error
	return orgs, err
}

func (d *GORMOrganizationDAO) FindByOwner(ctx context.Context, ownerId int64) (Organization, error) {
	var org Organization
	err := d.db.WithContext(ctx).Where("owner_id = ?", ownerId).First(&org).Error
	return org, err
}

func (d *GORMOrganizationDAO) Verify(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Organization{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified": true,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (d *GORMOrganizationDAO) ListUnverified(ctx context.Context, b *querybuilder.Builder) ([]Organization, error) {
	var orgs []Organization
	err := b.Query(d.unverified(ctx)).Find(&orgs).Error
	return orgs, err
}

func (d *GORMOrganizationDAO) CountUnverified(ctx context.Context, b *querybuilder.Builder) (querybuilder.Meta, error) {
	return b.CountTotal(ctx, d.unverified(ctx))
}

func (d *GORMOrganizationDAO) unverified(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).Model(&Organization{}).Where("is_verified = ?", false)
}

type Organization struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(256);not null"`
	OwnerId     int64  `gorm:"uniqueIndex;not null"`
	Logo        string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`

	Street string `gorm:"type:varchar(256)"`
	City   string `gorm:"type:varchar(128)"`
	State  string `gorm:"type:varchar(128)"`
	Zip    string `gorm:"type:varchar(32)"`

	Phone   string `gorm:"type:varchar(32)"`
	Email   string `gorm:"type:varchar(256)"`
	Website string `gorm:"type:varchar(512)"`

	IsVerified bool `gorm:"index"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
