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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/mealhub/internal/pkg/querybuilder"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestOrderGORMDAO_UpdatePayment(t *testing.T) {
	testCases := []struct {
		name        string
		to          string
		mock        func(mock sqlmock.Sqlmock)
		wantChanged bool
		wantErr     error
	}{
		{
			name: "从待支付变成已支付",
			to:   "Paid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .*`payment_status`=\\?.* WHERE txn_id = \\? AND payment_status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantChanged: true,
		},
		{
			name: "已经是终态，只更新网关信息",
			to:   "Paid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .* WHERE txn_id = \\? AND payment_status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE `orders` SET .* WHERE txn_id = \\?$").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "未知状态只更新网关信息",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .* WHERE txn_id = \\?$").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "订单不存在",
			to:   "Failed",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE `orders` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "数据库错误",
			to:   "Paid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			changed, err := NewOrderGORMDAO(db).UpdatePayment(context.Background(),
				Transaction{Id: "sp1", BankStatus: "Success"}, "Pending", tc.to)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantChanged, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderGORMDAO_CancelUnpaid(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `orders` SET `payment_status`=\\?,`utime`=\\? WHERE id = \\? AND payment_status = \\? AND txn_id = \\?").
		WithArgs("Cancelled", sqlmock.AnyArg(), 9, "Pending", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `orders` SET").
		WithArgs("Cancelled", sqlmock.AnyArg(), 9, "Pending", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	d := NewOrderGORMDAO(db)
	changed, err := d.CancelUnpaid(context.Background(), 9, "Pending", "Cancelled")
	require.NoError(t, err)
	assert.True(t, changed)
	// 第二次已经不是待支付了
	changed, err = d.CancelUnpaid(context.Background(), 9, "Pending", "Cancelled")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGORMDAO_UpdateItemStatus(t *testing.T) {
	testCases := []struct {
		name    string
		orgId   int64
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:  "管理员不限制组织",
			orgId: 0,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `order_items` SET `status`=\\?,`utime`=\\? WHERE order_id = \\? AND meal_id = \\?$").
					WithArgs("Preparing", sqlmock.AnyArg(), 9, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "服务商只能改自己组织的",
			orgId: 100,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `order_items` SET `status`=\\?,`utime`=\\? WHERE \\(order_id = \\? AND meal_id = \\?\\) AND org_id = \\?").
					WithArgs("Preparing", sqlmock.AnyArg(), 9, 1, 100).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			err := NewOrderGORMDAO(db).UpdateItemStatus(context.Background(), 9, 1, tc.orgId, "Preparing")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderGORMDAO_ListUnpaid(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "sn", "payment_status", "txn_id"}).
		AddRow(11, "sn-11", "Pending", "sp11").
		AddRow(12, "sn-12", "Pending", "sp12")
	mock.ExpectQuery("SELECT \\* FROM `orders` WHERE \\(payment_status = \\? AND id > \\? AND ctime >= \\? AND ctime < \\?\\) AND txn_id <> \\? ORDER BY id LIMIT \\?").
		WithArgs("Pending", 10, 100, 200, "", 2).
		WillReturnRows(rows)

	res, err := NewOrderGORMDAO(db).ListUnpaid(context.Background(), UnpaidQuery{
		Status:     "Pending",
		HasTxn:     true,
		CtimeStart: 100,
		CtimeEnd:   200,
		AfterId:    10,
		Limit:      2,
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "sp12", res[1].Transaction.Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGORMDAO_ListSearchWithinScope(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `orders` WHERE customer_id = \\? AND LOWER\\(`sn`\\) LIKE \\? ORDER BY `ctime` DESC LIMIT \\?").
		WithArgs(7, "%abc%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sn", "customer_id"}).AddRow(1, "abc-1", 7))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `orders` WHERE customer_id = \\? AND LOWER\\(`sn`\\) LIKE \\?$").
		WithArgs(7, "%abc%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	b := querybuilder.NewBuilder(map[string]string{querybuilder.KeySearchTerm: "abc"},
		querybuilder.WithColumns(map[string]string{"sn": "sn"})).
		Search("sn").Sort().Paginate()
	d := NewOrderGORMDAO(db)
	res, err := d.List(context.Background(), b, Scope{CustomerId: 7})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(7), res[0].CustomerId)
	meta, err := d.CountTotal(context.Background(), b, Scope{CustomerId: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
