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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestStatisticsGORMDAO_CountOrders(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(DISTINCT\\(`order_id`\\)\\) FROM `order_items` WHERE org_id = \\?").
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `orders` WHERE customer_id = \\?").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	d := NewStatisticsGORMDAO(db)
	cnt, err := d.CountOrders(context.Background(), Scope{OrgId: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
	cnt, err = d.CountOrders(context.Background(), Scope{CustomerId: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cnt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsGORMDAO_PaymentStatusStats(t *testing.T) {
	testCases := []struct {
		name  string
		scope Scope
		mock  func(mock sqlmock.Sqlmock)
	}{
		{
			name: "全部订单",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT payment_status AS status, COUNT\\(\\*\\) AS cnt, COALESCE\\(SUM\\(total_price\\), 0\\) AS revenue FROM `orders` GROUP BY `payment_status`").
					WillReturnRows(sqlmock.NewRows([]string{"status", "cnt", "revenue"}).
						AddRow("Paid", 2, "55.00").
						AddRow("Pending", 1, "11.00"))
			},
		},
		{
			name:  "按组织统计订单项",
			scope: Scope{OrgId: 100},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT o.payment_status AS status, COUNT\\(DISTINCT o.id\\) AS cnt, COALESCE\\(SUM\\(i.unit_price \\* i.quantity\\), 0\\) AS revenue FROM order_items AS i JOIN orders AS o ON o.id = i.order_id WHERE i.org_id = \\? GROUP BY `o`.`payment_status`").
					WithArgs(100).
					WillReturnRows(sqlmock.NewRows([]string{"status", "cnt", "revenue"}).
						AddRow("Paid", 2, "55.00").
						AddRow("Pending", 1, "11.00"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			res, err := NewStatisticsGORMDAO(db).PaymentStatusStats(context.Background(), tc.scope)
			require.NoError(t, err)
			require.Len(t, res, 2)
			assert.Equal(t, "Paid", res[0].Status)
			assert.Equal(t, int64(2), res[0].Cnt)
			assert.Equal(t, "55", res[0].Revenue.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatisticsGORMDAO_MonthlySales(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT YEAR\\(FROM_UNIXTIME\\(ctime DIV 1000\\)\\) AS year, .* FROM `orders` WHERE payment_status = \\? GROUP BY year, month ORDER BY year, month").
		WithArgs("Paid").
		WillReturnRows(sqlmock.NewRows([]string{"year", "month", "revenue", "orders"}).
			AddRow(2024, 11, "22.00", 1).
			AddRow(2024, 12, "33.00", 2))
	res, err := NewStatisticsGORMDAO(db).MonthlySales(context.Background(), Scope{})
	require.NoError(t, err)
	assert.Equal(t, 2, len(res))
	assert.Equal(t, 12, res[1].Month)
	assert.Equal(t, int64(2), res[1].Orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsGORMDAO_ItemStatusStats(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT i.status AS status, COUNT\\(\\*\\) AS cnt, COALESCE\\(SUM\\(i.quantity\\), 0\\) AS quantity FROM order_items AS i JOIN orders AS o ON o.id = i.order_id WHERE o.customer_id = \\? GROUP BY `i`.`status`").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"status", "cnt", "quantity"}).
			AddRow("Pending", 2, 5).
			AddRow("Delivered", 1, 1))
	res, err := NewStatisticsGORMDAO(db).ItemStatusStats(context.Background(), Scope{CustomerId: 5})
	require.NoError(t, err)
	assert.Equal(t, []ItemStatusAgg{
		{Status: "Pending", Cnt: 2, Quantity: 5},
		{Status: "Delivered", Cnt: 1, Quantity: 1},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}
