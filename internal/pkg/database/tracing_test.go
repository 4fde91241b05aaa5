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

package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type meal struct {
	Id   int64
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

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
	plugin := &GormTracingPlugin{tracer: tp.Tracer("test")}
	require.NoError(t, db.Use(plugin))

	mock.ExpectQuery("SELECT \\* FROM `meals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "soup"))
	mock.ExpectQuery("SELECT \\* FROM `meals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	var res []meal
	require.NoError(t, db.WithContext(context.Background()).Find(&res).Error)
	var one meal
	err = db.WithContext(context.Background()).Where("id = ?", 2).First(&one).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.Equal(t, "meals SELECT", span.Name())
		// 查不到数据不算失败
		assert.Equal(t, codes.Ok, span.Status().Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
