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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type document struct {
	Name  string
	Value string
}

func TestGormTracingPlugin(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(mock sqlmock.Sqlmock)
		wantErr  error
		wantCode codes.Code
	}{
		{
			name: "查询成功",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"name", "value"}).AddRow("challenges", "[]")
				mock.ExpectQuery("SELECT .* FROM `documents`").WillReturnRows(rows)
			},
			wantCode: codes.Ok,
		},
		{
			name: "没有数据",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM `documents`").
					WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))
			},
			wantErr:  gorm.ErrRecordNotFound,
			wantCode: codes.Ok,
		},
		{
			name: "查询失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM `documents`").WillReturnError(errors.New("mock db error"))
			},
			wantErr:  errors.New("mock db error"),
			wantCode: codes.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()
			tc.mock(mock)

			db, err := gorm.Open(mysql.New(mysql.Config{
				Conn:                      sqlDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{SkipDefaultTransaction: true})
			require.NoError(t, err)

			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			require.NoError(t, db.Use(NewGormTracingPluginWithProvider(provider)))

			var d document
			err = db.Where("`name` = ?", "challenges").First(&d).Error
			assert.Equal(t, tc.wantErr, err)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, "documents SELECT", span.Name())
			assert.Equal(t, trace.SpanKindClient, span.SpanKind())
			assert.Equal(t, tc.wantCode, span.Status().Code)
			assert.Contains(t, span.Attributes(), attribute.String("db.table", "documents"))
			assert.Contains(t, span.Attributes(), attribute.String("db.operation", "SELECT"))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
