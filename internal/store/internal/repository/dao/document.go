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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDocumentNotFound = errors.New("文档不存在")

type DocumentDAO interface {
	// Get 按键读取整份文档
	Get(ctx context.Context, key string) (Document, error)
	// Upsert 整份覆盖写入，后写者胜
	Upsert(ctx context.Context, doc Document) error
}

type documentGORMDAO struct {
	db *egorm.Component
}

func NewDocumentGORMDAO(db *egorm.Component) DocumentDAO {
	return &documentGORMDAO{db: db}
}

func (d *documentGORMDAO) Get(ctx context.Context, key string) (Document, error) {
	var doc Document
	err := d.db.WithContext(ctx).Where("doc_key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, ErrDocumentNotFound
	}
	return doc, err
}

func (d *documentGORMDAO) Upsert(ctx context.Context, doc Document) error {
	now := time.Now().UnixMilli()
	doc.Ctime = now
	doc.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"value", "utime"}),
	}).Create(&doc).Error
}
