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
	"errors"

	"github.com/ecodeclub/checkin/internal/store/internal/repository/cache"
	"github.com/ecodeclub/checkin/internal/store/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./dao/document.go -destination=./mocks/dao.mock.go -package=repomocks DocumentDAO
//go:generate mockgen -source=./cache/document.go -destination=./mocks/cache.mock.go -package=repomocks DocumentCache

var ErrDocumentNotFound = dao.ErrDocumentNotFound

// DocumentRepository 持久化的键值存储，值是完整的 JSON 文档。
// 没有事务也没有锁，并发的读-改-写会丢更新。
//
//go:generate mockgen -source=./document.go -destination=../../mocks/store.mock.go -package=storemocks DocumentRepository
type DocumentRepository interface {
	// Load 不存在时返回 ErrDocumentNotFound
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type documentRepository struct {
	dao    dao.DocumentDAO
	cache  cache.DocumentCache
	logger *elog.Component
}

func NewDocumentRepository(d dao.DocumentDAO, c cache.DocumentCache) DocumentRepository {
	return &documentRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *documentRepository) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.cache.Get(ctx, key)
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, cache.ErrDocumentNotFound) {
		r.logger.Error("读取文档缓存失败", elog.String("key", key), elog.FieldErr(err))
	}
	doc, err := r.dao.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	val = []byte(doc.Value)
	if err = r.cache.Set(ctx, key, val); err != nil {
		r.logger.Error("回写文档缓存失败", elog.String("key", key), elog.FieldErr(err))
	}
	return val, nil
}

func (r *documentRepository) Save(ctx context.Context, key string, value []byte) error {
	err := r.dao.Upsert(ctx, dao.Document{Key: key, Value: string(value)})
	if err != nil {
		return err
	}
	// 删缓存而不是更新缓存，下一次读会回填
	if err = r.cache.Del(ctx, key); err != nil {
		r.logger.Error("删除文档缓存失败", elog.String("key", key), elog.FieldErr(err))
	}
	return nil
}
