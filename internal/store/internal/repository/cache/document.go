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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const documentExpiration = 24 * time.Hour

var ErrDocumentNotFound = errors.New("缓存中没有文档")

type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

type documentCache struct {
	ec ecache.Cache
}

func NewDocumentCache(ec ecache.Cache) DocumentCache {
	return &documentCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "document:",
		},
	}
}

func (d *documentCache) Get(ctx context.Context, key string) ([]byte, error) {
	val := d.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return nil, ErrDocumentNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.AsString()
	if err != nil {
		return nil, errors.Wrap(err, "缓存内容不是字符串")
	}
	return []byte(str), nil
}

func (d *documentCache) Set(ctx context.Context, key string, value []byte) error {
	return d.ec.Set(ctx, key, string(value), documentExpiration)
}

func (d *documentCache) Del(ctx context.Context, key string) error {
	_, err := d.ec.Delete(ctx, key)
	return err
}
