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

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/checkin/internal/store/internal/repository"
)

// 持久化的文档键
const (
	KeyChallenges  = "challenges"
	KeyCurrentUser = "currentUser"
	KeyUsers       = "users"
	KeyCredits     = "credits"
)

var ErrDocumentNotFound = repository.ErrDocumentNotFound

type Store = repository.DocumentRepository

type Module struct {
	Store Store
}

// LoadJSON 读取并反序列化 key 对应的文档，文档不存在时 ok 为 false
func LoadJSON[T any](ctx context.Context, s Store, key string) (val T, ok bool, err error) {
	data, err := s.Load(ctx, key)
	if errors.Is(err, ErrDocumentNotFound) {
		return val, false, nil
	}
	if err != nil {
		return val, false, err
	}
	if err = json.Unmarshal(data, &val); err != nil {
		return val, false, fmt.Errorf("反序列化文档 %s 失败: %w", key, err)
	}
	return val, true, nil
}

func SaveJSON[T any](ctx context.Context, s Store, key string, val T) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("序列化文档 %s 失败: %w", key, err)
	}
	return s.Save(ctx, key, data)
}
