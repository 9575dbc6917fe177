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

	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/checkin/internal/user/internal/domain"
)

var ErrUserNotFound = errors.New("当前用户不存在")

//go:generate mockgen -source=./user.go -destination=../../mocks/repository.mock.go -package=usermocks UserRepository
type UserRepository interface {
	// CurrentUser 还没有设置过当前用户的时候返回 ErrUserNotFound
	CurrentUser(ctx context.Context) (domain.User, error)
	SetCurrentUser(ctx context.Context, u domain.User) error
	// Users 历史上切换过的所有用户名
	Users(ctx context.Context) ([]string, error)
	SaveUsers(ctx context.Context, users []string) error
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

// currentUser 存的是用户名本身，不是 JSON 字符串
func (r *userRepository) CurrentUser(ctx context.Context) (domain.User, error) {
	name, err := r.store.Load(ctx, store.KeyCurrentUser)
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return domain.User{}, ErrUserNotFound
	case err != nil:
		return domain.User{}, err
	case len(name) == 0:
		return domain.User{}, ErrUserNotFound
	}
	return domain.User{Name: string(name)}, nil
}

func (r *userRepository) SetCurrentUser(ctx context.Context, u domain.User) error {
	return r.store.Save(ctx, store.KeyCurrentUser, []byte(u.Name))
}

func (r *userRepository) Users(ctx context.Context) ([]string, error) {
	users, _, err := store.LoadJSON[[]string](ctx, r.store, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []string{}
	}
	return users, nil
}

func (r *userRepository) SaveUsers(ctx context.Context, users []string) error {
	return store.SaveJSON(ctx, r.store, store.KeyUsers, users)
}
