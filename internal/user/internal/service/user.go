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

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/ecodeclub/checkin/internal/user/internal/domain"
	"github.com/ecodeclub/checkin/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrEmptyName = errors.New("用户名不能为空")

//go:generate mockgen -source=./user.go -destination=../../mocks/user.mock.go -package=usermocks UserService
type UserService interface {
	// CurrentUser 没有当前用户的时候生成一个访客身份并保存下来
	CurrentUser(ctx context.Context) (domain.User, error)
	// Switch 切换当前用户，同时记到用户列表里
	Switch(ctx context.Context, name string) (domain.User, error)
}

// GuestNamer 生成访客用户名
type GuestNamer func() string

// NewGuestNamer 生成 prefix 加上 [0, n) 之间的随机数
func NewGuestNamer(prefix string, n int) GuestNamer {
	return func() string {
		return prefix + strconv.Itoa(rand.IntN(n))
	}
}

type userService struct {
	repo   repository.UserRepository
	guest  GuestNamer
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository, guest GuestNamer) UserService {
	return &userService{
		repo:   repo,
		guest:  guest,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) CurrentUser(ctx context.Context) (domain.User, error) {
	u, err := svc.repo.CurrentUser(ctx)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	u = domain.User{Name: svc.guest()}
	if err = svc.repo.SetCurrentUser(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("保存访客身份失败: %w", err)
	}
	svc.logger.Info("生成访客身份", elog.String("name", u.Name))
	return u, nil
}

func (svc *userService) Switch(ctx context.Context, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrEmptyName
	}
	u := domain.User{Name: name}
	if err := svc.repo.SetCurrentUser(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("切换用户失败: %w", err)
	}
	users, err := svc.repo.Users(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("查询用户列表失败: %w", err)
	}
	if slices.Contains(users, name) {
		return u, nil
	}
	if err = svc.repo.SaveUsers(ctx, append(users, name)); err != nil {
		return domain.User{}, fmt.Errorf("保存用户列表失败: %w", err)
	}
	return u, nil
}
