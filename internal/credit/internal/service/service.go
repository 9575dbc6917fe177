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

	"github.com/ecodeclub/checkin/internal/credit/internal/domain"
	"github.com/ecodeclub/checkin/internal/credit/internal/repository"
)

var (
	ErrDuplicatedCreditLog = repository.ErrDuplicatedCreditLog
	ErrInvalidCreditLog    = errors.New("积分流水信息非法")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/credit.mock.go -package=creditmocks Service
type Service interface {
	AddCredits(ctx context.Context, credit domain.Credit) error
	GetCreditsByName(ctx context.Context, name string) (domain.Credit, error)
}

type service struct {
	repo repository.CreditRepository
}

func NewCreditService(repo repository.CreditRepository) Service {
	return &service{repo: repo}
}

func (s *service) AddCredits(ctx context.Context, credit domain.Credit) error {
	if credit.Name == "" || len(credit.Logs) != 1 || credit.Logs[0].Key == "" {
		return fmt.Errorf("%w", ErrInvalidCreditLog)
	}
	if credit.Logs[0].ChangeAmount <= 0 {
		return fmt.Errorf("%w: 积分变动必须为正数", ErrInvalidCreditLog)
	}
	return s.repo.AddCredits(ctx, credit)
}

func (s *service) GetCreditsByName(ctx context.Context, name string) (domain.Credit, error) {
	return s.repo.GetCreditByName(ctx, name)
}
