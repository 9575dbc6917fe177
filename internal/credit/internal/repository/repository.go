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
	"slices"

	"github.com/ecodeclub/checkin/internal/credit/internal/domain"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/ekit/slice"
)

var ErrDuplicatedCreditLog = errors.New("重复的积分流水")

//go:generate mockgen -source=./repository.go -destination=../../mocks/repository.mock.go -package=creditmocks CreditRepository
type CreditRepository interface {
	// AddCredits credit.Logs 里只能有一条流水，Key 已经存在时返回 ErrDuplicatedCreditLog
	AddCredits(ctx context.Context, credit domain.Credit) error
	// GetCreditByName 没有任何积分记录的用户返回零值
	GetCreditByName(ctx context.Context, name string) (domain.Credit, error)
}

type creditRepository struct {
	store store.Store
}

func NewCreditRepository(s store.Store) CreditRepository {
	return &creditRepository{store: s}
}

func (r *creditRepository) AddCredits(ctx context.Context, credit domain.Credit) error {
	l, err := r.load(ctx)
	if err != nil {
		return err
	}
	c := l[credit.Name]
	for _, log := range r.toCreditLogsEntity(credit) {
		if slices.ContainsFunc(c.Logs, func(src CreditLog) bool {
			return src.Key == log.Key
		}) {
			return ErrDuplicatedCreditLog
		}
		c.Logs = append(c.Logs, log)
		c.Total += log.Change
	}
	l[credit.Name] = c
	return store.SaveJSON(ctx, r.store, store.KeyCredits, l)
}

func (r *creditRepository) GetCreditByName(ctx context.Context, name string) (domain.Credit, error) {
	l, err := r.load(ctx)
	if err != nil {
		return domain.Credit{}, err
	}
	return r.toDomainCredit(name, l[name]), nil
}

func (r *creditRepository) load(ctx context.Context) (ledger, error) {
	l, _, err := store.LoadJSON[ledger](ctx, r.store, store.KeyCredits)
	if err != nil {
		return nil, err
	}
	if l == nil {
		l = ledger{}
	}
	return l, nil
}

func (r *creditRepository) toCreditLogsEntity(c domain.Credit) []CreditLog {
	return slice.Map(c.Logs, func(idx int, src domain.CreditLog) CreditLog {
		return CreditLog{
			Key:           src.Key,
			ChallengeID:   src.ChallengeID,
			ChallengeName: src.ChallengeName,
			Date:          src.Date,
			Change:        src.ChangeAmount,
			Ctime:         src.Ctime,
		}
	})
}

func (r *creditRepository) toDomainCredit(name string, c Credit) domain.Credit {
	return domain.Credit{
		Name:        name,
		TotalAmount: c.Total,
		Logs: slice.Map(c.Logs, func(idx int, src CreditLog) domain.CreditLog {
			return domain.CreditLog{
				Key:           src.Key,
				ChallengeID:   src.ChallengeID,
				ChallengeName: src.ChallengeName,
				Date:          src.Date,
				ChangeAmount:  src.Change,
				Ctime:         src.Ctime,
			}
		}),
	}
}
