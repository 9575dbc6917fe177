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
	"time"

	"github.com/ecodeclub/checkin/internal/challenge/internal/domain"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/ekit/slice"
)

var ErrChallengeNotFound = errors.New("挑战不存在")

// ChallengeRepository 所有挑战存放在同一份 challenges 文档里，
// 每次修改都是读出整份文档、改完再整份写回
//
//go:generate mockgen -source=./challenge.go -destination=../../mocks/repository.mock.go -package=challengemocks ChallengeRepository
type ChallengeRepository interface {
	List(ctx context.Context) ([]domain.Challenge, error)
	FindByID(ctx context.Context, id string) (domain.Challenge, error)
	// Save 按 ID 覆盖已有的挑战，没有就追加在末尾
	Save(ctx context.Context, c domain.Challenge) error
}

type challengeRepository struct {
	store store.Store
}

func NewChallengeRepository(s store.Store) ChallengeRepository {
	return &challengeRepository{store: s}
}

func (r *challengeRepository) List(ctx context.Context) ([]domain.Challenge, error) {
	docs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(docs, func(idx int, src Challenge) domain.Challenge {
		return r.toDomain(src)
	}), nil
}

func (r *challengeRepository) FindByID(ctx context.Context, id string) (domain.Challenge, error) {
	docs, err := r.load(ctx)
	if err != nil {
		return domain.Challenge{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			return r.toDomain(doc), nil
		}
	}
	return domain.Challenge{}, ErrChallengeNotFound
}

func (r *challengeRepository) Save(ctx context.Context, c domain.Challenge) error {
	docs, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc := r.toEntity(c)
	idx := slices.IndexFunc(docs, func(src Challenge) bool {
		return src.ID == c.ID
	})
	if idx >= 0 {
		docs[idx] = doc
	} else {
		docs = append(docs, doc)
	}
	return store.SaveJSON(ctx, r.store, store.KeyChallenges, docs)
}

func (r *challengeRepository) load(ctx context.Context) ([]Challenge, error) {
	docs, _, err := store.LoadJSON[[]Challenge](ctx, r.store, store.KeyChallenges)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []Challenge{}
	}
	return docs, nil
}

func (r *challengeRepository) toDomain(c Challenge) domain.Challenge {
	createdAt, _ := time.Parse(time.RFC3339Nano, c.CreatedAt)
	return domain.Challenge{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Stake:       c.Stake,
		CreatedAt:   createdAt,
		Participants: slice.Map(c.Participants, func(idx int, src Participant) domain.Participant {
			return domain.Participant{
				Name:    src.Name,
				Points:  src.Points,
				VotedOn: nonNil(src.VotedOn),
				Submissions: slice.Map(src.Submissions, func(idx int, src Submission) domain.Submission {
					return domain.Submission{
						Date:          src.Date,
						Proof:         src.Proof,
						IsText:        src.IsText,
						Status:        domain.SubmissionStatus(src.Status),
						PointsAwarded: src.PointsAwarded,
						Votes: slice.Map(src.Votes, func(idx int, src Vote) domain.Vote {
							return domain.Vote{Voter: src.Voter, Vote: domain.VoteType(src.Vote)}
						}),
					}
				}),
			}
		}),
	}
}

func (r *challengeRepository) toEntity(c domain.Challenge) Challenge {
	return Challenge{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Stake:       c.Stake,
		CreatedAt:   domain.FormatCreatedAt(c.CreatedAt),
		Participants: slice.Map(c.Participants, func(idx int, src domain.Participant) Participant {
			return Participant{
				Name:    src.Name,
				Points:  src.Points,
				VotedOn: nonNil(src.VotedOn),
				Submissions: slice.Map(src.Submissions, func(idx int, src domain.Submission) Submission {
					return Submission{
						Date:          src.Date,
						Proof:         src.Proof,
						IsText:        src.IsText,
						Status:        src.Status.String(),
						PointsAwarded: src.PointsAwarded,
						Votes: slice.Map(src.Votes, func(idx int, src domain.Vote) Vote {
							return Vote{Voter: src.Voter, Vote: string(src.Vote)}
						}),
					}
				}),
			}
		}),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
