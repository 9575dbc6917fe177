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
	"time"

	"github.com/ecodeclub/checkin/internal/challenge/internal/domain"
	"github.com/ecodeclub/checkin/internal/challenge/internal/event"
	"github.com/ecodeclub/checkin/internal/challenge/internal/repository"
	"github.com/ecodeclub/checkin/internal/pkg/snowflake"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// ErrNotFound 挑战不存在、用户不是参与者、或者对应日期没有提交，都返回这个错误
var ErrNotFound = errors.New("记录不存在")

//go:generate mockgen -source=./challenge.go -destination=../../mocks/challenge.mock.go -package=challengemocks Service
type Service interface {
	// Create 按 participants 的顺序创建参与者，不做去重和校验
	Create(ctx context.Context, c domain.Challenge, participants []string) (domain.Challenge, error)
	// Join 已经是参与者的话直接返回，不会写存储
	Join(ctx context.Context, id, username string) (domain.Challenge, error)
	// SubmitProgress 提交当天（UTC）的打卡
	SubmitProgress(ctx context.Context, id, username, proof string, isText bool) (domain.Challenge, error)
	Vote(ctx context.Context, id, voter, submitter, date string, vote domain.VoteType) (domain.Challenge, error)
	Detail(ctx context.Context, id string) (domain.Challenge, error)
	// View 详情页需要的全部数据，user 是当前用户
	View(ctx context.Context, id, user string) (domain.View, error)
	ActiveChallenges(ctx context.Context) ([]domain.Challenge, error)
	CompletedChallenges(ctx context.Context) ([]domain.Challenge, error)
	TimeRemaining(endDate string) domain.TimeRemaining
}

type service struct {
	repo     repository.ChallengeRepository
	idGen    snowflake.Generator
	producer event.PointsAwardedEventProducer
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.ChallengeRepository,
	idGen snowflake.Generator,
	producer event.PointsAwardedEventProducer) Service {
	return &service{
		repo:     repo,
		idGen:    idGen,
		producer: producer,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, c domain.Challenge, participants []string) (domain.Challenge, error) {
	c.ID = s.idGen.Generate().String()
	c.CreatedAt = s.now().UTC()
	c.Participants = slice.Map(participants, func(idx int, src string) domain.Participant {
		return domain.NewParticipant(src)
	})
	if err := s.repo.Save(ctx, c); err != nil {
		return domain.Challenge{}, fmt.Errorf("保存挑战失败: %w", err)
	}
	return c, nil
}

func (s *service) Join(ctx context.Context, id, username string) (domain.Challenge, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return domain.Challenge{}, err
	}
	if c.HasParticipant(username) {
		return c, nil
	}
	c.Participants = append(c.Participants, domain.NewParticipant(username))
	if err = s.repo.Save(ctx, c); err != nil {
		return domain.Challenge{}, fmt.Errorf("保存挑战失败: %w", err)
	}
	return c, nil
}

func (s *service) SubmitProgress(ctx context.Context, id, username, proof string, isText bool) (domain.Challenge, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return domain.Challenge{}, err
	}
	p, ok := c.Participant(username)
	if !ok {
		return domain.Challenge{}, ErrNotFound
	}
	p.Submit(domain.Today(s.now()), proof, isText)
	if err = s.repo.Save(ctx, c); err != nil {
		return domain.Challenge{}, fmt.Errorf("保存打卡失败: %w", err)
	}
	return c, nil
}

func (s *service) Vote(ctx context.Context, id, voter, submitter, date string, vote domain.VoteType) (domain.Challenge, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return domain.Challenge{}, err
	}
	p, ok := c.Participant(submitter)
	if !ok {
		return domain.Challenge{}, ErrNotFound
	}
	sub, ok := p.Submission(date)
	if !ok {
		return domain.Challenge{}, ErrNotFound
	}
	sub.UpsertVote(domain.Vote{Voter: voter, Vote: vote})
	awarded := c.UpdateSubmissionStatus(p, sub)
	if err = s.repo.Save(ctx, c); err != nil {
		return domain.Challenge{}, fmt.Errorf("保存投票失败: %w", err)
	}
	if awarded {
		s.produceAwarded(ctx, c, submitter, date)
	}
	return c, nil
}

// 加分已经落盘了，发消息失败只记录日志
func (s *service) produceAwarded(ctx context.Context, c domain.Challenge, submitter, date string) {
	evt := event.NewPointsAwardedEvent(c.ID, c.Name, submitter, date, s.now())
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送加分消息失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}

func (s *service) Detail(ctx context.Context, id string) (domain.Challenge, error) {
	return s.find(ctx, id)
}

func (s *service) View(ctx context.Context, id, user string) (domain.View, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return domain.View{}, err
	}
	return domain.NewView(c, user, s.now()), nil
}

func (s *service) ActiveChallenges(ctx context.Context) ([]domain.Challenge, error) {
	active, _, err := s.partition(ctx)
	return active, err
}

func (s *service) CompletedChallenges(ctx context.Context) ([]domain.Challenge, error) {
	_, completed, err := s.partition(ctx)
	return completed, err
}

func (s *service) TimeRemaining(endDate string) domain.TimeRemaining {
	return domain.NewTimeRemaining(endDate, s.now())
}

func (s *service) partition(ctx context.Context) (active, completed []domain.Challenge, err error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("查询挑战列表失败: %w", err)
	}
	active, completed = domain.Partition(cs, s.now())
	return active, completed, nil
}

func (s *service) find(ctx context.Context, id string) (domain.Challenge, error) {
	c, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrChallengeNotFound):
		return domain.Challenge{}, ErrNotFound
	case err != nil:
		return domain.Challenge{}, fmt.Errorf("查询挑战失败: %w", err)
	}
	return c, nil
}
