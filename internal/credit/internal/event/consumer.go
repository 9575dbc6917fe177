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

package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/checkin/internal/credit/internal/domain"
	"github.com/ecodeclub/checkin/internal/credit/internal/event/cache"
	"github.com/ecodeclub/checkin/internal/credit/internal/service"
	"github.com/ecodeclub/checkin/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type PointsAwardedConsumer struct {
	svc      service.Service
	cache    cache.CreditCache
	consumer mq.Consumer
	logger   *elog.Component
	cancel   context.CancelFunc
}

func NewPointsAwardedConsumer(svc service.Service, c cache.CreditCache, q mq.MQ) (*PointsAwardedConsumer, error) {
	const groupID = "credit"
	consumer, err := q.Consumer(pointsAwardedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PointsAwardedConsumer{
		svc:      svc,
		cache:    c,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 取消或者 Stop 之后退出
func (c *PointsAwardedConsumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费加分事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PointsAwardedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Decode[PointsAwardedEvent](msg)
	if err != nil {
		return err
	}

	key := evt.Key()
	ok, err := c.cache.SetNXEventKey(ctx, key)
	if err != nil {
		// 缓存不可用的时候靠积分文档里的 Key 去重
		c.logger.Warn("设置消息处理标记失败", elog.FieldErr(err), elog.String("key", key))
	} else if !ok {
		c.logger.Info("重复的加分消息", elog.String("key", key))
		return nil
	}

	err = c.svc.AddCredits(ctx, domain.Credit{
		Name: evt.Participant,
		Logs: []domain.CreditLog{
			{
				Key:           key,
				ChallengeID:   evt.ChallengeID,
				ChallengeName: evt.ChallengeName,
				Date:          evt.Date,
				ChangeAmount:  evt.Points,
				Ctime:         evt.AwardedAt,
			},
		},
	})
	switch {
	case errors.Is(err, service.ErrDuplicatedCreditLog):
		c.logger.Info("积分流水已经存在", elog.String("key", key))
		return nil
	case err != nil:
		// 删掉标记，重发的消息还能再处理
		if _, derr := c.cache.DelEventKey(ctx, key); derr != nil {
			c.logger.Error("删除消息处理标记失败", elog.FieldErr(derr), elog.String("key", key))
		}
		c.logger.Error("变更积分失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}
	return nil
}

func (c *PointsAwardedConsumer) Stop(_ context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumer.Close()
}
