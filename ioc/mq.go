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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/checkin/config"
	"github.com/ecodeclub/checkin/internal/pkg/mqx"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitMQ() mq.MQ {
	var cfg config.KafkaConfig
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		q, err := initMQ(cfg.Network, cfg.Addresses, cfg.Topics)
		if err == nil {
			return mqx.NewTraceMQ(q)
		}
		next, ok := strategy.Next()
		if !ok {
			panic(fmt.Errorf("InitMQ 重试失败: %w", err))
		}
		elog.DefaultLogger.Warn("连接 kafka 失败，稍后重试", elog.FieldErr(err), elog.Any("间隔", next))
		time.Sleep(next)
	}
}

func initMQ(network string, addresses []string, topics []config.TopicConfig) (mq.MQ, error) {
	q, err := kafka.NewMQ(network, addresses)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range topics {
		if err = q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			return nil, fmt.Errorf("创建Topic失败: Topic = %s, Partitions = %d: %w", t.Name, t.Partitions, err)
		}
	}
	return q, nil
}
