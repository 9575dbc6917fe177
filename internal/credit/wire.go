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

//go:build wireinject

package credit

import (
	"context"

	"github.com/ecodeclub/checkin/internal/credit/internal/event"
	"github.com/ecodeclub/checkin/internal/credit/internal/event/cache"
	"github.com/ecodeclub/checkin/internal/credit/internal/repository"
	"github.com/ecodeclub/checkin/internal/credit/internal/service"
	"github.com/ecodeclub/checkin/internal/credit/internal/web"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(storeModule *store.Module, userModule *user.Module, q mq.MQ, e ecache.Cache) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*store.Module), "Store"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		repository.NewCreditRepository,
		service.NewCreditService,
		cache.NewCreditECache,
		initCreditConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initCreditConsumer(svc service.Service, c cache.CreditCache, q mq.MQ) (*event.PointsAwardedConsumer, error) {
	consumer, err := event.NewPointsAwardedConsumer(svc, c, q)
	if err != nil {
		return nil, err
	}
	consumer.Start(context.Background())
	return consumer, nil
}
