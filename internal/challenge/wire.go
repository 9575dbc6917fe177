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

package challenge

import (
	"github.com/ecodeclub/checkin/internal/challenge/internal/event"
	"github.com/ecodeclub/checkin/internal/challenge/internal/repository"
	"github.com/ecodeclub/checkin/internal/challenge/internal/service"
	"github.com/ecodeclub/checkin/internal/challenge/internal/web"
	"github.com/ecodeclub/checkin/internal/pkg/snowflake"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(storeModule *store.Module,
	userModule *user.Module,
	q mq.MQ,
	idGen snowflake.Generator) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*store.Module), "Store"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		repository.NewChallengeRepository,
		event.NewPointsAwardedEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
