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

package ioc

import (
	"github.com/ecodeclub/checkin/internal/challenge"
	"github.com/ecodeclub/checkin/internal/credit"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		store.InitModule,
		user.InitModule,
		challenge.InitModule,
		credit.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*challenge.Module), "Hdl"),
		wire.FieldsOf(new(*credit.Module), "Hdl"),
		initConsumers,
		initGinxServer)
	return new(App), nil
}
