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

	"github.com/ecodeclub/checkin/internal/credit"
)

// Consumer 启动的时候已经开始消费，退出的时候关掉
type Consumer interface {
	Stop(ctx context.Context) error
}

func initConsumers(creditModule *credit.Module) []Consumer {
	return []Consumer{
		creditModule.C,
	}
}
