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

package web

import (
	"encoding/json"

	"github.com/ecodeclub/checkin/internal/challenge/internal/errs"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

type Action string

const (
	ActionDashboard Action = "dashboard"
	ActionDetail    Action = "detail"
	ActionCreate    Action = "create"
	ActionJoin      Action = "join"
	ActionSubmit    Action = "submit"
	ActionVote      Action = "vote"
)

// actionFunc user 是发起操作的当前用户
type actionFunc func(ctx *ginx.Context, user string, payload json.RawMessage) (ginx.Result, error)

func (h *Handler) actionTable() map[Action]actionFunc {
	return map[Action]actionFunc{
		ActionDashboard: func(ctx *ginx.Context, user string, _ json.RawMessage) (ginx.Result, error) {
			return h.dashboard(ctx, user)
		},
		ActionDetail: decode(h.detail),
		ActionCreate: decode(h.create),
		ActionJoin:   decode(h.join),
		ActionSubmit: decode(h.submit),
		ActionVote:   decode(h.vote),
	}
}

// decode 把 payload 解析成具体的请求
func decode[Req any](fn func(ctx *ginx.Context, user string, req Req) (ginx.Result, error)) actionFunc {
	return func(ctx *ginx.Context, user string, payload json.RawMessage) (ginx.Result, error) {
		var req Req
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				elog.DefaultLogger.Debug("解析 payload 失败", elog.FieldErr(err))
				return errorResult(errs.PayloadInvalid), nil
			}
		}
		return fn(ctx, user, req)
	}
}
