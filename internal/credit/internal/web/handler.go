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
	"strings"

	"github.com/ecodeclub/checkin/internal/credit/internal/domain"
	"github.com/ecodeclub/checkin/internal/credit/internal/errs"
	"github.com/ecodeclub/checkin/internal/credit/internal/service"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc     service.Service
	userSvc user.UserService
}

func NewHandler(svc service.Service, userSvc user.UserService) *Handler {
	return &Handler{svc: svc, userSvc: userSvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/credit")
	g.POST("/detail", ginx.B[CreditReq](h.QueryCredits))
}

func (h *Handler) QueryCredits(ctx *ginx.Context, req CreditReq) (ginx.Result, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		u, err := h.userSvc.CurrentUser(ctx)
		if err != nil {
			return systemErrorResult, err
		}
		name = u.Name
	}
	c, err := h.svc.GetCreditsByName(ctx, name)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCredit(c),
	}, nil
}

func newCredit(c domain.Credit) Credit {
	return Credit{
		Name:   c.Name,
		Amount: c.TotalAmount,
		Logs: slice.Map(c.Logs, func(idx int, src domain.CreditLog) CreditLog {
			return CreditLog{
				ChallengeID:   src.ChallengeID,
				ChallengeName: src.ChallengeName,
				Date:          src.Date,
				ChangeAmount:  src.ChangeAmount,
				Ctime:         src.Ctime,
			}
		}),
	}
}
