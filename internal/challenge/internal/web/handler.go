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
	"errors"
	"slices"
	"strings"

	"github.com/ecodeclub/checkin/internal/challenge/internal/domain"
	"github.com/ecodeclub/checkin/internal/challenge/internal/errs"
	"github.com/ecodeclub/checkin/internal/challenge/internal/service"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	svc     service.Service
	userSvc user.UserService
	actions map[Action]actionFunc
	logger  *elog.Component
}

func NewHandler(svc service.Service, userSvc user.UserService) *Handler {
	h := &Handler{
		svc:     svc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
	h.actions = h.actionTable()
	return h
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/challenge")
	g.GET("/dashboard", ginx.W(h.Dashboard))
	g.POST("/detail", ginx.B(withUser(h, h.detail)))
	g.POST("/create", ginx.B(withUser(h, h.create)))
	g.POST("/join", ginx.B(withUser(h, h.join)))
	g.POST("/submit", ginx.B(withUser(h, h.submit)))
	g.POST("/vote", ginx.B(withUser(h, h.vote)))
	g.POST("/dispatch", ginx.B(withUser(h, h.dispatch)))
}

// withUser 先拿到当前用户，再执行 fn
func withUser[Req any](h *Handler,
	fn func(ctx *ginx.Context, user string, req Req) (ginx.Result, error)) func(ctx *ginx.Context, req Req) (ginx.Result, error) {
	return func(ctx *ginx.Context, req Req) (ginx.Result, error) {
		u, err := h.userSvc.CurrentUser(ctx)
		if err != nil {
			return systemErrorResult, err
		}
		return fn(ctx, u.Name, req)
	}
}

func (h *Handler) Dashboard(ctx *ginx.Context) (ginx.Result, error) {
	u, err := h.userSvc.CurrentUser(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return h.dashboard(ctx, u.Name)
}

func (h *Handler) dispatch(ctx *ginx.Context, user string, req DispatchReq) (ginx.Result, error) {
	fn, ok := h.actions[req.Action]
	if !ok {
		return errorResult(errs.ActionUnknown), nil
	}
	return fn(ctx, user, req.Payload)
}

func (h *Handler) dashboard(ctx *ginx.Context, user string) (ginx.Result, error) {
	var (
		eg        errgroup.Group
		active    []domain.Challenge
		completed []domain.Challenge
	)
	eg.Go(func() error {
		var err error
		active, err = h.svc.ActiveChallenges(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		completed, err = h.svc.CompletedChallenges(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Dashboard{
			CurrentUser: user,
			Active:      h.toCards(active),
			Completed:   h.toCards(completed),
		},
	}, nil
}

func (h *Handler) detail(ctx *ginx.Context, user string, req ChallengeID) (ginx.Result, error) {
	v, err := h.svc.View(ctx, req.ID, user)
	if err != nil {
		return h.notFoundOrSystemError(err)
	}
	return ginx.Result{Data: newDetail(v)}, nil
}

func (h *Handler) create(ctx *ginx.Context, user string, req CreateReq) (ginx.Result, error) {
	req.normalize()
	if code, ok := validateReq(req); !ok {
		return errorResult(code), nil
	}
	start, _ := domain.ParseDate(req.StartDate)
	end, _ := domain.ParseDate(req.EndDate)
	if !end.After(start) {
		return errorResult(errs.ChallengeDateInvalid), nil
	}
	participants, code, ok := participantsOf(user, req.Participants)
	if !ok {
		return errorResult(code), nil
	}
	c, err := h.svc.Create(ctx, domain.Challenge{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Stake:       req.Stake,
	}, participants)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newChallenge(c)}, nil
}

// participantsOf 当前用户永远是第一个参与者，其它名字去掉首尾空格，空的忽略
func participantsOf(user string, others []string) ([]string, errs.ErrorCode, bool) {
	res := make([]string, 0, len(others)+1)
	res = append(res, user)
	for _, name := range slice.Map(others, func(idx int, src string) string {
		return strings.TrimSpace(src)
	}) {
		switch {
		case name == "":
			continue
		case name == user:
			return nil, errs.ParticipantIsYourself, false
		case slices.Contains(res, name):
			return nil, errs.ParticipantDuplicated, false
		}
		res = append(res, name)
	}
	return res, errs.ErrorCode{}, true
}

func (h *Handler) join(ctx *ginx.Context, user string, req ChallengeID) (ginx.Result, error) {
	c, err := h.svc.Join(ctx, req.ID, user)
	if err != nil {
		return h.notFoundOrSystemError(err)
	}
	return ginx.Result{Data: newChallenge(c)}, nil
}

func (h *Handler) submit(ctx *ginx.Context, user string, req SubmitReq) (ginx.Result, error) {
	req.normalize()
	if code, ok := validateReq(req); !ok {
		return errorResult(code), nil
	}
	c, err := h.svc.SubmitProgress(ctx, req.ID, user, req.Proof, req.IsText)
	if err != nil {
		return h.notFoundOrSystemError(err)
	}
	return ginx.Result{Data: newChallenge(c)}, nil
}

func (h *Handler) vote(ctx *ginx.Context, user string, req VoteReq) (ginx.Result, error) {
	if code, ok := validateReq(req); !ok {
		return errorResult(code), nil
	}
	c, err := h.svc.Vote(ctx, req.ID, user, req.Submitter, req.Date, domain.VoteType(req.Vote))
	if err != nil {
		return h.notFoundOrSystemError(err)
	}
	return ginx.Result{Data: newChallenge(c)}, nil
}

// notFoundOrSystemError 找不到的时候什么都不返回
func (h *Handler) notFoundOrSystemError(err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrNotFound) {
		h.logger.Debug("记录不存在", elog.FieldErr(err))
		return ginx.Result{}, nil
	}
	return systemErrorResult, err
}

func (h *Handler) toCards(cs []domain.Challenge) []Card {
	return slice.Map(cs, func(idx int, c domain.Challenge) Card {
		return Card{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			Stake:            c.Stake,
			EndDate:          c.EndDate,
			ParticipantCount: len(c.Participants),
			TimeRemaining:    newTimeRemaining(h.svc.TimeRemaining(c.EndDate)),
		}
	})
}
