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

	"github.com/ecodeclub/checkin/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/user")
	g.POST("/current", ginx.W(h.Current))
	g.POST("/switch", ginx.B[SwitchReq](h.Switch))
}

func (h *Handler) Current(ctx *ginx.Context) (ginx.Result, error) {
	u, err := h.svc.CurrentUser(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: User{Name: u.Name}}, nil
}

func (h *Handler) Switch(ctx *ginx.Context, req SwitchReq) (ginx.Result, error) {
	u, err := h.svc.Switch(ctx, req.Name)
	switch {
	case errors.Is(err, service.ErrEmptyName):
		return nameRequiredResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK", Data: User{Name: u.Name}}, nil
}
