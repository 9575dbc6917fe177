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
	"net/http"
	"strings"

	"github.com/ecodeclub/checkin/internal/challenge"
	"github.com/ecodeclub/checkin/internal/credit"
	"github.com/ecodeclub/checkin/internal/pkg/middleware"
	"github.com/ecodeclub/checkin/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(challengeHdl *challenge.Handler,
	userHdl *user.Handler,
	creditHdl *credit.Handler,
) *egin.Component {
	res := egin.Load("server.web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("checkin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 没有登录，当前用户由 /user/switch 切换
	userHdl.PublicRoutes(res.Engine)
	challengeHdl.PublicRoutes(res.Engine)
	creditHdl.PublicRoutes(res.Engine)
	return res
}
