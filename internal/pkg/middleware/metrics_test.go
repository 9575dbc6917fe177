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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	server := gin.New()
	server.Use(NewMetricsBuilder("checkin").Registerer(reg).Build())
	server.GET("/challenge/dashboard", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/challenge/dashboard", "/challenge/dashboard", "/not-found"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	expected := `
# HELP checkin_http_requests_total HTTP 请求次数
# TYPE checkin_http_requests_total counter
checkin_http_requests_total{method="GET",path="/challenge/dashboard",status_code="200"} 2
checkin_http_requests_total{method="GET",path="unknown",status_code="404"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "checkin_http_requests_total")
	require.NoError(t, err)
	cnt, err := testutil.GatherAndCount(reg, "checkin_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}
