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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/checkin/internal/credit"
	"github.com/ecodeclub/checkin/internal/credit/internal/event"
	"github.com/ecodeclub/checkin/internal/credit/internal/integration/startup"
	"github.com/ecodeclub/checkin/internal/credit/internal/web"
	"github.com/ecodeclub/checkin/internal/pkg/mqx"
	"github.com/ecodeclub/checkin/internal/store"
	"github.com/ecodeclub/checkin/internal/test"
	testioc "github.com/ecodeclub/checkin/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CreditTestSuite struct {
	suite.Suite
	server   *gin.Engine
	db       *egorm.Component
	module   *credit.Module
	producer *mqx.GeneralProducer[event.PointsAwardedEvent]
}

func (s *CreditTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.module = m
	s.db = testioc.InitDB()
	server := gin.Default()
	m.Hdl.PublicRoutes(server)
	s.server = server
	s.producer, err = mqx.NewGeneralProducer[event.PointsAwardedEvent](testioc.InitMQ(), "challenge_points_awarded_events")
	require.NoError(s.T(), err)
}

func (s *CreditTestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(s.T(), s.module.C.Stop(ctx))
	err := s.db.Exec("DROP TABLE `documents`").Error
	require.NoError(s.T(), err)
	_, err = testioc.InitCache().Delete(ctx, "document:"+store.KeyCredits)
	require.NoError(s.T(), err)
}

// 同一次打卡的加分事件重复投递只记一次
func (s *CreditTestSuite) TestPointsAwarded() {
	t := s.T()
	evt := event.PointsAwardedEvent{
		EventID:       "evt-1",
		ChallengeID:   "1",
		ChallengeName: "每天跑步",
		Participant:   "alice",
		Date:          "2024-05-01",
		Points:        1,
		AwardedAt:     time.Now().UnixMilli(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, s.producer.Produce(ctx, evt))
	require.NoError(t, s.producer.Produce(ctx, evt))

	assert.Eventually(t, func() bool {
		return s.queryCredits(t, "alice").Amount == 1
	}, 3*time.Second, 100*time.Millisecond)

	// 等第二条消息处理完
	time.Sleep(500 * time.Millisecond)
	c := s.queryCredits(t, "alice")
	assert.Equal(t, 1, c.Amount)
	require.Len(t, c.Logs, 1)
	assert.Equal(t, web.CreditLog{
		ChallengeID:   "1",
		ChallengeName: "每天跑步",
		Date:          "2024-05-01",
		ChangeAmount:  1,
		Ctime:         c.Logs[0].Ctime,
	}, c.Logs[0])

	assert.Equal(t, web.Credit{Name: "bob", Logs: []web.CreditLog{}}, s.queryCredits(t, "bob"))
}

func (s *CreditTestSuite) queryCredits(t *testing.T, name string) web.Credit {
	req := httptest.NewRequest(http.MethodPost, "/credit/detail", iox.NewJSONReader(web.CreditReq{Name: name}))
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Credit]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func TestCreditModule(t *testing.T) {
	suite.Run(t, new(CreditTestSuite))
}
