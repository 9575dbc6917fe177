package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/checkin/internal/challenge/internal/domain"
	"github.com/ecodeclub/checkin/internal/challenge/internal/errs"
	"github.com/ecodeclub/checkin/internal/challenge/internal/service"
	challengemocks "github.com/ecodeclub/checkin/internal/challenge/mocks"
	"github.com/ecodeclub/checkin/internal/test"
	"github.com/ecodeclub/checkin/internal/user"
	usermocks "github.com/ecodeclub/checkin/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const currentUser = "alice"

var createdAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newServer(ctrl *gomock.Controller, mock func(svc *challengemocks.MockService)) *gin.Engine {
	svc := challengemocks.NewMockService(ctrl)
	if mock != nil {
		mock(svc)
	}
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().CurrentUser(gomock.Any()).Return(user.User{Name: currentUser}, nil).AnyTimes()
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc, userSvc).PublicRoutes(server)
	return server
}

func post[T any](t *testing.T, server *gin.Engine, path string, body any) test.Result[T] {
	return postWithStatus[T](t, server, path, body, http.StatusOK)
}

// postWithStatus handler 返回 error 的时候 ginx 会响应 500
func postWithStatus[T any](t *testing.T, server *gin.Engine, path string, body any, wantHTTP int) test.Result[T] {
	req := httptest.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, wantHTTP, recorder.Code)
	return recorder.MustScan()
}

func TestHandler_Create(t *testing.T) {
	created := domain.Challenge{
		ID:        "1",
		Name:      "早起",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-08",
		CreatedAt: createdAt,
		Participants: []domain.Participant{
			domain.NewParticipant("alice"),
			domain.NewParticipant("bob"),
		},
	}
	testCases := []struct {
		name     string
		mock     func(svc *challengemocks.MockService)
		req      CreateReq
		wantCode int
		wantHTTP int
	}{
		{
			name: "创建成功_当前用户排第一",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Create(gomock.Any(), domain.Challenge{
					Name:      "早起",
					StartDate: "2024-05-01",
					EndDate:   "2024-05-08",
					Stake:     "请喝咖啡",
				}, []string{"alice", "bob"}).Return(created, nil)
			},
			wantHTTP: http.StatusOK,
			req: CreateReq{
				Name:         " 早起 ",
				StartDate:    "2024-05-01",
				EndDate:      "2024-05-08",
				Stake:        "请喝咖啡 ",
				Participants: []string{" bob", "", "  "},
			},
		},
		{
			name:     "缺少名称",
			wantHTTP: http.StatusOK,
			req:      CreateReq{Name: "  ", StartDate: "2024-05-01", EndDate: "2024-05-08"},
			wantCode: errs.ChallengeNameRequired.Code,
		},
		{
			name:     "缺少日期",
			wantHTTP: http.StatusOK,
			req:      CreateReq{Name: "早起", StartDate: "2024-05-01"},
			wantCode: errs.ChallengeDateRequired.Code,
		},
		{
			name:     "日期格式不对",
			wantHTTP: http.StatusOK,
			req:      CreateReq{Name: "早起", StartDate: "2024/05/01", EndDate: "2024-05-08"},
			wantCode: errs.DateFormatInvalid.Code,
		},
		{
			name:     "结束日期等于开始日期",
			wantHTTP: http.StatusOK,
			req:      CreateReq{Name: "早起", StartDate: "2024-05-01", EndDate: "2024-05-01"},
			wantCode: errs.ChallengeDateInvalid.Code,
		},
		{
			name:     "参与者重复",
			wantHTTP: http.StatusOK,
			req: CreateReq{Name: "早起", StartDate: "2024-05-01", EndDate: "2024-05-08",
				Participants: []string{"bob", "bob "}},
			wantCode: errs.ParticipantDuplicated.Code,
		},
		{
			name:     "参与者是自己",
			wantHTTP: http.StatusOK,
			req: CreateReq{Name: "早起", StartDate: "2024-05-01", EndDate: "2024-05-08",
				Participants: []string{"alice"}},
			wantCode: errs.ParticipantIsYourself.Code,
		},
		{
			name: "系统错误",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Challenge{}, errors.New("mock db error"))
			},
			wantHTTP: http.StatusInternalServerError,
			req:      CreateReq{Name: "早起", StartDate: "2024-05-01", EndDate: "2024-05-08"},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(ctrl, tc.mock)
			res := postWithStatus[Challenge](t, server, "/challenge/create", tc.req, tc.wantHTTP)
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				assert.NotEmpty(t, res.Msg)
				return
			}
			assert.Equal(t, newChallenge(created), res.Data)
			assert.Equal(t, "2024-05-01T08:00:00.000Z", res.Data.CreatedAt)
		})
	}
}

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *challengemocks.MockService)
		req      SubmitReq
		wantCode int
		wantNil  bool
	}{
		{
			name: "提交成功",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().SubmitProgress(gomock.Any(), "1", currentUser, "跑了 5 公里", true).
					Return(domain.Challenge{ID: "1"}, nil)
			},
			req: SubmitReq{ID: "1", Proof: " 跑了 5 公里 ", IsText: true},
		},
		{
			name:     "内容为空",
			req:      SubmitReq{ID: "1", Proof: "   "},
			wantCode: errs.ProofRequired.Code,
			wantNil:  true,
		},
		{
			name: "挑战不存在_静默返回",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().SubmitProgress(gomock.Any(), "404", currentUser, "跑了 5 公里", true).
					Return(domain.Challenge{}, service.ErrNotFound)
			},
			req:     SubmitReq{ID: "404", Proof: "跑了 5 公里", IsText: true},
			wantNil: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(ctrl, tc.mock)
			res := post[*Challenge](t, server, "/challenge/submit", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantNil, res.Data == nil)
		})
	}
}

func TestHandler_Vote(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *challengemocks.MockService)
		req      VoteReq
		wantCode int
		wantHTTP int
	}{
		{
			name: "投票成功",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Vote(gomock.Any(), "1", currentUser, "bob", "2024-05-01", domain.VoteReject).
					Return(domain.Challenge{ID: "1"}, nil)
			},
			wantHTTP: http.StatusOK,
			req:      VoteReq{ID: "1", Submitter: "bob", Date: "2024-05-01", Vote: "reject"},
		},
		{
			name:     "非法的投票",
			wantHTTP: http.StatusOK,
			req:      VoteReq{ID: "1", Submitter: "bob", Date: "2024-05-01", Vote: "maybe"},
			wantCode: errs.VoteInvalid.Code,
		},
		{
			name: "系统错误",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Vote(gomock.Any(), "1", currentUser, "bob", "2024-05-01", domain.VoteAccept).
					Return(domain.Challenge{}, errors.New("mock db error"))
			},
			wantHTTP: http.StatusInternalServerError,
			req:      VoteReq{ID: "1", Submitter: "bob", Date: "2024-05-01", Vote: "accept"},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(ctrl, tc.mock)
			res := postWithStatus[*Challenge](t, server, "/challenge/vote", tc.req, tc.wantHTTP)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func TestHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(ctrl, func(svc *challengemocks.MockService) {
		svc.EXPECT().ActiveChallenges(gomock.Any()).Return([]domain.Challenge{
			{ID: "1", Name: "早起", EndDate: "2024-05-08", Participants: []domain.Participant{
				domain.NewParticipant("alice"), domain.NewParticipant("bob"),
			}},
		}, nil)
		svc.EXPECT().CompletedChallenges(gomock.Any()).Return([]domain.Challenge{}, nil)
		svc.EXPECT().TimeRemaining("2024-05-08").Return(domain.TimeRemaining{Days: 4, Hours: 14})
	})
	req := httptest.NewRequest(http.MethodGet, "/challenge/dashboard", nil)
	recorder := test.NewJSONResponseRecorder[Dashboard]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, Dashboard{
		CurrentUser: currentUser,
		Active: []Card{
			{ID: "1", Name: "早起", EndDate: "2024-05-08", ParticipantCount: 2,
				TimeRemaining: TimeRemaining{Days: 4, Hours: 14}},
		},
		Completed: []Card{},
	}, recorder.MustScan().Data)
}

func TestHandler_DashboardFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(ctrl, func(svc *challengemocks.MockService) {
		svc.EXPECT().ActiveChallenges(gomock.Any()).Return(nil, errors.New("mock db error"))
		svc.EXPECT().CompletedChallenges(gomock.Any()).Return([]domain.Challenge{}, nil)
	})
	req := httptest.NewRequest(http.MethodGet, "/challenge/dashboard", nil)
	recorder := test.NewJSONResponseRecorder[Dashboard]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, errs.SystemError.Code, recorder.MustScan().Code)
}

func TestHandler_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(ctrl, func(svc *challengemocks.MockService) {
		svc.EXPECT().View(gomock.Any(), "1", currentUser).Return(domain.View{
			Challenge:     domain.Challenge{ID: "1", Name: "早起", CreatedAt: createdAt},
			TimeRemaining: domain.TimeRemaining{Expired: true},
			IsParticipant: true,
			PendingReviews: []domain.PendingReview{
				{Submitter: "bob", Date: "2024-05-01", Proof: "5km", IsText: true},
			},
			Leaderboard: []domain.LeaderboardEntry{
				{Rank: 1, Name: "bob", Points: 2, Status: domain.LeaderboardCompleted},
				{Rank: 2, Name: "alice", Points: 0, Status: domain.LeaderboardNotCompleted},
			},
		}, nil)
	})
	res := post[Detail](t, server, "/challenge/detail", ChallengeID{ID: "1"})
	assert.Equal(t, 0, res.Code)
	assert.True(t, res.Data.IsParticipant)
	assert.True(t, res.Data.TimeRemaining.Expired)
	assert.Equal(t, []PendingReview{{Submitter: "bob", Date: "2024-05-01", Proof: "5km", IsText: true}},
		res.Data.PendingReviews)
	assert.Equal(t, []LeaderboardEntry{
		{Rank: 1, Name: "bob", Points: 2, Status: "Completed"},
		{Rank: 2, Name: "alice", Points: 0, Status: "Did not complete"},
	}, res.Data.Leaderboard)
}

func TestHandler_Dispatch(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *challengemocks.MockService)
		req      any
		wantCode int
		wantNil  bool
	}{
		{
			name: "加入",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Join(gomock.Any(), "1", currentUser).Return(domain.Challenge{ID: "1"}, nil)
			},
			req: DispatchReq{Action: ActionJoin, Payload: mustJSON(t, ChallengeID{ID: "1"})},
		},
		{
			name: "投票",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().Vote(gomock.Any(), "1", currentUser, "bob", "2024-05-01", domain.VoteAccept).
					Return(domain.Challenge{ID: "1"}, nil)
			},
			req: DispatchReq{Action: ActionVote, Payload: mustJSON(t, VoteReq{
				ID: "1", Submitter: "bob", Date: "2024-05-01", Vote: "accept",
			})},
		},
		{
			name: "详情不存在_静默返回",
			mock: func(svc *challengemocks.MockService) {
				svc.EXPECT().View(gomock.Any(), "404", currentUser).Return(domain.View{}, service.ErrNotFound)
			},
			req:     DispatchReq{Action: ActionDetail, Payload: mustJSON(t, ChallengeID{ID: "404"})},
			wantNil: true,
		},
		{
			name:     "提交内容为空",
			req:      DispatchReq{Action: ActionSubmit, Payload: mustJSON(t, SubmitReq{ID: "1"})},
			wantCode: errs.ProofRequired.Code,
			wantNil:  true,
		},
		{
			name:     "未知操作",
			req:      DispatchReq{Action: "delete"},
			wantCode: errs.ActionUnknown.Code,
			wantNil:  true,
		},
		{
			name:     "payload 格式不对",
			req:      map[string]any{"action": "join", "payload": []int{1, 2}},
			wantCode: errs.PayloadInvalid.Code,
			wantNil:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(ctrl, tc.mock)
			res := post[json.RawMessage](t, server, "/challenge/dispatch", tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantNil, len(res.Data) == 0 || string(res.Data) == "null")
		})
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
