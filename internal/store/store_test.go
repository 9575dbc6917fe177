package store

import (
	"context"
	"errors"
	"testing"

	storemocks "github.com/ecodeclub/checkin/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadJSON(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) Store
		wantVal []string
		wantOK  bool
		wantErr bool
	}{
		{
			name: "文档存在",
			mock: func(ctrl *gomock.Controller) Store {
				s := storemocks.NewMockDocumentRepository(ctrl)
				s.EXPECT().Load(gomock.Any(), KeyUsers).Return([]byte(`["alice","bob"]`), nil)
				return s
			},
			wantVal: []string{"alice", "bob"},
			wantOK:  true,
		},
		{
			name: "文档不存在",
			mock: func(ctrl *gomock.Controller) Store {
				s := storemocks.NewMockDocumentRepository(ctrl)
				s.EXPECT().Load(gomock.Any(), KeyUsers).Return(nil, ErrDocumentNotFound)
				return s
			},
		},
		{
			name: "内容不是合法 JSON",
			mock: func(ctrl *gomock.Controller) Store {
				s := storemocks.NewMockDocumentRepository(ctrl)
				s.EXPECT().Load(gomock.Any(), KeyUsers).Return([]byte(`{`), nil)
				return s
			},
			wantErr: true,
		},
		{
			name: "存储出错",
			mock: func(ctrl *gomock.Controller) Store {
				s := storemocks.NewMockDocumentRepository(ctrl)
				s.EXPECT().Load(gomock.Any(), KeyUsers).Return(nil, errors.New("mock db error"))
				return s
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			val, ok, err := LoadJSON[[]string](context.Background(), tc.mock(ctrl), KeyUsers)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantVal, val)
		})
	}
}

func TestSaveJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := storemocks.NewMockDocumentRepository(ctrl)
	s.EXPECT().Save(gomock.Any(), KeyUsers, []byte(`["User42"]`)).Return(nil)
	err := SaveJSON(context.Background(), s, KeyUsers, []string{"User42"})
	require.NoError(t, err)
}
