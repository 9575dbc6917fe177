package repository

import (
	"context"
	"testing"

	"github.com/ecodeclub/checkin/internal/credit/internal/domain"
	"github.com/ecodeclub/checkin/internal/store"
	storemocks "github.com/ecodeclub/checkin/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemStore(ctrl *gomock.Controller) store.Store {
	docs := map[string][]byte{}
	s := storemocks.NewMockDocumentRepository(ctrl)
	s.EXPECT().Load(gomock.Any(), store.KeyCredits).DoAndReturn(func(ctx context.Context, key string) ([]byte, error) {
		val, ok := docs[key]
		if !ok {
			return nil, store.ErrDocumentNotFound
		}
		return val, nil
	}).AnyTimes()
	s.EXPECT().Save(gomock.Any(), store.KeyCredits, gomock.Any()).DoAndReturn(func(ctx context.Context, key string, val []byte) error {
		docs[key] = val
		return nil
	}).AnyTimes()
	return s
}

func awarded(name, challengeID, date string) domain.Credit {
	return domain.Credit{
		Name: name,
		Logs: []domain.CreditLog{
			{
				Key:           challengeID + ":" + name + ":" + date,
				ChallengeID:   challengeID,
				ChallengeName: "早起",
				Date:          date,
				ChangeAmount:  1,
				Ctime:         123,
			},
		},
	}
}

func TestCreditRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewCreditRepository(newMemStore(ctrl))
	ctx := context.Background()

	c, err := repo.GetCreditByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Credit{Name: "alice", Logs: []domain.CreditLog{}}, c)

	require.NoError(t, repo.AddCredits(ctx, awarded("alice", "1", "2024-05-01")))
	require.NoError(t, repo.AddCredits(ctx, awarded("alice", "2", "2024-05-01")))
	require.NoError(t, repo.AddCredits(ctx, awarded("bob", "1", "2024-05-01")))
	err = repo.AddCredits(ctx, awarded("alice", "1", "2024-05-01"))
	assert.ErrorIs(t, err, ErrDuplicatedCreditLog)

	c, err = repo.GetCreditByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalAmount)
	assert.Equal(t, []domain.CreditLog{
		awarded("alice", "1", "2024-05-01").Logs[0],
		awarded("alice", "2", "2024-05-01").Logs[0],
	}, c.Logs)

	c, err = repo.GetCreditByName(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalAmount)
}
