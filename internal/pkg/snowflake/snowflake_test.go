package snowflake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      int64
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 1024,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "nodeId为负数",
			nodeId: -1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "生成正常",
			nodeId:      1023,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNodeGenerator(tt.nodeId)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestNodeGenerator_Generate(t *testing.T) {
	g, err := NewNodeGenerator(7)
	require.NoError(t, err)
	start := time.Now().Add(-time.Second)
	ids := make(map[ID]struct{}, 100000)
	var last ID
	for i := 0; i < 100000; i++ {
		id := g.Generate()
		_, ok := ids[id]
		require.False(t, ok, "id重复: %d", id)
		// 同一个节点生成的 id 单调递增
		require.Greater(t, id, last)
		ids[id] = struct{}{}
		last = id
	}
	assert.Equal(t, int64(7), last.Node())
	assert.WithinRange(t, last.Time(), start, time.Now().Add(time.Second))
}
