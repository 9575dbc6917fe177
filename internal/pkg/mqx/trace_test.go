package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	const topic = "trace_events"
	q := NewTraceMQ(memory.NewMQ())
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)
	p, err := NewGeneralProducer[plainEvent](q, topic)
	require.NoError(t, err)

	require.NoError(t, p.Produce(ctx, plainEvent{Name: "carol"}))
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	evt, err := Decode[plainEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, "carol", evt.Name)
}
