package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func testEvent(id int64) domain.OrderEvent {
	return domain.OrderEvent{
		Type:        domain.EventOrderPaid,
		OrderID:     id,
		UserID:      7,
		DropEventID: 1,
		SKUID:       11,
		Status:      domain.OrderStatusPaid,
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_FlushesOnShutdown(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, 8, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Publish(ctx, testEvent(1)))
	require.NoError(t, p.Publish(ctx, testEvent(2)))

	p.Start(ctx)
	cancel()
	p.WaitClosed()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.True(t, w.closed)
	require.Len(t, w.msgs, 2)
	assert.Equal(t, "1", string(w.msgs[0].Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &env))
	assert.Equal(t, "OrderPaid", env.EventType)
	assert.Equal(t, producerName, env.Producer)

	var payload orderPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, int64(1), payload.OrderID)
	assert.Equal(t, "PAID", payload.Status)
}

func TestPublisher_FullBufferDoesNotBlock(t *testing.T) {
	p := newPublisher(&fakeWriter{}, 1, zap.NewNop())

	require.NoError(t, p.Publish(context.Background(), testEvent(1)))
	assert.ErrorIs(t, p.Publish(context.Background(), testEvent(2)), ErrBufferFull)
}
