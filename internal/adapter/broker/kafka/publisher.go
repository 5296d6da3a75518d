package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	producerName = "dropshop"
	eventVersion = 1
)

var ErrBufferFull = errors.New("event buffer is full")

type Envelope struct {
	EventID      uuid.UUID       `json:"eventId"`
	EventType    string          `json:"eventType"`
	EventVersion int             `json:"eventVersion"`
	OccurredAt   time.Time       `json:"occurredAt"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type orderPayload struct {
	OrderID     int64  `json:"orderId"`
	UserID      int64  `json:"userId"`
	DropEventID int64  `json:"dropEventId"`
	SKUID       int64  `json:"skuId"`
	Status      string `json:"status"`
}

func newEnvelope(event domain.OrderEvent) (Envelope, error) {
	payload, err := json.Marshal(orderPayload{
		OrderID:     event.OrderID,
		UserID:      event.UserID,
		DropEventID: event.DropEventID,
		SKUID:       event.SKUID,
		Status:      string(event.Status),
	})
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:      uuid.New(),
		EventType:    string(event.Type),
		EventVersion: eventVersion,
		OccurredAt:   event.OccurredAt.UTC(),
		Producer:     producerName,
		Payload:      payload,
	}, nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher queues order events and writes them from one goroutine.
// Publish never blocks the workflow: when the queue is full the event is dropped.
type Publisher struct {
	w       messageWriter
	inbox   chan kafka.Message
	closeCh chan struct{}
	logger  *zap.Logger
}

func NewPublisher(conf *config.Kafka, logger *zap.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(conf.Brokers...),
		Topic:        conf.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return newPublisher(w, conf.Buffer, logger)
}

func newPublisher(w messageWriter, buf int, logger *zap.Logger) *Publisher {
	if buf <= 0 {
		buf = 1024
	}
	return &Publisher{
		w:       w,
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
}

// Start writes queued messages until ctx is canceled, then flushes what is left.
func (p *Publisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.flush()
				return
			case m := <-p.inbox:
				p.write(context.Background(), m)
			}
		}
	}()
}

func (p *Publisher) flush() {
	for {
		select {
		case m := <-p.inbox:
			p.write(context.Background(), m)
		default:
			err := p.w.Close()
			if err != nil {
				p.logger.Error("close kafka writer", zap.Error(err))
			}
			return
		}
	}
}

func (p *Publisher) write(ctx context.Context, m kafka.Message) {
	err := p.w.WriteMessages(ctx, m)
	if err != nil {
		p.logger.Error("write order event", zap.ByteString("key", m.Key), zap.Error(err))
	}
}

func (p *Publisher) Publish(_ context.Context, event domain.OrderEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	m := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(env.EventType)},
		},
	}

	select {
	case p.inbox <- m:
		return nil
	default:
		return ErrBufferFull
	}
}

// WaitClosed blocks until the writer goroutine has flushed and exited.
func (p *Publisher) WaitClosed() {
	<-p.closeCh
}
