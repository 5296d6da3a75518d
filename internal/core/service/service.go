package service

import (
	"context"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
)

const DefaultOrderTTL = 5 * time.Minute

// DefaultWriteTimeout bounds the reserve and insert steps of order creation.
const DefaultWriteTimeout = 10 * time.Second

type options struct {
	cache   port.IdempotencyCache
	events  port.EventPublisher
	metrics port.Metrics
	ttl     time.Duration
	now     func() time.Time

	writeTimeout time.Duration
}

type Option func(*options)

// WithIdempotencyCache puts a fast path in front of the store lookup by key.
func WithIdempotencyCache(c port.IdempotencyCache) Option {
	return func(o *options) { o.cache = c }
}

func WithEventPublisher(p port.EventPublisher) Option {
	return func(o *options) { o.events = p }
}

func WithMetrics(m port.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithOrderTTL sets how long a new order waits for payment.
func WithOrderTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(opts []Option) options {
	o := options{
		cache:   nopCache{},
		events:  nopPublisher{},
		metrics: nopMetrics{},
		ttl:     DefaultOrderTTL,
		now:     time.Now,

		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }
func (nopCache) Put(context.Context, string, int64) error         { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }

type nopMetrics struct{}

func (nopMetrics) OrderOutcome(string, string)      {}
func (nopMetrics) StockReleased(string)             {}
func (nopMetrics) SweepFinished(int, time.Duration) {}
