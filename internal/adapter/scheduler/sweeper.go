package scheduler

import (
	"context"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/port"
	"go.uber.org/zap"
)

// ExpirationSweeper periodically expires overdue pending orders. Runs
// never overlap within one sweeper; overlapping sweepers on other nodes
// are harmless because expiry is a conditional write.
type ExpirationSweeper struct {
	expirer  port.OrderExpirer
	metrics  port.Metrics
	interval time.Duration
	logger   *zap.Logger
	done     chan struct{}
}

func NewExpirationSweeper(expirer port.OrderExpirer, metrics port.Metrics,
	interval time.Duration, logger *zap.Logger) (*ExpirationSweeper, error) {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirationSweeper{
		expirer:  expirer,
		metrics:  metrics,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start runs the sweeper in the background until ctx is canceled.
func (s *ExpirationSweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		s.Run(ctx)
	}()
}

// Done is closed once a sweeper started with Start has stopped.
func (s *ExpirationSweeper) Done() <-chan struct{} {
	return s.done
}

// Run sweeps once right away, then on every tick. It blocks until ctx is canceled.
func (s *ExpirationSweeper) Run(ctx context.Context) {
	s.logger.Info("sweeper started", zap.Duration("interval", s.interval))

	s.sweep(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopping")
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirationSweeper) sweep(ctx context.Context) {
	started := time.Now()
	expired, err := s.expirer.ExpirePendingOrders(ctx)
	took := time.Since(started)
	s.metrics.SweepFinished(expired, took)

	if err != nil {
		s.logger.Error("sweep failed", zap.Int("expired", expired), zap.Error(err))
		return
	}
	if expired > 0 {
		s.logger.Info("expired pending orders", zap.Int("expired", expired), zap.Duration("took", took))
		return
	}
	s.logger.Debug("nothing to expire")
}
