package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"go.uber.org/zap"
)

type DropService struct {
	drops  port.DropRepository
	stock  port.StockLedger
	now    func() time.Time
	logger *zap.Logger
}

func NewDropService(drops port.DropRepository, stock port.StockLedger,
	logger *zap.Logger, opts ...Option) (*DropService, error) {
	o := newOptions(opts)
	return &DropService{
		drops:  drops,
		stock:  stock,
		now:    o.now,
		logger: logger,
	}, nil
}

// advanceDrop brings a stored drop status in line with the clock. The
// write is conditional on the status we read, so concurrent readers
// cannot move it backwards. A failed write is logged and the computed
// status is still used for this request.
func advanceDrop(ctx context.Context, drops port.DropRepository, drop *domain.DropEvent,
	now time.Time, logger *zap.Logger) *domain.DropEvent {
	next := drop.NextStatus(now)
	if next == drop.Status {
		return drop
	}

	_, err := drops.UpdateDropStatus(ctx, drop.ID, drop.Status, next)
	if err != nil {
		logger.Warn("advance drop status",
			zap.Int64("drop", drop.ID),
			zap.String("from", string(drop.Status)),
			zap.String("to", string(next)),
			zap.Error(err))
	}
	drop.Status = next
	return drop
}

// currentDrop reads a drop with its status brought up to date.
func currentDrop(ctx context.Context, drops port.DropRepository, id int64,
	now time.Time, logger *zap.Logger) (*domain.DropEvent, error) {
	drop, err := drops.ReadDropEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return advanceDrop(ctx, drops, drop, now, logger), nil
}

func (s *DropService) CreateDrop(ctx context.Context, drop *domain.DropEvent,
	stocks []*domain.Stock) (*domain.DropView, error) {
	if drop == nil || !drop.StartsAt.Before(drop.EndsAt) {
		return nil, domain.ErrBadRequest
	}
	seen := make(map[int64]struct{}, len(stocks))
	for _, st := range stocks {
		if st.RemainingQty < 0 {
			return nil, domain.ErrBadRequest
		}
		if _, ok := seen[st.SKUID]; ok {
			return nil, domain.ErrBadRequest
		}
		seen[st.SKUID] = struct{}{}
	}

	toCreate := *drop
	toCreate.Status = domain.DropStatusScheduled
	toCreate.Status = toCreate.NextStatus(s.now())

	created, err := s.drops.CreateDropEvent(ctx, &toCreate, stocks)
	if err != nil {
		s.logger.Error("Create drop", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.view(ctx, created)
}

func (s *DropService) ListDrops(ctx context.Context) ([]*domain.DropView, error) {
	list, err := s.drops.ListDropEvents(ctx)
	if err != nil {
		s.logger.Error("List drops", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := s.now()
	result := make([]*domain.DropView, 0, len(list))
	for _, drop := range list {
		drop = advanceDrop(ctx, s.drops, drop, now, s.logger)
		sum, err := s.stock.SumRemaining(ctx, drop.ID)
		if err != nil {
			s.logger.Error("Sum remaining", zap.Int64("drop", drop.ID), zap.Error(err))
			return nil, domain.ErrInternal
		}
		result = append(result, &domain.DropView{Drop: drop, TotalRemaining: sum})
	}

	return result, nil
}

func (s *DropService) GetDrop(ctx context.Context, id int64) (*domain.DropView, error) {
	drop, err := currentDrop(ctx, s.drops, id, s.now(), s.logger)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDropNotFound
		}
		s.logger.Error("Get drop", zap.Int64("drop", id), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.view(ctx, drop)
}

func (s *DropService) view(ctx context.Context, drop *domain.DropEvent) (*domain.DropView, error) {
	stocks, err := s.stock.ListStocks(ctx, drop.ID)
	if err != nil {
		s.logger.Error("List stocks", zap.Int64("drop", drop.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	sum, err := s.stock.SumRemaining(ctx, drop.ID)
	if err != nil {
		s.logger.Error("Sum remaining", zap.Int64("drop", drop.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &domain.DropView{Drop: drop, Stocks: stocks, TotalRemaining: sum}, nil
}
