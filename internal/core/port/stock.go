package port

import (
	"context"

	"github.com/MikeRez0/dropshop/internal/core/domain"
)

//go:generate mockgen -source=stock.go -destination=mock/stock.go -package=mock
type StockLedger interface {
	// Reserve takes one unit if any remain.
	Reserve(ctx context.Context, dropEventID, skuID int64) (bool, error)
	Release(ctx context.Context, dropEventID, skuID int64) error
	SumRemaining(ctx context.Context, dropEventID int64) (int, error)
	ListStocks(ctx context.Context, dropEventID int64) ([]*domain.Stock, error)
}
