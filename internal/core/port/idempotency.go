package port

import (
	"context"

	"github.com/MikeRez0/dropshop/internal/core/domain"
)

//go:generate mockgen -source=idempotency.go -destination=mock/idempotency.go -package=mock

// IdempotencyResolver looks an order up by key outside of any caller transaction.
type IdempotencyResolver interface {
	Lookup(ctx context.Context, key string) (*domain.Order, error)
}

// IdempotencyCache maps keys to order ids. It is advisory only.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Put(ctx context.Context, key string, orderID int64) error
}
