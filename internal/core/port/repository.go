package port

import (
	"context"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type DropRepository interface {
	// CreateDropEvent stores the drop, its product and initial stock in one transaction.
	CreateDropEvent(ctx context.Context, drop *domain.DropEvent, stocks []*domain.Stock) (*domain.DropEvent, error)
	ReadDropEvent(ctx context.Context, id int64) (*domain.DropEvent, error)
	ListDropEvents(ctx context.Context) ([]*domain.DropEvent, error)
	// UpdateDropStatus moves the drop to `to` only while it is still in `from`.
	UpdateDropStatus(ctx context.Context, id int64, from, to domain.DropStatus) (bool, error)
}

type OrderRepository interface {
	// CreateOrder stores the order and its payment in one transaction.
	// A duplicate idempotency key yields domain.ErrConflictingData.
	CreateOrder(ctx context.Context, order *domain.Order, payment *domain.Payment) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	ReadOrderByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	ReadPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error)
	// TransitionOrder reports whether the conditional change was applied.
	TransitionOrder(ctx context.Context, t domain.Transition) (bool, error)
	ListExpiredPending(ctx context.Context, now time.Time) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.Order, error)
}
