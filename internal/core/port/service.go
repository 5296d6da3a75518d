package port

import (
	"context"

	"github.com/MikeRez0/dropshop/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest, idempotencyKey string) (*domain.Order, error)
	Pay(ctx context.Context, orderID int64, result string) (*domain.PayResult, error)
	ShipOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	ExpirePendingOrders(ctx context.Context) (int, error)

	GetMyOrders(ctx context.Context, userID int64) ([]*domain.Order, error)
	GetMyOrder(ctx context.Context, userID int64, orderID int64) (*domain.Order, error)
	GetOrdersByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.Order, error)
}

type DropService interface {
	CreateDrop(ctx context.Context, drop *domain.DropEvent, stocks []*domain.Stock) (*domain.DropView, error)
	ListDrops(ctx context.Context) ([]*domain.DropView, error)
	GetDrop(ctx context.Context, id int64) (*domain.DropView, error)
}

// OrderExpirer is the sweeper's view of the order workflow.
type OrderExpirer interface {
	ExpirePendingOrders(ctx context.Context) (int, error)
}
