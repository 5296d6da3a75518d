package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port/mock"
	"github.com/MikeRez0/dropshop/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)

type deps struct {
	orders   *mock.MockOrderRepository
	drops    *mock.MockDropRepository
	stock    *mock.MockStockLedger
	resolver *mock.MockIdempotencyResolver
	cache    *mock.MockIdempotencyCache
	events   *mock.MockEventPublisher
}

type prepareMocks func(d *deps)

func newOrderService(t *testing.T, prepare prepareMocks, withCache bool) *service.OrderService {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &deps{
		orders:   mock.NewMockOrderRepository(ctrl),
		drops:    mock.NewMockDropRepository(ctrl),
		stock:    mock.NewMockStockLedger(ctrl),
		resolver: mock.NewMockIdempotencyResolver(ctrl),
		cache:    mock.NewMockIdempotencyCache(ctrl),
		events:   mock.NewMockEventPublisher(ctrl),
	}
	if prepare != nil {
		prepare(d)
	}
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger, _ := zap.NewDevelopment()
	opts := []service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithEventPublisher(d.events),
	}
	if withCache {
		opts = append(opts, service.WithIdempotencyCache(d.cache))
	}

	s, err := service.NewOrderService(d.orders, d.drops, d.stock, d.resolver, logger, opts...)
	require.NoError(t, err)
	return s
}

func liveDrop() *domain.DropEvent {
	return &domain.DropEvent{
		ID:       1,
		Status:   domain.DropStatusLive,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:             100,
		UserID:         7,
		DropEventID:    1,
		SKUID:          11,
		Status:         domain.OrderStatusPaymentPending,
		IdempotencyKey: "key-1",
		ExpiresAt:      now.Add(5 * time.Minute),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	req := domain.CreateOrderRequest{
		UserID:      7,
		DropEventID: 1,
		SKUID:       11,
		Amount:      decimal.MustNew(12900, 2),
	}
	created := pendingOrder()
	dbErr := errors.New("connection reset")

	type createOrderTest struct {
		name      string
		key       string
		withCache bool
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}

	tests := []createOrderTest{
		{
			name:     "Key required",
			key:      "   ",
			expError: domain.ErrIdempotencyKeyRequired,
		},
		{
			name: "Existing key returns stored order",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(created, nil)
			},
			expResult: created,
		},
		{
			name:      "Cache hit skips key lookup",
			key:       "key-1",
			withCache: true,
			mock: func(d *deps) {
				d.cache.EXPECT().Get(gomock.Any(), "key-1").Return(created.ID, true, nil)
				d.orders.EXPECT().ReadOrder(gomock.Any(), created.ID).Return(created, nil)
			},
			expResult: created,
		},
		{
			name:      "Cache error falls back to store",
			key:       "key-1",
			withCache: true,
			mock: func(d *deps) {
				d.cache.EXPECT().Get(gomock.Any(), "key-1").Return(int64(0), false, dbErr)
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(created, nil)
			},
			expResult: created,
		},
		{
			name: "Missing drop is not live",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDropNotLive,
		},
		{
			name: "Ended drop is not live",
			key:  "key-1",
			mock: func(d *deps) {
				drop := liveDrop()
				drop.Status = domain.DropStatusEnded
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(drop, nil)
			},
			expError: domain.ErrDropNotLive,
		},
		{
			name: "Live drop past its window is ended on read",
			key:  "key-1",
			mock: func(d *deps) {
				drop := liveDrop()
				drop.EndsAt = now
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(drop, nil)
				d.drops.EXPECT().UpdateDropStatus(gomock.Any(), int64(1), domain.DropStatusLive, domain.DropStatusEnded).
					Return(true, nil)
			},
			expError: domain.ErrDropNotLive,
		},
		{
			name: "Scheduled drop inside window goes live and sells",
			key:  "key-1",
			mock: func(d *deps) {
				drop := liveDrop()
				drop.Status = domain.DropStatusScheduled
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(drop, nil)
				d.drops.EXPECT().UpdateDropStatus(gomock.Any(), int64(1), domain.DropStatusScheduled, domain.DropStatusLive).
					Return(false, nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(created, nil)
			},
			expResult: created,
		},
		{
			name: "Sold out",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(false, nil)
				d.resolver.EXPECT().Lookup(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrSoldOut,
		},
		{
			name: "Sold out to a racer holding the same key",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(false, nil)
				d.resolver.EXPECT().Lookup(gomock.Any(), "key-1").Return(created, nil)
			},
			expResult: created,
		},
		{
			name: "Sold out when the key lookup fails",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(false, nil)
				d.resolver.EXPECT().Lookup(gomock.Any(), "key-1").Return(nil, dbErr)
			},
			expError: domain.ErrSoldOut,
		},
		{
			name: "Reserve fault is internal",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(false, dbErr)
			},
			expError: domain.ErrInternal,
		},
		{
			name:      "Created and cached",
			key:       "key-1",
			withCache: true,
			mock: func(d *deps) {
				d.cache.EXPECT().Get(gomock.Any(), "key-1").Return(int64(0), false, nil)
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order, p *domain.Payment) (*domain.Order, error) {
						assert.Equal(t, domain.OrderStatusPaymentPending, o.Status)
						assert.Equal(t, now.Add(service.DefaultOrderTTL), o.ExpiresAt)
						assert.Equal(t, "key-1", o.IdempotencyKey)
						assert.Equal(t, domain.PaymentStatusInitiated, p.Status)
						assert.Equal(t, "129.00", p.Amount.String())
						return created, nil
					})
				d.cache.EXPECT().Put(gomock.Any(), "key-1", created.ID).Return(nil)
			},
			expResult: created,
		},
		{
			name: "Key conflict returns the winner and releases our unit",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData)
				gomock.InOrder(
					d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil),
					d.resolver.EXPECT().Lookup(gomock.Any(), "key-1").Return(created, nil),
				)
			},
			expResult: created,
		},
		{
			name: "Conflict without a winner is already purchased",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData)
				d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil)
				d.resolver.EXPECT().Lookup(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrAlreadyPurchased,
		},
		{
			name: "Rejected write releases the unit",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(domain.ErrWriteRejected, dbErr))
				d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil)
			},
			expError: domain.ErrInternal,
		},
		{
			name: "Unknown write outcome keeps the unit",
			key:  "key-1",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrderByIdempotencyKey(gomock.Any(), "key-1").Return(nil, domain.ErrDataNotFound)
				d.drops.EXPECT().ReadDropEvent(gomock.Any(), int64(1)).Return(liveDrop(), nil)
				d.stock.EXPECT().Reserve(gomock.Any(), int64(1), int64(11)).Return(true, nil)
				d.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newOrderService(t, test.mock, test.withCache)

			result, err := s.CreateOrder(context.Background(), req, test.key)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestOrderService_Pay(t *testing.T) {
	payment := &domain.Payment{ID: 200, OrderID: 100, Status: domain.PaymentStatusInitiated}
	dbErr := errors.New("connection reset")

	withStatus := func(o *domain.Order, st domain.OrderStatus) *domain.Order {
		o.Status = st
		return o
	}
	paymentWith := func(st domain.PaymentStatus) *domain.Payment {
		p := *payment
		p.Status = st
		return &p
	}

	type payTest struct {
		name      string
		result    string
		mock      prepareMocks
		expError  error
		expResult *domain.PayResult
	}

	tests := []payTest{
		{
			name:     "Invalid result",
			result:   "MAYBE",
			expError: domain.ErrInvalidResult,
		},
		{
			name:   "Order not found",
			result: "SUCCEED",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:   "Payment not found",
			result: "SUCCEED",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrPaymentNotFound,
		},
		{
			name:   "Already paid is replayed",
			result: "SUCCEED",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).
					Return(withStatus(pendingOrder(), domain.OrderStatusPaid), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).
					Return(paymentWith(domain.PaymentStatusSucceeded), nil)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusPaid,
				PaymentStatus: domain.PaymentStatusSucceeded},
		},
		{
			name:   "Canceled stays canceled on late success",
			result: "SUCCEED",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).
					Return(withStatus(pendingOrder(), domain.OrderStatusCanceled), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).
					Return(paymentWith(domain.PaymentStatusFailed), nil)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusCanceled,
				PaymentStatus: domain.PaymentStatusFailed},
		},
		{
			name:   "Succeed",
			result: "succeed",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil)
				d.orders.EXPECT().TransitionOrder(gomock.Any(), domain.Transition{
					OrderID: 100,
					From:    domain.OrderStatusPaymentPending,
					To:      domain.OrderStatusPaid,
					Payment: domain.PaymentStatusSucceeded,
					At:      now,
				}).Return(true, nil)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusPaid,
				PaymentStatus: domain.PaymentStatusSucceeded},
		},
		{
			name:   "Succeed loses to expiry",
			result: "SUCCEED",
			mock: func(d *deps) {
				gomock.InOrder(
					d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil),
					d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil),
					d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(false, nil),
					d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).
						Return(withStatus(pendingOrder(), domain.OrderStatusExpired), nil),
					d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil),
				)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusExpired,
				PaymentStatus: domain.PaymentStatusInitiated},
		},
		{
			name:   "Fail cancels and releases once",
			result: "FAIL",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil)
				d.orders.EXPECT().TransitionOrder(gomock.Any(), domain.Transition{
					OrderID: 100,
					From:    domain.OrderStatusPaymentPending,
					To:      domain.OrderStatusCanceled,
					Payment: domain.PaymentStatusFailed,
					At:      now,
				}).Return(true, nil)
				d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil).Times(1)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusCanceled,
				PaymentStatus: domain.PaymentStatusFailed},
		},
		{
			name:   "Fail loses to expiry and does not release",
			result: "FAIL",
			mock: func(d *deps) {
				gomock.InOrder(
					d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil),
					d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil),
					d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(false, nil),
					d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).
						Return(withStatus(pendingOrder(), domain.OrderStatusExpired), nil),
					d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil),
				)
			},
			expResult: &domain.PayResult{OrderID: 100, Status: domain.OrderStatusExpired,
				PaymentStatus: domain.PaymentStatusInitiated},
		},
		{
			name:   "Transition fault is internal",
			result: "FAIL",
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(pendingOrder(), nil)
				d.orders.EXPECT().ReadPaymentByOrder(gomock.Any(), int64(100)).Return(payment, nil)
				d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(false, dbErr)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newOrderService(t, test.mock, false)

			result, err := s.Pay(context.Background(), 100, test.result)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestOrderService_ShipOrder(t *testing.T) {
	shipped := pendingOrder()
	shipped.Status = domain.OrderStatusShipping

	tests := []struct {
		name      string
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}{
		{
			name: "Paid order ships",
			mock: func(d *deps) {
				d.orders.EXPECT().TransitionOrder(gomock.Any(), domain.Transition{
					OrderID: 100,
					From:    domain.OrderStatusPaid,
					To:      domain.OrderStatusShipping,
					At:      now,
				}).Return(true, nil)
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(shipped, nil)
			},
			expResult: shipped,
		},
		{
			name: "Anything else is not paid",
			mock: func(d *deps) {
				d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expError: domain.ErrOrderNotPaid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newOrderService(t, test.mock, false)

			result, err := s.ShipOrder(context.Background(), 100)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestOrderService_ExpirePendingOrders(t *testing.T) {
	first := pendingOrder()
	second := pendingOrder()
	second.ID, second.SKUID = 101, 12
	third := pendingOrder()
	third.ID, third.SKUID = 102, 13

	t.Run("Only won transitions release", func(t *testing.T) {
		s := newOrderService(t, func(d *deps) {
			d.orders.EXPECT().ListExpiredPending(gomock.Any(), now).
				Return([]*domain.Order{first, second}, nil)
			d.orders.EXPECT().TransitionOrder(gomock.Any(), domain.Transition{
				OrderID: 100, From: domain.OrderStatusPaymentPending, To: domain.OrderStatusExpired, At: now,
			}).Return(true, nil)
			d.orders.EXPECT().TransitionOrder(gomock.Any(), domain.Transition{
				OrderID: 101, From: domain.OrderStatusPaymentPending, To: domain.OrderStatusExpired, At: now,
			}).Return(false, nil)
			d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil).Times(1)
		}, false)

		n, err := s.ExpirePendingOrders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("A failing row does not stop the sweep", func(t *testing.T) {
		s := newOrderService(t, func(d *deps) {
			d.orders.EXPECT().ListExpiredPending(gomock.Any(), now).
				Return([]*domain.Order{first, second, third}, nil)
			d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(true, nil)
			d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(false, errors.New("deadlock"))
			d.orders.EXPECT().TransitionOrder(gomock.Any(), gomock.Any()).Return(true, nil)
			d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(11)).Return(nil)
			d.stock.EXPECT().Release(gomock.Any(), int64(1), int64(13)).Return(nil)
		}, false)

		n, err := s.ExpirePendingOrders(context.Background())
		assert.ErrorIs(t, err, domain.ErrInternal)
		assert.Equal(t, 2, n)
	})

	t.Run("Nothing to expire", func(t *testing.T) {
		s := newOrderService(t, func(d *deps) {
			d.orders.EXPECT().ListExpiredPending(gomock.Any(), now).Return([]*domain.Order{}, nil)
		}, false)

		n, err := s.ExpirePendingOrders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestOrderService_GetMyOrder(t *testing.T) {
	order := pendingOrder()

	tests := []struct {
		name      string
		userID    int64
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}{
		{
			name:   "Own order",
			userID: 7,
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(order, nil)
			},
			expResult: order,
		},
		{
			name:   "Someone else's order is hidden",
			userID: 8,
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(order, nil)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:   "Missing order",
			userID: 7,
			mock: func(d *deps) {
				d.orders.EXPECT().ReadOrder(gomock.Any(), int64(100)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newOrderService(t, test.mock, false)

			result, err := s.GetMyOrder(context.Background(), test.userID, 100)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}
