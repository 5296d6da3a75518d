package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"go.uber.org/zap"
)

// Outcome labels reported to metrics.
const (
	opCreate = "create"
	opPay    = "pay"
	opShip   = "ship"
	opExpire = "expire"
)

// OrderService drives orders through
// PAYMENT_PENDING -> PAID | CANCELED | EXPIRED and PAID -> SHIPPING.
// Every status change is a conditional write on the stored status, and
// stock goes back to the ledger only from the caller that won that write.
type OrderService struct {
	orders   port.OrderRepository
	drops    port.DropRepository
	stock    port.StockLedger
	resolver port.IdempotencyResolver
	cache    port.IdempotencyCache
	events   port.EventPublisher
	metrics  port.Metrics
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger

	writeTimeout time.Duration
}

func NewOrderService(orders port.OrderRepository, drops port.DropRepository,
	stock port.StockLedger, resolver port.IdempotencyResolver,
	logger *zap.Logger, opts ...Option) (*OrderService, error) {
	o := newOptions(opts)
	if o.ttl <= 0 {
		return nil, errors.New("order ttl must be positive")
	}
	if o.writeTimeout <= 0 {
		return nil, errors.New("write timeout must be positive")
	}

	return &OrderService{
		orders:   orders,
		drops:    drops,
		stock:    stock,
		resolver: resolver,
		cache:    o.cache,
		events:   o.events,
		metrics:  o.metrics,
		ttl:      o.ttl,
		now:      o.now,
		logger:   logger,

		writeTimeout: o.writeTimeout,
	}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest,
	idempotencyKey string) (*domain.Order, error) {
	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		s.metrics.OrderOutcome(opCreate, "key_required")
		return nil, domain.ErrIdempotencyKeyRequired
	}

	existing, err := s.findByKey(ctx, key)
	if err != nil {
		s.logger.Error("Find order by key", zap.String("key", key), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if existing != nil {
		s.metrics.OrderOutcome(opCreate, "replayed")
		return existing, nil
	}

	now := s.now()
	drop, err := currentDrop(ctx, s.drops, req.DropEventID, now, s.logger)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Read drop", zap.Int64("drop", req.DropEventID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !drop.IsSellable(now) {
		s.metrics.OrderOutcome(opCreate, "drop_not_live")
		return nil, domain.ErrDropNotLive
	}

	// From the reservation on, the unit and the order row must settle
	// together, so a caller going away must not cut the insert short.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	reserved, err := s.stock.Reserve(wctx, req.DropEventID, req.SKUID)
	if err != nil {
		s.logger.Error("Reserve stock",
			zap.Int64("drop", req.DropEventID), zap.Int64("sku", req.SKUID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !reserved {
		return s.resolveSoldOut(ctx, key)
	}

	order := &domain.Order{
		UserID:         req.UserID,
		DropEventID:    req.DropEventID,
		SKUID:          req.SKUID,
		Status:         domain.OrderStatusPaymentPending,
		IdempotencyKey: key,
		ExpiresAt:      now.Add(s.ttl),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	payment := &domain.Payment{
		Status: domain.PaymentStatusInitiated,
		Amount: req.Amount,
	}

	created, err := s.orders.CreateOrder(wctx, order, payment)
	if err != nil {
		return s.resolveFailedCreate(wctx, order, err)
	}

	err = s.cache.Put(ctx, key, created.ID)
	if err != nil {
		s.logger.Warn("Cache idempotency key", zap.String("key", key), zap.Error(err))
	}
	s.publish(ctx, domain.EventOrderCreated, created)
	s.metrics.OrderOutcome(opCreate, "created")

	return created, nil
}

// findByKey returns nil, nil when no order carries the key.
func (s *OrderService) findByKey(ctx context.Context, key string) (*domain.Order, error) {
	orderID, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Read idempotency cache", zap.String("key", key), zap.Error(err))
	}
	if ok {
		order, err := s.orders.ReadOrder(ctx, orderID)
		if err == nil && order.IdempotencyKey == key {
			return order, nil
		}
	}

	order, err := s.orders.ReadOrderByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// resolveSoldOut gives a retry that lost the last unit to its own
// earlier attempt the order that attempt created.
func (s *OrderService) resolveSoldOut(ctx context.Context, key string) (*domain.Order, error) {
	winner, err := s.resolver.Lookup(ctx, key)
	if err == nil {
		s.metrics.OrderOutcome(opCreate, "replayed")
		return winner, nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Warn("Look up key after sold out", zap.String("key", key), zap.Error(err))
	}
	s.metrics.OrderOutcome(opCreate, "sold_out")
	return nil, domain.ErrSoldOut
}

// resolveFailedCreate handles a failed insert after a unit was reserved.
// The unit goes back only when the store certainly did not commit.
func (s *OrderService) resolveFailedCreate(ctx context.Context, order *domain.Order,
	cause error) (*domain.Order, error) {
	log := s.logger.With(
		zap.String("key", order.IdempotencyKey),
		zap.Int64("drop", order.DropEventID),
		zap.Int64("sku", order.SKUID))

	switch {
	case errors.Is(cause, domain.ErrConflictingData):
		err := s.release(ctx, order.DropEventID, order.SKUID, "idempotency_conflict")
		if err != nil {
			log.Error("Release after key conflict", zap.Error(err))
			return nil, domain.ErrInternal
		}

		winner, err := s.resolver.Lookup(ctx, order.IdempotencyKey)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				s.metrics.OrderOutcome(opCreate, "already_purchased")
				return nil, domain.ErrAlreadyPurchased
			}
			log.Error("Resolve idempotency conflict", zap.Error(err))
			return nil, domain.ErrInternal
		}
		s.metrics.OrderOutcome(opCreate, "replayed")
		return winner, nil

	case errors.Is(cause, domain.ErrWriteRejected):
		err := s.release(ctx, order.DropEventID, order.SKUID, "create_rejected")
		if err != nil {
			log.Error("Release after rejected create", zap.Error(err))
		}
		log.Error("Create order rejected", zap.Error(cause))
		return nil, domain.ErrInternal

	default:
		log.Error("Create order outcome unknown, reservation kept", zap.Error(cause))
		return nil, domain.ErrInternal
	}
}

func (s *OrderService) Pay(ctx context.Context, orderID int64, result string) (*domain.PayResult, error) {
	res, err := domain.ParsePaymentResult(result)
	if err != nil {
		s.metrics.OrderOutcome(opPay, "invalid_result")
		return nil, domain.ErrInvalidResult
	}

	order, payment, err := s.readOrderWithPayment(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPaymentPending {
		s.metrics.OrderOutcome(opPay, "replayed")
		return &domain.PayResult{OrderID: order.ID, Status: order.Status, PaymentStatus: payment.Status}, nil
	}

	t := domain.Transition{
		OrderID: order.ID,
		From:    domain.OrderStatusPaymentPending,
		At:      s.now(),
	}
	event := domain.EventOrderPaid
	if res == domain.PaymentResultSucceed {
		t.To, t.Payment = domain.OrderStatusPaid, domain.PaymentStatusSucceeded
	} else {
		t.To, t.Payment = domain.OrderStatusCanceled, domain.PaymentStatusFailed
		event = domain.EventOrderCanceled
	}

	applied, err := s.orders.TransitionOrder(ctx, t)
	if err != nil {
		s.logger.Error("Pay transition", zap.Int64("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !applied {
		// lost to a concurrent expire or payment callback
		order, payment, err = s.readOrderWithPayment(ctx, orderID)
		if err != nil {
			return nil, err
		}
		s.metrics.OrderOutcome(opPay, "lost_race")
		return &domain.PayResult{OrderID: order.ID, Status: order.Status, PaymentStatus: payment.Status}, nil
	}

	if t.To == domain.OrderStatusCanceled {
		err = s.release(ctx, order.DropEventID, order.SKUID, "payment_failed")
		if err != nil {
			s.logger.Error("Release after failed payment", zap.Int64("order", order.ID), zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	order.Status = t.To
	order.UpdatedAt = t.At
	s.publish(ctx, event, order)
	s.metrics.OrderOutcome(opPay, strings.ToLower(string(t.To)))

	return &domain.PayResult{OrderID: order.ID, Status: t.To, PaymentStatus: t.Payment}, nil
}

func (s *OrderService) readOrderWithPayment(ctx context.Context,
	orderID int64) (*domain.Order, *domain.Payment, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Int64("order", orderID), zap.Error(err))
		return nil, nil, domain.ErrInternal
	}

	payment, err := s.orders.ReadPaymentByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil, domain.ErrPaymentNotFound
		}
		s.logger.Error("Read payment", zap.Int64("order", orderID), zap.Error(err))
		return nil, nil, domain.ErrInternal
	}

	return order, payment, nil
}

func (s *OrderService) ShipOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	applied, err := s.orders.TransitionOrder(ctx, domain.Transition{
		OrderID: orderID,
		From:    domain.OrderStatusPaid,
		To:      domain.OrderStatusShipping,
		At:      s.now(),
	})
	if err != nil {
		s.logger.Error("Ship transition", zap.Int64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !applied {
		s.metrics.OrderOutcome(opShip, "not_paid")
		return nil, domain.ErrOrderNotPaid
	}

	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("Read shipped order", zap.Int64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	s.publish(ctx, domain.EventOrderShipped, order)
	s.metrics.OrderOutcome(opShip, "shipping")

	return order, nil
}

// ExpirePendingOrders moves overdue PAYMENT_PENDING orders to EXPIRED and
// returns their units. The payment row is left as it was. Safe to run
// concurrently with itself and with Pay.
func (s *OrderService) ExpirePendingOrders(ctx context.Context) (int, error) {
	now := s.now()
	list, err := s.orders.ListExpiredPending(ctx, now)
	if err != nil {
		s.logger.Error("List expired orders", zap.Error(err))
		return 0, domain.ErrInternal
	}

	var errs []error
	expired := 0
	for _, order := range list {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		applied, err := s.orders.TransitionOrder(ctx, domain.Transition{
			OrderID: order.ID,
			From:    domain.OrderStatusPaymentPending,
			To:      domain.OrderStatusExpired,
			At:      now,
		})
		if err != nil {
			s.logger.Error("Expire transition", zap.Int64("order", order.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if !applied {
			continue
		}
		expired++

		err = s.release(ctx, order.DropEventID, order.SKUID, "expired")
		if err != nil {
			s.logger.Error("Release after expire", zap.Int64("order", order.ID), zap.Error(err))
			errs = append(errs, err)
		}

		order.Status = domain.OrderStatusExpired
		order.UpdatedAt = now
		s.publish(ctx, domain.EventOrderExpired, order)
		s.metrics.OrderOutcome(opExpire, "expired")
	}

	if len(errs) > 0 {
		return expired, errors.Join(append([]error{domain.ErrInternal}, errs...)...)
	}
	return expired, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Int64("user", userID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *OrderService) GetMyOrder(ctx context.Context, userID int64, orderID int64) (*domain.Order, error) {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Get order", zap.Int64("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrdersByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Error("Get orders by status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

// release returns one unit. It runs even if the request was canceled,
// since the status change it compensates is already committed.
func (s *OrderService) release(ctx context.Context, dropEventID, skuID int64, reason string) error {
	err := s.stock.Release(context.WithoutCancel(ctx), dropEventID, skuID)
	if err != nil {
		return err
	}
	s.metrics.StockReleased(reason)
	return nil
}

func (s *OrderService) publish(ctx context.Context, t domain.EventType, order *domain.Order) {
	err := s.events.Publish(ctx, domain.NewOrderEvent(t, order, s.now()))
	if err != nil {
		s.logger.Warn("Publish order event",
			zap.String("type", string(t)), zap.Int64("order", order.ID), zap.Error(err))
	}
}
