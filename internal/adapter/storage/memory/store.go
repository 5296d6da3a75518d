// Package memory is an in-process store for local runs and tests. One
// mutex guards all state, so every conditional write is a compare-and-swap.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
)

type stockKey struct {
	drop int64
	sku  int64
}

type Store struct {
	mu       sync.RWMutex
	drops    map[int64]*domain.DropEvent
	stocks   map[stockKey]int
	orders   map[int64]*domain.Order
	keys     map[string]int64
	payments map[int64]*domain.Payment
	lastID   int64
}

func NewStore() *Store {
	return &Store{
		drops:    make(map[int64]*domain.DropEvent),
		stocks:   make(map[stockKey]int),
		orders:   make(map[int64]*domain.Order),
		keys:     make(map[string]int64),
		payments: make(map[int64]*domain.Payment),
	}
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func cloneDrop(d *domain.DropEvent) *domain.DropEvent {
	clone := *d
	return &clone
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	return &clone
}

// * Drops.

func (s *Store) CreateDropEvent(_ context.Context, drop *domain.DropEvent,
	stocks []*domain.Stock) (*domain.DropEvent, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	created := cloneDrop(drop)
	created.ID = s.nextID()
	s.drops[created.ID] = created
	for _, st := range stocks {
		s.stocks[stockKey{created.ID, st.SKUID}] = st.RemainingQty
	}
	return cloneDrop(created), nil
}

func (s *Store) ReadDropEvent(_ context.Context, id int64) (*domain.DropEvent, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drops[id]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return cloneDrop(d), nil
}

func (s *Store) ListDropEvents(_ context.Context) ([]*domain.DropEvent, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.DropEvent, 0, len(s.drops))
	for _, d := range s.drops {
		list = append(list, cloneDrop(d))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartsAt.Equal(list[j].StartsAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].StartsAt.After(list[j].StartsAt)
	})
	return list, nil
}

func (s *Store) UpdateDropStatus(_ context.Context, id int64, from, to domain.DropStatus) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drops[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

// * Stock.

func (s *Store) Reserve(_ context.Context, dropEventID, skuID int64) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	k := stockKey{dropEventID, skuID}
	if s.stocks[k] <= 0 {
		return false, nil
	}
	s.stocks[k]--
	return true, nil
}

func (s *Store) Release(_ context.Context, dropEventID, skuID int64) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	k := stockKey{dropEventID, skuID}
	if _, ok := s.stocks[k]; !ok {
		return domain.ErrDataNotFound
	}
	s.stocks[k]++
	return nil
}

func (s *Store) SumRemaining(_ context.Context, dropEventID int64) (int, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := 0
	for k, qty := range s.stocks {
		if k.drop == dropEventID {
			sum += qty
		}
	}
	return sum, nil
}

func (s *Store) ListStocks(_ context.Context, dropEventID int64) ([]*domain.Stock, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Stock, 0)
	for k, qty := range s.stocks {
		if k.drop == dropEventID {
			list = append(list, &domain.Stock{DropEventID: k.drop, SKUID: k.sku, RemainingQty: qty})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKUID < list[j].SKUID })
	return list, nil
}

// * Orders.

func (s *Store) CreateOrder(_ context.Context, order *domain.Order,
	payment *domain.Payment) (*domain.Order, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[order.IdempotencyKey]; ok {
		return nil, domain.ErrConflictingData
	}

	created := cloneOrder(order)
	created.ID = s.nextID()
	s.orders[created.ID] = created
	s.keys[created.IdempotencyKey] = created.ID

	p := *payment
	p.ID = s.nextID()
	p.OrderID = created.ID
	s.payments[created.ID] = &p

	return cloneOrder(created), nil
}

func (s *Store) ReadOrder(_ context.Context, orderID int64) (*domain.Order, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return cloneOrder(o), nil
}

func (s *Store) ReadOrderByIdempotencyKey(_ context.Context, key string) (*domain.Order, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.keys[key]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return cloneOrder(s.orders[id]), nil
}

// Lookup serves as the idempotency resolver. Writes here are atomic,
// so any visible order is already committed.
func (s *Store) Lookup(ctx context.Context, key string) (*domain.Order, error) {
	return s.ReadOrderByIdempotencyKey(ctx, key)
}

func (s *Store) ReadPaymentByOrder(_ context.Context, orderID int64) (*domain.Payment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *Store) TransitionOrder(_ context.Context, t domain.Transition) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[t.OrderID]
	if !ok || o.Status != t.From {
		return false, nil
	}
	o.Status = t.To
	o.UpdatedAt = t.At
	if t.Payment != "" {
		if p, ok := s.payments[t.OrderID]; ok {
			p.Status = t.Payment
		}
	}
	return true, nil
}

func (s *Store) ListExpiredPending(ctx context.Context, now time.Time) ([]*domain.Order, error) {
	return s.listOrders(ctx, func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusPaymentPending && o.ExpiresAt.Before(now)
	})
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.listOrders(ctx, func(o *domain.Order) bool { return o.UserID == userID })
}

func (s *Store) ListOrdersByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.Order, error) {
	return s.listOrders(ctx, func(o *domain.Order) bool { return status == nil || o.Status == *status })
}

func (s *Store) listOrders(_ context.Context, match func(*domain.Order) bool) ([]*domain.Order, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if match(o) {
			list = append(list, cloneOrder(o))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
