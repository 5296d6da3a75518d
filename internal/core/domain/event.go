package domain

import "time"

type EventType string

const (
	EventOrderCreated  EventType = "OrderCreated"
	EventOrderPaid     EventType = "OrderPaid"
	EventOrderCanceled EventType = "OrderCanceled"
	EventOrderExpired  EventType = "OrderExpired"
	EventOrderShipped  EventType = "OrderShipped"
)

type OrderEvent struct {
	Type        EventType
	OrderID     int64
	UserID      int64
	DropEventID int64
	SKUID       int64
	Status      OrderStatus
	OccurredAt  time.Time
}

func NewOrderEvent(t EventType, o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:        t,
		OrderID:     o.ID,
		UserID:      o.UserID,
		DropEventID: o.DropEventID,
		SKUID:       o.SKUID,
		Status:      o.Status,
		OccurredAt:  at,
	}
}
