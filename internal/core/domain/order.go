package domain

import (
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusCanceled       OrderStatus = "CANCELED"
	OrderStatusExpired        OrderStatus = "EXPIRED"
	OrderStatusShipping       OrderStatus = "SHIPPING"
)

// ParseOrderStatus accepts any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case OrderStatusPaymentPending, OrderStatusPaid, OrderStatusCanceled,
		OrderStatusExpired, OrderStatusShipping:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// HoldsStock reports whether an order in this status keeps a unit reserved.
func (s OrderStatus) HoldsStock() bool {
	return s == OrderStatusPaymentPending || s == OrderStatusPaid || s == OrderStatusShipping
}

type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "INITIATED"
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type PaymentResult string

const (
	PaymentResultSucceed PaymentResult = "SUCCEED"
	PaymentResultFail    PaymentResult = "FAIL"
)

func ParsePaymentResult(s string) (PaymentResult, error) {
	r := PaymentResult(strings.ToUpper(strings.TrimSpace(s)))
	if r != PaymentResultSucceed && r != PaymentResultFail {
		return "", ErrInvalidResult
	}
	return r, nil
}

type Order struct {
	ID             int64
	UserID         int64
	DropEventID    int64
	SKUID          int64
	Status         OrderStatus
	IdempotencyKey string
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Payment struct {
	ID      int64
	OrderID int64
	Status  PaymentStatus
	Amount  decimal.Decimal
}

// Transition is a conditional status change. It applies only while the
// order is still in From. A non-empty Payment is written in the same unit.
type Transition struct {
	OrderID int64
	From    OrderStatus
	To      OrderStatus
	Payment PaymentStatus
	At      time.Time
}

type CreateOrderRequest struct {
	UserID      int64
	DropEventID int64
	SKUID       int64
	Amount      decimal.Decimal
}

type PayResult struct {
	OrderID       int64
	Status        OrderStatus
	PaymentStatus PaymentStatus
}
