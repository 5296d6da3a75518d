package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrWriteRejected   = errors.New("write rejected by storage")

	// * Communication errors.
	ErrBadRequest    = errors.New("error parsing request")
	ErrInvalidStatus = errors.New("unknown order status")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrDropNotLive            = errors.New("drop event is not live")
	ErrDropNotFound           = errors.New("drop event not found")
	ErrSoldOut                = errors.New("sold out")
	ErrAlreadyPurchased       = errors.New("already purchased")
	ErrOrderNotFound          = errors.New("order not found")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidResult          = errors.New("payment result must be SUCCEED or FAIL")
	ErrOrderNotPaid           = errors.New("order is not paid")
)
