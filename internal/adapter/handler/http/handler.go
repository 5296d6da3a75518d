package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorStatus{
	domain.ErrInternal:   {http.StatusInternalServerError, "INTERNAL_ERROR"},
	domain.ErrBadRequest: {http.StatusBadRequest, "BAD_REQUEST"},

	domain.ErrUnauthorized:               {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrInvalidAuthorizationType:   {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrInvalidToken:               {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:                  {http.StatusForbidden, "FORBIDDEN"},

	domain.ErrIdempotencyKeyRequired: {http.StatusBadRequest, "IDEMPOTENCY_KEY_REQUIRED"},
	domain.ErrDropNotLive:            {http.StatusConflict, "DROP_NOT_LIVE"},
	domain.ErrDropNotFound:           {http.StatusNotFound, "DROP_NOT_FOUND"},
	domain.ErrSoldOut:                {http.StatusConflict, "SOLD_OUT"},
	domain.ErrAlreadyPurchased:       {http.StatusConflict, "ALREADY_PURCHASED"},
	domain.ErrOrderNotFound:          {http.StatusNotFound, "ORDER_NOT_FOUND"},
	domain.ErrPaymentNotFound:        {http.StatusNotFound, "PAYMENT_NOT_FOUND"},
	domain.ErrInvalidResult:          {http.StatusBadRequest, "INVALID_RESULT"},
	domain.ErrInvalidStatus:          {http.StatusBadRequest, "INVALID_STATUS"},
	domain.ErrOrderNotPaid:           {http.StatusConflict, "ORDER_NOT_PAID"},
}

func lookupError(err error) (errorStatus, bool) {
	if s, ok := errorStatusMap[err]; ok {
		return s, true
	}
	for e, s := range errorStatusMap {
		if errors.Is(err, e) {
			return s, true
		}
	}
	return errorStatus{}, false
}

type errorResp struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleAbort sends an error response and stops the handler chain
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	h.writeError(ctx, err)
	ctx.Abort()
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	h.writeError(ctx, err)
}

func (h *Handler) writeError(ctx *gin.Context, err error) {
	s, ok := lookupError(err)
	if !ok {
		s = errorStatusMap[domain.ErrInternal]
		h.logger.Error("error processing request",
			zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	_ = ctx.Error(err)
	ctx.JSON(s.status, errorResp{Error: s.code})
}

// handleSuccessWithStatus sends data, or only the status when data is nil
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
