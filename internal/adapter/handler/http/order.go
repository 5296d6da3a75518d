package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderReq struct {
	DropEventID int64       `json:"dropEventId" binding:"required"`
	SKUID       int64       `json:"skuId" binding:"required"`
	Amount      json.Number `json:"amount"`
}

func (r createOrderReq) amount() (decimal.Decimal, error) {
	if r.Amount == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.Parse(r.Amount.String())
	if err != nil || d.IsNeg() {
		return decimal.Zero, domain.ErrBadRequest
	}
	return d, nil
}

type createOrderResp struct {
	OrderID   int64     `json:"orderId"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type payReq struct {
	Result string `json:"result" binding:"required"`
}

type payResp struct {
	OrderID       int64  `json:"orderId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

type orderResp struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	DropEventID int64     `json:"dropEventId"`
	SKUID       int64     `json:"skuId"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newOrderResp(o *domain.Order) orderResp {
	return orderResp{
		ID:          o.ID,
		UserID:      o.UserID,
		DropEventID: o.DropEventID,
		SKUID:       o.SKUID,
		Status:      string(o.Status),
		ExpiresAt:   o.ExpiresAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOrderListResp(list []*domain.Order) []orderResp {
	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}
	return result
}

func orderIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}

// CreateOrder godoc
//
//	@Summary	Reserve a unit and open an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		Idempotency-Key	header		string			true	"Client retry key"
//	@Param		request			body		createOrderReq	true	"Order"
//	@Success	200				{object}	createOrderResp
//	@Failure	400,401,409,500	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/orders [post]
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}
	amount, err := req.amount()
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.CreateOrder(ctx.Request.Context(), domain.CreateOrderRequest{
		UserID:      userID,
		DropEventID: req.DropEventID,
		SKUID:       req.SKUID,
		Amount:      amount,
	}, ctx.GetHeader(idempotencyHeader))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, createOrderResp{
		OrderID:   order.ID,
		Status:    string(order.Status),
		ExpiresAt: order.ExpiresAt,
	})
}

// Pay godoc
//
//	@Summary	Apply a payment result
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id				path		int		true	"Order id"
//	@Param		request			body		payReq	true	"SUCCEED or FAIL"
//	@Success	200				{object}	payResp
//	@Failure	400,401,404,500	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/orders/{id}/pay [post]
func (oh *OrderHandler) Pay(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	var req payReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleError(ctx, domain.ErrInvalidResult)
		return
	}

	res, err := oh.service.Pay(ctx.Request.Context(), orderID, req.Result)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, payResp{
		OrderID:       res.OrderID,
		Status:        string(res.Status),
		PaymentStatus: string(res.PaymentStatus),
	})
}

// ListMyOrders godoc
//
//	@Summary	Orders of the caller, newest first
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		orderResp
//	@Failure	401	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/orders/me [get]
func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.GetMyOrders(ctx.Request.Context(), userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResp(list))
}

// GetMyOrder godoc
//
//	@Summary	One order of the caller
//	@Tags		orders
//	@Produce	json
//	@Param		id			path		int	true	"Order id"
//	@Success	200			{object}	orderResp
//	@Failure	400,401,404	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (oh *OrderHandler) GetMyOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.GetMyOrder(ctx.Request.Context(), userID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

// ListOrdersByStatus godoc
//
//	@Summary	Orders filtered by status
//	@Tags		admin
//	@Produce	json
//	@Param		status		query		string	false	"Order status"
//	@Success	200			{array}		orderResp
//	@Failure	400,401,403	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (oh *OrderHandler) ListOrdersByStatus(ctx *gin.Context) {
	var status *domain.OrderStatus
	if raw, ok := ctx.GetQuery("status"); ok && raw != "" {
		st, err := domain.ParseOrderStatus(raw)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		status = &st
	}

	list, err := oh.service.GetOrdersByStatus(ctx.Request.Context(), status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResp(list))
}

// ShipOrder godoc
//
//	@Summary	Move a paid order to shipping
//	@Tags		admin
//	@Produce	json
//	@Param		id				path		int	true	"Order id"
//	@Success	200				{object}	orderResp
//	@Failure	400,401,403,409	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/admin/orders/{id}/ship [post]
func (oh *OrderHandler) ShipOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.ShipOrder(ctx.Request.Context(), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusOK)
}
