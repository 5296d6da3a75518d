package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type DropHandler struct {
	Handler
	service port.DropService
}

func NewDropHandler(service port.DropService, logger *zap.Logger) (*DropHandler, error) {
	return &DropHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type stockResp struct {
	SKUID        int64 `json:"skuId"`
	RemainingQty int   `json:"remainingQty"`
}

type dropResp struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Brand        string      `json:"brand"`
	Price        jsonDecimal `json:"price"`
	ImageURL     string      `json:"imageUrl"`
	Description  string      `json:"description"`
	Status       string      `json:"status"`
	StartsAt     time.Time   `json:"startsAt"`
	EndsAt       time.Time   `json:"endsAt"`
	RemainingQty int         `json:"remainingQty"`
	Stocks       []stockResp `json:"stocks,omitempty"`
}

func newDropResp(v *domain.DropView) dropResp {
	r := dropResp{
		ID:           v.Drop.ID,
		Name:         v.Drop.Product.Name,
		Brand:        v.Drop.Product.Brand,
		Price:        jsonDecimal(v.Drop.Product.Price),
		ImageURL:     v.Drop.Product.ImageURL,
		Description:  v.Drop.Product.Description,
		Status:       string(v.Drop.Status),
		StartsAt:     v.Drop.StartsAt,
		EndsAt:       v.Drop.EndsAt,
		RemainingQty: v.TotalRemaining,
	}
	for _, s := range v.Stocks {
		r.Stocks = append(r.Stocks, stockResp{SKUID: s.SKUID, RemainingQty: s.RemainingQty})
	}
	return r
}

type createDropReq struct {
	Name        string      `json:"name" binding:"required"`
	Brand       string      `json:"brand" binding:"required"`
	Price       string      `json:"price" binding:"required"`
	ImageURL    string      `json:"imageUrl"`
	Description string      `json:"description"`
	StartsAt    time.Time   `json:"startsAt" binding:"required"`
	EndsAt      time.Time   `json:"endsAt" binding:"required"`
	Stocks      []stockResp `json:"stocks"`
}

// ListDrops godoc
//
//	@Summary	All drops with remaining stock
//	@Tags		drops
//	@Produce	json
//	@Success	200	{array}	dropResp
//	@Router		/drops [get]
func (dh *DropHandler) ListDrops(ctx *gin.Context) {
	list, err := dh.service.ListDrops(ctx.Request.Context())
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	result := make([]dropResp, 0, len(list))
	for _, v := range list {
		result = append(result, newDropResp(v))
	}
	dh.handleSuccess(ctx, result)
}

// GetDrop godoc
//
//	@Summary	One drop with per-SKU stock
//	@Tags		drops
//	@Produce	json
//	@Param		id	path		int	true	"Drop id"
//	@Success	200	{object}	dropResp
//	@Failure	404	{object}	errorResp
//	@Router		/drops/{id} [get]
func (dh *DropHandler) GetDrop(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dh.handleError(ctx, domain.ErrDropNotFound)
		return
	}

	v, err := dh.service.GetDrop(ctx.Request.Context(), id)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}
	dh.handleSuccess(ctx, newDropResp(v))
}

// CreateDrop godoc
//
//	@Summary	Schedule a drop
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request		body		createDropReq	true	"Drop"
//	@Success	201			{object}	dropResp
//	@Failure	400,401,403	{object}	errorResp
//	@Security	BearerAuth
//	@Router		/admin/drops [post]
func (dh *DropHandler) CreateDrop(ctx *gin.Context) {
	var req createDropReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dh.handleError(ctx, domain.ErrBadRequest)
		return
	}
	price, err := decimal.Parse(req.Price)
	if err != nil {
		dh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	drop := &domain.DropEvent{
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Product: domain.DropProduct{
			Name:        req.Name,
			Brand:       req.Brand,
			Price:       price,
			ImageURL:    req.ImageURL,
			Description: req.Description,
		},
	}
	stocks := make([]*domain.Stock, 0, len(req.Stocks))
	for _, s := range req.Stocks {
		stocks = append(stocks, &domain.Stock{SKUID: s.SKUID, RemainingQty: s.RemainingQty})
	}

	v, err := dh.service.CreateDrop(ctx.Request.Context(), drop, stocks)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}
	dh.handleSuccessWithStatus(ctx, newDropResp(v), http.StatusCreated)
}
