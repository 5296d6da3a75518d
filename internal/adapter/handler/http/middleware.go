package http

import (
	"strings"

	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

func (h *Handler) authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		payload, err := tokenService.VerifyToken(words[1])
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// requireRole must run after authCheck.
func (h *Handler) requireRole(role domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if getAuthPayload(ctx).Role != role {
			h.handleAbort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

// tracing starts a server span per request, continuing any W3C trace
// context sent by the caller. Spans are no-ops until a tracer provider is set.
func tracing(service string) gin.HandlerFunc {
	tracer := otel.Tracer(service)
	prop := otel.GetTextMapPropagator()

	return func(ctx *gin.Context) {
		reqCtx := prop.Extract(ctx.Request.Context(), propagation.HeaderCarrier(ctx.Request.Header))
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		reqCtx, span := tracer.Start(reqCtx, ctx.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", ctx.Request.Method),
				attribute.String("http.route", route),
			))
		defer span.End()

		ctx.Request = ctx.Request.WithContext(reqCtx)
		ctx.Next()

		span.SetAttributes(attribute.Int("http.status_code", ctx.Writer.Status()))
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		logger.Debug("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()))
	}
}
