package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "github.com/MikeRez0/dropshop/docs"
	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
	logger *zap.Logger
}

func NewRouter(
	conf *config.App,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	dropHandler *DropHandler,
	gatherer prometheus.Gatherer,
	logger *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), tracing("dropshop/http"), requestLogger(logger))

	auth := NewHandler(logger)

	router.GET("/healthz", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		drops := api.Group("/drops")
		{
			drops.GET("", dropHandler.ListDrops)
			drops.GET("/:id", dropHandler.GetDrop)
		}

		orders := api.Group("/orders")
		{
			orders.Use(auth.authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/me", orderHandler.ListMyOrders)
			orders.GET("/:id", orderHandler.GetMyOrder)
			orders.POST("/:id/pay", orderHandler.Pay)
		}

		admin := api.Group("/admin")
		{
			admin.Use(auth.authCheck(tokenService), auth.requireRole(domain.RoleAdmin))
			admin.GET("/orders", orderHandler.ListOrdersByStatus)
			admin.POST("/orders/:id/ship", orderHandler.ShipOrder)
			admin.POST("/drops", dropHandler.CreateDrop)
		}
	}

	return &Router{Engine: router, logger: logger}, nil
}

// Serve runs the HTTP server until ctx is canceled, then drains in-flight requests.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server listening", zap.String("addr", listenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
