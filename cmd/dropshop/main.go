package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/dropshop/internal/adapter/auth"
	"github.com/MikeRez0/dropshop/internal/adapter/broker/kafka"
	"github.com/MikeRez0/dropshop/internal/adapter/cache"
	"github.com/MikeRez0/dropshop/internal/adapter/config"
	"github.com/MikeRez0/dropshop/internal/adapter/handler/http"
	"github.com/MikeRez0/dropshop/internal/adapter/logger"
	"github.com/MikeRez0/dropshop/internal/adapter/metrics"
	"github.com/MikeRez0/dropshop/internal/adapter/scheduler"
	"github.com/MikeRez0/dropshop/internal/adapter/storage"
	"github.com/MikeRez0/dropshop/internal/adapter/storage/memory"
	"github.com/MikeRez0/dropshop/internal/adapter/storage/repository"
	"github.com/MikeRez0/dropshop/internal/core/port"
	"github.com/MikeRez0/dropshop/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

//go:generate swag init -g cmd/dropshop/main.go -d ../../ -o ../../docs

//	@title						Dropshop API
//	@version					1.0
//	@description				Limited drop sales: stock reservation, payment and expiry.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error: %s\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("dropshop stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStores(ctx, conf.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("metrics creating error: %w", err)
	}

	opts := []service.Option{
		service.WithOrderTTL(conf.Order.TTL),
		service.WithMetrics(m),
	}

	if conf.Redis.Addr != "" {
		idem, err := cache.NewIdempotencyCache(ctx, conf.Redis)
		if err != nil {
			return fmt.Errorf("redis error: %w", err)
		}
		defer func() { _ = idem.Close() }()
		opts = append(opts, service.WithIdempotencyCache(idem))
	} else {
		log.Info("redis not configured, idempotency cache disabled")
	}

	if len(conf.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(conf.Kafka, log.Named("Events"))
		publisher.Start(ctx)
		defer func() {
			stop()
			publisher.WaitClosed()
		}()
		opts = append(opts, service.WithEventPublisher(publisher))
	} else {
		log.Info("kafka not configured, order events disabled")
	}

	orderService, err := service.NewOrderService(st.orders, st.drops, st.stock, st.resolver, log.Named("Orders"), opts...)
	if err != nil {
		return fmt.Errorf("order service creating error: %w", err)
	}
	dropService, err := service.NewDropService(st.drops, st.stock, log.Named("Drops"))
	if err != nil {
		return fmt.Errorf("drop service creating error: %w", err)
	}

	sweeper, err := scheduler.NewExpirationSweeper(orderService, m, conf.Order.SweepInterval, log.Named("Sweeper"))
	if err != nil {
		return fmt.Errorf("sweeper creating error: %w", err)
	}
	sweeper.Start(ctx)
	defer func() {
		stop()
		<-sweeper.Done()
	}()

	tokenService, err := auth.New(conf.Token)
	if err != nil {
		return fmt.Errorf("token service creating error: %w", err)
	}
	if conf.Token.KeyHex == "" {
		log.Warn("TOKEN_KEY not set, using a random key for this run")
	}

	orderHandler, err := http.NewOrderHandler(orderService, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("order handler creating error: %w", err)
	}
	dropHandler, err := http.NewDropHandler(dropService, log.Named("Drop handler"))
	if err != nil {
		return fmt.Errorf("drop handler creating error: %w", err)
	}

	r, err := http.NewRouter(conf.App, tokenService, orderHandler, dropHandler,
		prometheus.DefaultGatherer, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	err = r.Serve(ctx, conf.HTTP.HostString)
	stop()
	if err != nil {
		return fmt.Errorf("router serve error: %w", err)
	}
	return nil
}

type stores struct {
	orders   port.OrderRepository
	drops    port.DropRepository
	stock    port.StockLedger
	resolver port.IdempotencyResolver
}

// openStores connects to Postgres, or falls back to the in-memory store
// when no DSN is configured.
func openStores(ctx context.Context, conf *config.Database, log *zap.Logger) (*stores, func(), error) {
	if conf.DSN == "" {
		log.Warn("DATABASE_URI not set, using in-memory storage")
		mem := memory.NewStore()
		return &stores{orders: mem, drops: mem, stock: mem, resolver: mem}, func() {}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	err = db.RunMigrations()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("repository creating error: %w", err)
	}
	stock, err := repository.NewStockLedger(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("stock ledger creating error: %w", err)
	}
	resolver, err := repository.NewIdempotencyResolver(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("idempotency resolver creating error: %w", err)
	}

	return &stores{orders: repo, drops: repo, stock: stock, resolver: resolver}, db.Close, nil
}
