package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Redis    *Redis
	Kafka    *Kafka
	Order    *Order
	Token    *Token
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Redis is optional. Empty Addr disables the idempotency cache.
type Redis struct {
	Addr string        `env:"REDIS_ADDR"`
	TTL  time.Duration `env:"REDIS_IDEMPOTENCY_TTL"`
}

// Kafka is optional. No brokers disables event publishing.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC"`
	Buffer  int      `env:"KAFKA_BUFFER"`
}

type Order struct {
	TTL           time.Duration `env:"ORDER_TTL"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

type Token struct {
	KeyHex string        `env:"TOKEN_KEY"`
	TTL    time.Duration `env:"TOKEN_TTL"`
}

func NewConfig() (*Config, error) {
	// .env is a convenience for local runs
	_ = godotenv.Load()

	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var rds Redis
	var kfk Kafka
	var order Order
	var token Token
	var app App
	var brokers string

	fs.StringVar(&db.DSN, "d", "", "Database string")
	var maxConns int
	fs.IntVar(&maxConns, "db-max-conns", 20, "Database pool size")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&rds.Addr, "redis", "", "Redis address for idempotency cache")
	fs.DurationVar(&rds.TTL, "redis-ttl", 24*time.Hour, "Idempotency cache TTL")
	fs.StringVar(&brokers, "kafka", "", "Kafka brokers, comma separated")
	fs.StringVar(&kfk.Topic, "kafka-topic", "drop.orders", "Kafka topic for order events")
	fs.IntVar(&kfk.Buffer, "kafka-buffer", 1024, "Kafka producer buffer")
	fs.DurationVar(&order.TTL, "order-ttl", 5*time.Minute, "Payment window for new orders")
	fs.DurationVar(&order.SweepInterval, "sweep", time.Minute, "Expiration sweep interval")
	fs.StringVar(&token.KeyHex, "k", "", "Token key (hex, 32 bytes)")
	fs.DurationVar(&token.TTL, "token-ttl", 24*time.Hour, "Token lifetime")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")

	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	db.MaxConns = int32(maxConns)
	if brokers != "" {
		kfk.Brokers = strings.Split(brokers, ",")
	}

	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&rds)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&kfk)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&order)
	if err != nil {
		return nil, fmt.Errorf("error parsing order config: %w", err)
	}
	err = env.Parse(&token)
	if err != nil {
		return nil, fmt.Errorf("error parsing token config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	if order.TTL <= 0 {
		return nil, fmt.Errorf("order ttl must be positive, got %s", order.TTL)
	}
	if order.SweepInterval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %s", order.SweepInterval)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Redis:    &rds,
		Kafka:    &kfk,
		Order:    &order,
		Token:    &token,
		App:      &app,
	}

	return &config, nil
}
