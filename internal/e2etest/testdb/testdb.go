// Package testdb starts a throwaway Postgres for integration tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const startTimeout = 2 * time.Minute

type TestDBInstance struct {
	DSN       string
	container *postgres.PostgresContainer
}

func NewTestDBInstance() (*TestDBInstance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	c, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("dropshop"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(context.Background())
		return nil, fmt.Errorf("failed to get dsn: %w", err)
	}

	return &TestDBInstance{DSN: dsn, container: c}, nil
}

func (i *TestDBInstance) Down() {
	_ = i.container.Terminate(context.Background())
}
