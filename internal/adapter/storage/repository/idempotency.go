package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/dropshop/internal/adapter/storage"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// IdempotencyResolver reads on its own read-only transaction so it only
// sees committed rows, whatever happened to the caller's transaction.
type IdempotencyResolver struct {
	repo *Repository
}

func NewIdempotencyResolver(db *storage.DB) (*IdempotencyResolver, error) {
	return &IdempotencyResolver{repo: &Repository{db: db}}, nil
}

func (r *IdempotencyResolver) Lookup(ctx context.Context, key string) (*domain.Order, error) {
	var order *domain.Order
	err := pgx.BeginTxFunc(ctx, r.repo.db, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		var err error
		order, err = r.repo.readOrderWhere(ctx, tx, sq.Eq{"idempotency_key": key})
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
