package repository

import (
	"errors"
	"fmt"

	"github.com/MikeRez0/dropshop/internal/adapter/storage"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// readErr maps an empty result to domain.ErrDataNotFound.
func readErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	return err
}

// writeErr separates errors the server reported (the statement or the
// commit was rejected, nothing persisted) from transport failures where
// the outcome is unknown.
func writeErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return fmt.Errorf("%w: %w", domain.ErrWriteRejected, err)
	}
	return err
}
