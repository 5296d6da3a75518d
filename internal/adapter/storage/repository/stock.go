package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/dropshop/internal/adapter/storage"
	"github.com/MikeRez0/dropshop/internal/core/domain"
)

// StockLedger keeps per-SKU counters in drop_stocks. Every call runs
// as its own statement, so a reservation is committed on return.
type StockLedger struct {
	db *storage.DB
}

func NewStockLedger(db *storage.DB) (*StockLedger, error) {
	return &StockLedger{db: db}, nil
}

func (s *StockLedger) Reserve(ctx context.Context, dropEventID, skuID int64) (bool, error) {
	sql, args, err := s.db.QueryBuilder.
		Update("drop_stocks").
		Set("remaining_qty", sq.Expr("remaining_qty - 1")).
		Where(sq.Eq{"drop_event_id": dropEventID, "sku_id": skuID}).
		Where(sq.Gt{"remaining_qty": 0}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, writeErr(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *StockLedger) Release(ctx context.Context, dropEventID, skuID int64) error {
	sql, args, err := s.db.QueryBuilder.
		Update("drop_stocks").
		Set("remaining_qty", sq.Expr("remaining_qty + 1")).
		Where(sq.Eq{"drop_event_id": dropEventID, "sku_id": skuID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return writeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *StockLedger) SumRemaining(ctx context.Context, dropEventID int64) (int, error) {
	sql, args, err := s.db.QueryBuilder.
		Select("COALESCE(SUM(remaining_qty), 0)").
		From("drop_stocks").
		Where(sq.Eq{"drop_event_id": dropEventID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var sum int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return int(sum), nil
}

func (s *StockLedger) ListStocks(ctx context.Context, dropEventID int64) ([]*domain.Stock, error) {
	sql, args, err := s.db.QueryBuilder.
		Select("drop_event_id", "sku_id", "remaining_qty").
		From("drop_stocks").
		Where(sq.Eq{"drop_event_id": dropEventID}).
		OrderBy("sku_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Stock, 0)
	for rows.Next() {
		stock := domain.Stock{}
		err := rows.Scan(&stock.DropEventID, &stock.SKUID, &stock.RemainingQty)
		if err != nil {
			return nil, err
		}
		list = append(list, &stock)
	}

	return list, rows.Err()
}
