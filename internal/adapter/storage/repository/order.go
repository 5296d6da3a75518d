package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "user_id", "drop_event_id", "sku_id", "status",
	"idempotency_key", "expires_at", "created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.DropEventID,
		&order.SKUID,
		&order.Status,
		&order.IdempotencyKey,
		&order.ExpiresAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order,
	payment *domain.Payment) (*domain.Order, error) {
	created := *order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Insert("orders").
			Columns("user_id", "drop_event_id", "sku_id", "status",
				"idempotency_key", "expires_at", "created_at", "updated_at").
			Values(order.UserID, order.DropEventID, order.SKUID, order.Status,
				order.IdempotencyKey, order.ExpiresAt, order.CreatedAt, order.UpdatedAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(&created.ID)
		if err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Insert("payments").
			Columns("order_id", "status", "amount").
			Values(created.ID, payment.Status, payment.Amount).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, writeErr(err)
	}

	return &created, nil
}

func (r *Repository) readOrderWhere(ctx context.Context, q pgx.Tx, where sq.Sqlizer) (*domain.Order, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row pgx.Row
	if q != nil {
		row = q.QueryRow(ctx, sql, args...)
	} else {
		row = r.db.QueryRow(ctx, sql, args...)
	}
	order, err := scanOrder(row)
	if err != nil {
		return nil, readErr(err)
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.readOrderWhere(ctx, nil, sq.Eq{"id": orderID})
}

func (r *Repository) ReadOrderByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	return r.readOrderWhere(ctx, nil, sq.Eq{"idempotency_key": key})
}

func (r *Repository) ReadPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error) {
	sql, args, err := r.db.QueryBuilder.
		Select("id", "order_id", "status", "amount").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Status,
		&payment.Amount,
	)
	if err != nil {
		return nil, readErr(err)
	}
	return &payment, nil
}

func (r *Repository) TransitionOrder(ctx context.Context, t domain.Transition) (bool, error) {
	applied := false
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.db.QueryBuilder.
			Update("orders").
			Set("status", t.To).
			Set("updated_at", t.At).
			Where(sq.Eq{"id": t.OrderID, "status": t.From}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if t.Payment != "" {
			sql, args, err = r.db.QueryBuilder.
				Update("payments").
				Set("status", t.Payment).
				Set("updated_at", t.At).
				Where(sq.Eq{"order_id": t.OrderID}).
				ToSql()
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, writeErr(err)
	}

	return applied, nil
}

func (r *Repository) listOrders(ctx context.Context, st sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := st.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	return list, rows.Err()
}

func (r *Repository) ListExpiredPending(ctx context.Context, now time.Time) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": domain.OrderStatusPaymentPending}).
		Where(sq.Lt{"expires_at": now}).
		OrderBy("expires_at"))
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.listOrders(ctx, r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.Order, error) {
	st := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC")
	if status != nil {
		st = st.Where(sq.Eq{"status": *status})
	}
	return r.listOrders(ctx, st)
}
