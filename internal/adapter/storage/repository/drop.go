package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/dropshop/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) dropSelect() sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select("e.id", "e.status", "e.starts_at", "e.ends_at",
			"p.name", "p.brand", "p.price", "p.image_url", "p.description").
		From("drop_events e").
		Join("drop_products p ON p.id = e.product_id")
}

func scanDrop(row pgx.Row) (*domain.DropEvent, error) {
	drop := domain.DropEvent{}
	err := row.Scan(
		&drop.ID,
		&drop.Status,
		&drop.StartsAt,
		&drop.EndsAt,
		&drop.Product.Name,
		&drop.Product.Brand,
		&drop.Product.Price,
		&drop.Product.ImageURL,
		&drop.Product.Description,
	)
	if err != nil {
		return nil, err
	}
	return &drop, nil
}

func (r *Repository) CreateDropEvent(ctx context.Context, drop *domain.DropEvent,
	stocks []*domain.Stock) (*domain.DropEvent, error) {
	created := *drop
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var productID int64
		sql, args, err := r.db.QueryBuilder.
			Insert("drop_products").
			Columns("name", "brand", "price", "image_url", "description").
			Values(drop.Product.Name, drop.Product.Brand, drop.Product.Price,
				drop.Product.ImageURL, drop.Product.Description).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(&productID)
		if err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.
			Insert("drop_events").
			Columns("product_id", "status", "starts_at", "ends_at").
			Values(productID, drop.Status, drop.StartsAt, drop.EndsAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(&created.ID)
		if err != nil {
			return err
		}

		if len(stocks) == 0 {
			return nil
		}
		stockSt := r.db.QueryBuilder.
			Insert("drop_stocks").
			Columns("drop_event_id", "sku_id", "remaining_qty")
		for _, s := range stocks {
			stockSt = stockSt.Values(created.ID, s.SKUID, s.RemainingQty)
		}
		sql, args, err = stockSt.ToSql()
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

func (r *Repository) ReadDropEvent(ctx context.Context, id int64) (*domain.DropEvent, error) {
	sql, args, err := r.dropSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	drop, err := scanDrop(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, readErr(err)
	}
	return drop, nil
}

func (r *Repository) ListDropEvents(ctx context.Context) ([]*domain.DropEvent, error) {
	sql, args, err := r.dropSelect().OrderBy("e.starts_at DESC", "e.id DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.DropEvent, 0)
	for rows.Next() {
		drop, err := scanDrop(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, drop)
	}

	return list, rows.Err()
}

func (r *Repository) UpdateDropStatus(ctx context.Context, id int64,
	from, to domain.DropStatus) (bool, error) {
	sql, args, err := r.db.QueryBuilder.
		Update("drop_events").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, writeErr(err)
	}
	return tag.RowsAffected() == 1, nil
}
