package store

import (
	"context"

	"araucarias-admin-service/internal/utils"

	"github.com/jackc/pgx/v5/pgtype"
)

// CountDeliveredInStore counts all delivered quiosco orders, all time.
func (s *Store) CountDeliveredInStore(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		select count(*) from orders where delivered_at is not null
	`).Scan(&count)
	if err != nil {
		return 0, dataSourceError("quiosco count", err)
	}
	return count, nil
}

// CountDeliveredDelivery counts all delivered delivery orders, all time.
func (s *Store) CountDeliveredDelivery(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		select count(*) from delivery_orders where status = $1
	`, DeliveryStatusDelivered).Scan(&count)
	if err != nil {
		return 0, dataSourceError("delivery count", err)
	}
	return count, nil
}

// CountProducts counts the current menu size.
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `select count(*) from products`).Scan(&count); err != nil {
		return 0, dataSourceError("products count", err)
	}
	return count, nil
}

// AvgInStoreOrderValue averages the stored quiosco totals over delivered
// orders. Returns 0 when there are no delivered orders yet.
func (s *Store) AvgInStoreOrderValue(ctx context.Context) (float64, error) {
	var avg pgtype.Numeric
	err := s.db.QueryRow(ctx, `
		select coalesce(avg(total), 0) from orders where delivered_at is not null
	`).Scan(&avg)
	if err != nil {
		return 0, dataSourceError("average order value", err)
	}
	return utils.NumericToFloat64(avg), nil
}

// Categories lists the menu categories for history filter dropdowns.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.Query(ctx, `select id, name, slug, icon from categories order by id asc`)
	if err != nil {
		return nil, dataSourceError("categories query", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon); err != nil {
			return nil, dataSourceError("categories scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataSourceError("categories rows", err)
	}
	return out, nil
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}
