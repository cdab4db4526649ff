package store

import (
	"context"
	"time"

	"araucarias-admin-service/internal/utils"

	"github.com/jackc/pgx/v5/pgtype"
)

// DeliveredInStoreOrders returns quiosco orders completed inside [start, end),
// with line items and product snapshots attached.
func (s *Store) DeliveredInStoreOrders(ctx context.Context, start, end time.Time) ([]Order, error) {
	return s.inStoreOrders(ctx, `
		select o.id, o.customer_name, o.table_number, o.total, o.note,
		       o.placed_at, o.started_preparation_at, o.ready_at, o.delivered_at
		from orders o
		where o.delivered_at is not null
		  and o.placed_at >= $1
		  and o.placed_at < $2
		order by o.placed_at asc
	`, start, end)
}

// ActiveKitchenInStoreOrders returns quiosco orders still owed to the
// kitchen (no ready timestamp yet), oldest first.
func (s *Store) ActiveKitchenInStoreOrders(ctx context.Context) ([]Order, error) {
	return s.inStoreOrders(ctx, `
		select o.id, o.customer_name, o.table_number, o.total, o.note,
		       o.placed_at, o.started_preparation_at, o.ready_at, o.delivered_at
		from orders o
		where o.ready_at is null
		order by o.placed_at asc
	`)
}

// RecentInStoreOrders returns the latest delivered quiosco orders,
// newest first.
func (s *Store) RecentInStoreOrders(ctx context.Context, limit int) ([]Order, error) {
	return s.inStoreOrders(ctx, `
		select o.id, o.customer_name, o.table_number, o.total, o.note,
		       o.placed_at, o.started_preparation_at, o.ready_at, o.delivered_at
		from orders o
		where o.delivered_at is not null
		order by o.placed_at desc
		limit $1
	`, limit)
}

func (s *Store) inStoreOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dataSourceError("quiosco orders query", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			o           Order
			tableNumber pgtype.Int4
			total       pgtype.Numeric
			note        pgtype.Text
			startedAt   pgtype.Timestamptz
			readyAt     pgtype.Timestamptz
			deliveredAt pgtype.Timestamptz
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &tableNumber, &total, &note,
			&o.PlacedAt, &startedAt, &readyAt, &deliveredAt); err != nil {
			return nil, dataSourceError("quiosco orders scan", err)
		}
		if tableNumber.Valid {
			n := int(tableNumber.Int32)
			o.TableNumber = &n
		}
		o.Total = utils.NumericToFloat64(total)
		if note.Valid && note.String != "" {
			v := note.String
			o.Note = &v
		}
		o.StartedPreparationAt = utils.TimestamptzPtr(startedAt)
		o.ReadyAt = utils.TimestamptzPtr(readyAt)
		o.DeliveredAt = utils.TimestamptzPtr(deliveredAt)
		o.Items = []LineItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, dataSourceError("quiosco orders rows", err)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemsByOrder, err := s.inStoreLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if items, ok := itemsByOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
	return orders, nil
}

func (s *Store) inStoreLineItems(ctx context.Context, orderIDs []int64) (map[int64][]LineItem, error) {
	rows, err := s.db.Query(ctx, `
		select op.order_id, op.product_id, op.quantity,
		       p.name, p.price, c.id, c.name
		from order_products op
		left join products p on p.id = op.product_id
		left join categories c on c.id = p.category_id
		where op.order_id = any($1)
		order by op.id asc
	`, orderIDs)
	if err != nil {
		return nil, dataSourceError("quiosco line items query", err)
	}
	defer rows.Close()

	return scanLineItems(rows)
}
