package store

import (
	"context"
	"time"

	"araucarias-admin-service/internal/utils"

	"github.com/jackc/pgx/v5/pgtype"
)

// DeliveredDeliveryOrders returns delivery orders handed to the customer
// inside [start, end). Placement instants are stored by the ordering app
// as epoch milliseconds.
func (s *Store) DeliveredDeliveryOrders(ctx context.Context, start, end time.Time) ([]DeliveryOrder, error) {
	return s.deliveryOrders(ctx, `
		select d.id, d.client_id, d.client_name, d.client_phone, d.status, d.note,
		       d.placed_at_ms, d.started_preparation_at, d.ready_at,
		       c.name, c.phone, a.address, a.neighborhood
		from delivery_orders d
		left join clients c on c.id = d.client_id
		left join addresses a on a.id = d.address_id
		where d.status = $1
		  and d.placed_at_ms >= $2
		  and d.placed_at_ms < $3
		order by d.placed_at_ms asc
	`, DeliveryStatusDelivered, start.UnixMilli(), end.UnixMilli())
}

// ActiveKitchenDeliveryOrders returns paid delivery orders the kitchen has
// not finished yet, oldest first. Payment is gated by the status string;
// preparation progress is carried only by the timestamp pair.
func (s *Store) ActiveKitchenDeliveryOrders(ctx context.Context) ([]DeliveryOrder, error) {
	return s.deliveryOrders(ctx, `
		select d.id, d.client_id, d.client_name, d.client_phone, d.status, d.note,
		       d.placed_at_ms, d.started_preparation_at, d.ready_at,
		       c.name, c.phone, a.address, a.neighborhood
		from delivery_orders d
		left join clients c on c.id = d.client_id
		left join addresses a on a.id = d.address_id
		where d.status = $1
		  and d.ready_at is null
		order by d.placed_at_ms asc
	`, DeliveryStatusPaid)
}

// RecentDeliveryOrders returns the latest delivered delivery orders,
// newest first.
func (s *Store) RecentDeliveryOrders(ctx context.Context, limit int) ([]DeliveryOrder, error) {
	return s.deliveryOrders(ctx, `
		select d.id, d.client_id, d.client_name, d.client_phone, d.status, d.note,
		       d.placed_at_ms, d.started_preparation_at, d.ready_at,
		       c.name, c.phone, a.address, a.neighborhood
		from delivery_orders d
		left join clients c on c.id = d.client_id
		left join addresses a on a.id = d.address_id
		where d.status = $1
		order by d.placed_at_ms desc
		limit $2
	`, DeliveryStatusDelivered, limit)
}

func (s *Store) deliveryOrders(ctx context.Context, query string, args ...any) ([]DeliveryOrder, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dataSourceError("delivery orders query", err)
	}
	defer rows.Close()

	orders := make([]DeliveryOrder, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			o             DeliveryOrder
			clientID      pgtype.Int8
			snapshotName  pgtype.Text
			snapshotPhone pgtype.Text
			note          pgtype.Text
			placedAtMs    int64
			startedAt     pgtype.Timestamptz
			readyAt       pgtype.Timestamptz
			liveName      pgtype.Text
			livePhone     pgtype.Text
			address       pgtype.Text
			neighborhood  pgtype.Text
		)
		if err := rows.Scan(&o.ID, &clientID, &snapshotName, &snapshotPhone, &o.Status, &note,
			&placedAtMs, &startedAt, &readyAt,
			&liveName, &livePhone, &address, &neighborhood); err != nil {
			return nil, dataSourceError("delivery orders scan", err)
		}

		// Prefer the live client row, then the denormalized snapshot kept
		// for deleted clients, then the generic placeholder.
		o.ClientName = utils.TextOrDefault(liveName, utils.TextOrDefault(snapshotName, PlaceholderClientName))
		o.ClientPhone = utils.TextOrDefault(livePhone, utils.TextOrDefault(snapshotPhone, ""))
		if address.Valid && address.String != "" {
			full := address.String
			if neighborhood.Valid && neighborhood.String != "" {
				full += ", " + neighborhood.String
			}
			o.Address = &full
		}
		if note.Valid && note.String != "" {
			v := note.String
			o.Note = &v
		}
		o.PlacedAt = utils.EpochMillis(placedAtMs)
		o.StartedPreparationAt = utils.TimestamptzPtr(startedAt)
		o.ReadyAt = utils.TimestamptzPtr(readyAt)
		o.Items = []LineItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, dataSourceError("delivery orders rows", err)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemsByOrder, err := s.deliveryLineItems(ctx, ids)
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

func (s *Store) deliveryLineItems(ctx context.Context, orderIDs []int64) (map[int64][]LineItem, error) {
	rows, err := s.db.Query(ctx, `
		select dop.delivery_order_id, dop.product_id, dop.quantity,
		       p.name, p.price, c.id, c.name
		from delivery_order_products dop
		left join products p on p.id = dop.product_id
		left join categories c on c.id = p.category_id
		where dop.delivery_order_id = any($1)
		order by dop.id asc
	`, orderIDs)
	if err != nil {
		return nil, dataSourceError("delivery line items query", err)
	}
	defer rows.Close()

	return scanLineItems(rows)
}
