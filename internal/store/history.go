package store

import (
	"context"
	"strconv"
)

// HistoryFilter narrows the order-history listing. Zero values mean "all".
// The table filter only applies to the in-store channel.
type HistoryFilter struct {
	CategoryID  int64
	TableNumber int
	Limit       int
}

// HistoryInStoreOrders lists delivered quiosco orders newest first,
// honoring the category and table filters.
func (s *Store) HistoryInStoreOrders(ctx context.Context, f HistoryFilter) ([]Order, error) {
	query := `
		select o.id, o.customer_name, o.table_number, o.total, o.note,
		       o.placed_at, o.started_preparation_at, o.ready_at, o.delivered_at
		from orders o
		where o.delivered_at is not null`
	args := []any{}

	if f.TableNumber > 0 {
		args = append(args, f.TableNumber)
		query += " and o.table_number = $" + strconv.Itoa(len(args))
	}
	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		query += ` and exists (
			select 1 from order_products op
			join products p on p.id = op.product_id
			where op.order_id = o.id and p.category_id = $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, f.Limit)
	query += " order by o.placed_at desc limit $" + strconv.Itoa(len(args))

	return s.inStoreOrders(ctx, query, args...)
}

func (s *Store) CountHistoryInStore(ctx context.Context, f HistoryFilter) (int64, error) {
	query := `select count(*) from orders o where o.delivered_at is not null`
	args := []any{}

	if f.TableNumber > 0 {
		args = append(args, f.TableNumber)
		query += " and o.table_number = $" + strconv.Itoa(len(args))
	}
	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		query += ` and exists (
			select 1 from order_products op
			join products p on p.id = op.product_id
			where op.order_id = o.id and p.category_id = $` + strconv.Itoa(len(args)) + `)`
	}

	var count int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, dataSourceError("quiosco history count", err)
	}
	return count, nil
}

// HistoryDeliveryOrders lists delivered delivery orders newest first,
// honoring the category filter.
func (s *Store) HistoryDeliveryOrders(ctx context.Context, f HistoryFilter) ([]DeliveryOrder, error) {
	query := `
		select d.id, d.client_id, d.client_name, d.client_phone, d.status, d.note,
		       d.placed_at_ms, d.started_preparation_at, d.ready_at,
		       c.name, c.phone, a.address, a.neighborhood
		from delivery_orders d
		left join clients c on c.id = d.client_id
		left join addresses a on a.id = d.address_id
		where d.status = $1`
	args := []any{DeliveryStatusDelivered}

	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		query += ` and exists (
			select 1 from delivery_order_products dop
			join products p on p.id = dop.product_id
			where dop.delivery_order_id = d.id and p.category_id = $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, f.Limit)
	query += " order by d.placed_at_ms desc limit $" + strconv.Itoa(len(args))

	return s.deliveryOrders(ctx, query, args...)
}

func (s *Store) CountHistoryDelivery(ctx context.Context, f HistoryFilter) (int64, error) {
	query := `select count(*) from delivery_orders d where d.status = $1`
	args := []any{DeliveryStatusDelivered}

	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		query += ` and exists (
			select 1 from delivery_order_products dop
			join products p on p.id = dop.product_id
			where dop.delivery_order_id = d.id and p.category_id = $` + strconv.Itoa(len(args)) + `)`
	}

	var count int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, dataSourceError("delivery history count", err)
	}
	return count, nil
}
