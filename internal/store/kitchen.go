package store

import (
	"context"
	"errors"
)

// ErrOrderNotFound is returned by the kitchen lifecycle mutations when the
// referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// Lifecycle timestamps are set once and never rolled back. Marking an
// order ready also backfills the started timestamp if the chef skipped
// the explicit start step, so ready always implies started.

func (s *Store) MarkInStoreStarted(ctx context.Context, orderID int64) error {
	tag, err := s.db.Exec(ctx, `
		update orders
		set started_preparation_at = coalesce(started_preparation_at, now())
		where id = $1
	`, orderID)
	if err != nil {
		return dataSourceError("quiosco start preparation", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *Store) MarkInStoreReady(ctx context.Context, orderID int64) error {
	tag, err := s.db.Exec(ctx, `
		update orders
		set started_preparation_at = coalesce(started_preparation_at, now()),
		    ready_at = coalesce(ready_at, now())
		where id = $1
	`, orderID)
	if err != nil {
		return dataSourceError("quiosco mark ready", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *Store) MarkDeliveryStarted(ctx context.Context, orderID int64) error {
	tag, err := s.db.Exec(ctx, `
		update delivery_orders
		set started_preparation_at = coalesce(started_preparation_at, now())
		where id = $1
	`, orderID)
	if err != nil {
		return dataSourceError("delivery start preparation", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *Store) MarkDeliveryReady(ctx context.Context, orderID int64) error {
	tag, err := s.db.Exec(ctx, `
		update delivery_orders
		set started_preparation_at = coalesce(started_preparation_at, now()),
		    ready_at = coalesce(ready_at, now())
		where id = $1
	`, orderID)
	if err != nil {
		return dataSourceError("delivery mark ready", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
