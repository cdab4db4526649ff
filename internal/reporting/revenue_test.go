package reporting

import (
	"testing"

	"araucarias-admin-service/internal/store"
)

func TestAggregateWindowRecomputesFromItems(t *testing.T) {
	quiosco := []store.Order{
		{
			ID: 1,
			// Stored checkout total disagrees with the line items and
			// must not leak into the aggregate.
			Total: 99,
			Items: []store.LineItem{
				{ProductID: 1, Quantity: 2, UnitPrice: 10},
				{ProductID: 2, Quantity: 1, UnitPrice: 5},
			},
		},
	}
	delivery := []store.DeliveryOrder{
		{
			ID: 1,
			Items: []store.LineItem{
				{ProductID: 3, Quantity: 3, UnitPrice: 4},
			},
		},
	}

	rev := AggregateWindow(quiosco, delivery)
	if rev.Quiosco != 25 {
		t.Fatalf("quiosco revenue = %v, want 25", rev.Quiosco)
	}
	if rev.Delivery != 12 {
		t.Fatalf("delivery revenue = %v, want 12", rev.Delivery)
	}
	if rev.Total != 37 {
		t.Fatalf("total revenue = %v, want 37", rev.Total)
	}
}

func TestAggregateWindowEqualChannels(t *testing.T) {
	// A $10 quiosco order and a $10 delivery order split revenue evenly.
	quiosco := []store.Order{
		{ID: 1, Items: []store.LineItem{{ProductID: 1, Quantity: 1, UnitPrice: 10}}},
	}
	delivery := []store.DeliveryOrder{
		{ID: 2, Items: []store.LineItem{{ProductID: 2, Quantity: 2, UnitPrice: 5}}},
	}

	rev := AggregateWindow(quiosco, delivery)
	if rev.Total != 20 {
		t.Fatalf("total = %v, want 20", rev.Total)
	}
	if rev.Quiosco != rev.Delivery {
		t.Fatalf("expected even split, got quiosco=%v delivery=%v", rev.Quiosco, rev.Delivery)
	}
}

func TestAggregateWindowEmpty(t *testing.T) {
	rev := AggregateWindow(nil, nil)
	if rev.Quiosco != 0 || rev.Delivery != 0 || rev.Total != 0 {
		t.Fatalf("empty window must yield zeros, got %+v", rev)
	}
}

func TestPoolLineItems(t *testing.T) {
	quiosco := []store.Order{
		{ID: 1, Items: []store.LineItem{{ProductID: 1, Quantity: 1, UnitPrice: 10}}},
		{ID: 2, Items: []store.LineItem{{ProductID: 2, Quantity: 2, UnitPrice: 3}}},
	}
	delivery := []store.DeliveryOrder{
		{ID: 3, Items: []store.LineItem{{ProductID: 1, Quantity: 4, UnitPrice: 10}}},
	}

	items := PoolLineItems(quiosco, delivery)
	if len(items) != 3 {
		t.Fatalf("pooled %d items, want 3", len(items))
	}
	if got := SumLineItems(items); got != 56 {
		t.Fatalf("pooled revenue = %v, want 56", got)
	}
}
