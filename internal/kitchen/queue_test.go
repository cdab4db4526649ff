package kitchen

import (
	"testing"
	"time"

	"araucarias-admin-service/internal/store"
)

func TestDerivePrepStatus(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name      string
		startedAt *time.Time
		readyAt   *time.Time
		expected  PrepStatus
	}{
		{name: "no timestamps", expected: StatusPending},
		{name: "started only", startedAt: &now, expected: StatusInProgress},
		{name: "ready only", readyAt: &now, expected: StatusReady},
		{name: "started and ready", startedAt: &now, readyAt: &now, expected: StatusReady},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivePrepStatus(tc.startedAt, tc.readyAt); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestMergeQueuesFIFO(t *testing.T) {
	base := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)

	quiosco := []store.Order{
		{ID: 1, CustomerName: "Ana", PlacedAt: base.Add(2 * time.Minute)},
		{ID: 2, CustomerName: "Bruno", PlacedAt: base.Add(10 * time.Minute)},
	}
	delivery := []store.DeliveryOrder{
		{ID: 1, ClientName: "Carla", PlacedAt: base.Add(5 * time.Minute)},
	}

	merged := MergeQueues(quiosco, delivery)
	if len(merged) != 3 {
		t.Fatalf("got %d orders, want 3", len(merged))
	}

	wantOrder := []string{"Q-1", "D-1", "Q-2"}
	for i, want := range wantOrder {
		if merged[i].OrderID != want {
			t.Fatalf("position %d = %s, want %s", i, merged[i].OrderID, want)
		}
	}
}

func TestMergeQueuesPrefixesDisambiguate(t *testing.T) {
	base := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)

	// Same numeric id on both channels must stay distinguishable.
	quiosco := []store.Order{{ID: 7, PlacedAt: base}}
	delivery := []store.DeliveryOrder{{ID: 7, PlacedAt: base.Add(time.Minute)}}

	merged := MergeQueues(quiosco, delivery)
	if merged[0].OrderID != "Q-7" || merged[1].OrderID != "D-7" {
		t.Fatalf("prefixes wrong: %s, %s", merged[0].OrderID, merged[1].OrderID)
	}
	if merged[0].Channel != store.ChannelQuiosco || merged[1].Channel != store.ChannelDelivery {
		t.Fatalf("channels wrong")
	}
}

func TestMergeQueuesDropsReady(t *testing.T) {
	base := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)
	ready := base.Add(time.Minute)

	quiosco := []store.Order{
		{ID: 1, PlacedAt: base},
		{ID: 2, PlacedAt: base, ReadyAt: &ready},
	}

	merged := MergeQueues(quiosco, nil)
	if len(merged) != 1 {
		t.Fatalf("got %d orders, want 1", len(merged))
	}
	if merged[0].OrderID != "Q-1" {
		t.Fatalf("ready order must not re-enter the queue")
	}
}

func TestFromInStoreTotalsAndItems(t *testing.T) {
	started := time.Date(2024, time.March, 13, 12, 5, 0, 0, time.UTC)
	order := store.Order{
		ID:                   3,
		CustomerName:         "Diego",
		Total:                999, // stored total is ignored
		PlacedAt:             started.Add(-5 * time.Minute),
		StartedPreparationAt: &started,
		Items: []store.LineItem{
			{ProductName: "Empanada", Quantity: 2, UnitPrice: 3},
			{ProductName: "Cazuela", Quantity: 1, UnitPrice: 8},
		},
	}

	prep := FromInStore(order)
	if prep.OrderID != "Q-3" {
		t.Fatalf("order id = %s", prep.OrderID)
	}
	if prep.PrepStatus != StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", prep.PrepStatus)
	}
	if prep.Total != 14 {
		t.Fatalf("total = %v, want 14 recomputed from items", prep.Total)
	}
	if len(prep.Items) != 2 || prep.Items[0].Subtotal != 6 {
		t.Fatalf("items = %+v", prep.Items)
	}
}

func TestFromDeliveryCarriesAddress(t *testing.T) {
	addr := "Av. Alemania 1234, Centro"
	order := store.DeliveryOrder{
		ID:         4,
		ClientName: "Elena",
		Address:    &addr,
		PlacedAt:   time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC),
		Items:      []store.LineItem{{ProductName: "Pastel de choclo", Quantity: 1, UnitPrice: 9}},
	}

	prep := FromDelivery(order)
	if prep.OrderID != "D-4" || prep.Channel != store.ChannelDelivery {
		t.Fatalf("identity wrong: %+v", prep)
	}
	if prep.Address == nil || *prep.Address != addr {
		t.Fatalf("address lost")
	}
	if prep.PrepStatus != StatusPending {
		t.Fatalf("status = %s, want PENDING", prep.PrepStatus)
	}
}
