package reporting

import (
	"araucarias-admin-service/internal/store"
)

// ChannelRevenue is the per-window revenue split. Both figures are
// recomputed from line items: the quiosco channel stores a checkout total
// while the delivery channel never does, and mixing a stored total with a
// recomputed one would bias the comparison between channels.
type ChannelRevenue struct {
	Quiosco  float64 `json:"quiosco"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

func SumLineItems(items []store.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

func InStoreRevenue(orders []store.Order) float64 {
	var total float64
	for _, o := range orders {
		total += SumLineItems(o.Items)
	}
	return total
}

func DeliveryRevenue(orders []store.DeliveryOrder) float64 {
	var total float64
	for _, o := range orders {
		total += SumLineItems(o.Items)
	}
	return total
}

// AggregateWindow combines the two channels' qualifying orders into one
// normalized revenue figure. Empty inputs yield zeros, never an error.
func AggregateWindow(quiosco []store.Order, delivery []store.DeliveryOrder) ChannelRevenue {
	rev := ChannelRevenue{
		Quiosco:  InStoreRevenue(quiosco),
		Delivery: DeliveryRevenue(delivery),
	}
	rev.Total = rev.Quiosco + rev.Delivery
	return rev
}

// PoolLineItems flattens both channels' line items for ranking.
func PoolLineItems(quiosco []store.Order, delivery []store.DeliveryOrder) []store.LineItem {
	items := make([]store.LineItem, 0)
	for _, o := range quiosco {
		items = append(items, o.Items...)
	}
	for _, o := range delivery {
		items = append(items, o.Items...)
	}
	return items
}
