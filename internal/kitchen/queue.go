package kitchen

import (
	"fmt"
	"sort"
	"time"

	"araucarias-admin-service/internal/reporting"
	"araucarias-admin-service/internal/store"
)

type PrepStatus string

const (
	StatusPending    PrepStatus = "PENDING"
	StatusInProgress PrepStatus = "IN_PROGRESS"
	StatusReady      PrepStatus = "READY"
)

type PreparationItem struct {
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// PreparationOrder is the channel-neutral shape the kitchen works from.
// OrderID is channel-prefixed ("Q-12", "D-34") so the merged queue stays
// unambiguous.
type PreparationOrder struct {
	OrderID      string            `json:"orderId"`
	Channel      store.Channel     `json:"channel"`
	CustomerName string            `json:"customerName"`
	Address      *string           `json:"address,omitempty"`
	Note         *string           `json:"note,omitempty"`
	Total        float64           `json:"total"`
	PlacedAt     time.Time         `json:"placedAt"`
	PrepStatus   PrepStatus        `json:"prepStatus"`
	StartedAt    *time.Time        `json:"startedAt,omitempty"`
	ReadyAt      *time.Time        `json:"readyAt,omitempty"`
	Items        []PreparationItem `json:"items"`
}

// DerivePrepStatus is the single source of truth for preparation state.
// The timestamps decide; no stored status flag is consulted.
func DerivePrepStatus(startedAt, readyAt *time.Time) PrepStatus {
	if readyAt != nil {
		return StatusReady
	}
	if startedAt != nil {
		return StatusInProgress
	}
	return StatusPending
}

func FromInStore(o store.Order) PreparationOrder {
	return PreparationOrder{
		OrderID:      fmt.Sprintf("Q-%d", o.ID),
		Channel:      store.ChannelQuiosco,
		CustomerName: o.CustomerName,
		Address:      nil,
		Note:         o.Note,
		Total:        reporting.SumLineItems(o.Items),
		PlacedAt:     o.PlacedAt,
		PrepStatus:   DerivePrepStatus(o.StartedPreparationAt, o.ReadyAt),
		StartedAt:    o.StartedPreparationAt,
		ReadyAt:      o.ReadyAt,
		Items:        mapItems(o.Items),
	}
}

func FromDelivery(o store.DeliveryOrder) PreparationOrder {
	return PreparationOrder{
		OrderID:      fmt.Sprintf("D-%d", o.ID),
		Channel:      store.ChannelDelivery,
		CustomerName: o.ClientName,
		Address:      o.Address,
		Note:         o.Note,
		Total:        reporting.SumLineItems(o.Items),
		PlacedAt:     o.PlacedAt,
		PrepStatus:   DerivePrepStatus(o.StartedPreparationAt, o.ReadyAt),
		StartedAt:    o.StartedPreparationAt,
		ReadyAt:      o.ReadyAt,
		Items:        mapItems(o.Items),
	}
}

// MergeQueues unifies both channels into one FIFO queue, oldest first.
// The readers already exclude ready orders; any that slip through are
// dropped here rather than re-entering the queue.
func MergeQueues(quiosco []store.Order, delivery []store.DeliveryOrder) []PreparationOrder {
	merged := make([]PreparationOrder, 0, len(quiosco)+len(delivery))
	for _, o := range quiosco {
		mapped := FromInStore(o)
		if mapped.PrepStatus == StatusReady {
			continue
		}
		merged = append(merged, mapped)
	}
	for _, o := range delivery {
		mapped := FromDelivery(o)
		if mapped.PrepStatus == StatusReady {
			continue
		}
		merged = append(merged, mapped)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PlacedAt.Before(merged[j].PlacedAt)
	})
	return merged
}

func mapItems(items []store.LineItem) []PreparationItem {
	out := make([]PreparationItem, 0, len(items))
	for _, item := range items {
		out = append(out, PreparationItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Subtotal:    item.Quantity * item.UnitPrice,
		})
	}
	return out
}
