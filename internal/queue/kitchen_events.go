package queue

import (
	"context"
	"time"

	"araucarias-admin-service/internal/store"
)

const (
	EventsExchange = "araucarias.events"

	EventOrderStarted = "kitchen.order.started"
	EventOrderReady   = "kitchen.order.ready"
)

// KitchenEvent announces a preparation-lifecycle transition so other
// consumers (printers, displays, the delivery dispatcher) can react.
type KitchenEvent struct {
	OrderID string        `json:"orderId"`
	Channel store.Channel `json:"channel"`
	Event   string        `json:"event"`
	At      time.Time     `json:"at"`
}

// EnsureKitchenTopology declares the topic exchange kitchen events are
// published to. Consumers bind their own queues.
func EnsureKitchenTopology(c *Client) error {
	return c.EnsureExchange(EventsExchange)
}

func PublishKitchenEvent(ctx context.Context, c *Client, orderID string, channel store.Channel, event string) error {
	if c == nil {
		return nil
	}
	return c.PublishJSON(ctx, EventsExchange, event, KitchenEvent{
		OrderID: orderID,
		Channel: channel,
		Event:   event,
		At:      time.Now(),
	})
}
