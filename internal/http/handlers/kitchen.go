package handlers

import (
	"context"
	"errors"
	"net/http"

	"araucarias-admin-service/internal/kitchen"
	"araucarias-admin-service/internal/queue"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/pkg/response"
)

// KitchenOrders returns the merged preparation queue across both
// channels, oldest first. A store failure degrades to an empty queue so
// the kitchen display keeps rendering.
func (h *Handler) KitchenOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quiosco, err := h.Store.ActiveKitchenInStoreOrders(ctx)
	if err != nil {
		h.Logger.Error("kitchen quiosco load failed", zapError(err))
		response.Success(w, map[string]any{"orders": []kitchen.PreparationOrder{}})
		return
	}
	delivery, err := h.Store.ActiveKitchenDeliveryOrders(ctx)
	if err != nil {
		h.Logger.Error("kitchen delivery load failed", zapError(err))
		response.Success(w, map[string]any{"orders": []kitchen.PreparationOrder{}})
		return
	}

	response.Success(w, map[string]any{
		"orders": kitchen.MergeQueues(quiosco, delivery),
	})
}

// KitchenOrderStart marks an order as in preparation. The order id is
// channel-prefixed ("Q-12", "D-34").
func (h *Handler) KitchenOrderStart(w http.ResponseWriter, r *http.Request) {
	h.kitchenTransition(w, r, queue.EventOrderStarted,
		h.Store.MarkInStoreStarted, h.Store.MarkDeliveryStarted)
}

// KitchenOrderReady marks an order as ready for pickup or dispatch.
func (h *Handler) KitchenOrderReady(w http.ResponseWriter, r *http.Request) {
	h.kitchenTransition(w, r, queue.EventOrderReady,
		h.Store.MarkInStoreReady, h.Store.MarkDeliveryReady)
}

func (h *Handler) kitchenTransition(w http.ResponseWriter, r *http.Request, event string,
	markInStore, markDelivery func(context.Context, int64) error) {
	ctx := r.Context()

	raw := readPathString(r, "orderId")
	channel, id, err := parsePrefixedOrderID(raw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order id")
		return
	}

	mark := markInStore
	if channel == store.ChannelDelivery {
		mark = markDelivery
	}
	if err := mark(ctx, id); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			response.Error(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		h.Logger.Error("kitchen transition failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
		return
	}

	// Event fan-out is best effort; the timestamp write already landed.
	if err := queue.PublishKitchenEvent(ctx, h.Queue, raw, channel, event); err != nil {
		h.Logger.Warn("kitchen event publish failed", zapError(err))
	}
	if h.WS != nil {
		h.WS.Nudge()
	}

	response.Success(w, map[string]any{"orderId": raw, "event": event})
}
