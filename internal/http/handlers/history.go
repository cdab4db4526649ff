package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"araucarias-admin-service/internal/reporting"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/pkg/response"
)

const historyPageSize = 10

type historyEntry struct {
	ID           string           `json:"id"`
	Channel      store.Channel    `json:"channel"`
	CustomerName string           `json:"customerName"`
	TableNumber  *int             `json:"tableNumber,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Total        float64          `json:"total"`
	PlacedAt     time.Time        `json:"placedAt"`
	Items        []store.LineItem `json:"items"`
}

// OrderHistory lists delivered orders from both channels, newest first,
// paginated. Filters: type (local|delivery), category, table, page. A
// table filter implies the in-store channel only.
func (h *Handler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	channelFilter := q.Get("type")
	if channelFilter != "" && channelFilter != "local" && channelFilter != "delivery" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order type filter")
		return
	}

	page := parseIntWithBounds(q.Get("page"), 1, 1, 10000)

	filter := store.HistoryFilter{Limit: page * historyPageSize}
	if raw := q.Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category filter")
			return
		}
		filter.CategoryID = id
	}
	if raw := q.Get("table"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table filter")
			return
		}
		filter.TableNumber = n
		// A table only exists in-store.
		channelFilter = "local"
	}

	wantLocal := channelFilter == "" || channelFilter == "local"
	wantDelivery := channelFilter == "" || channelFilter == "delivery"

	var (
		quiosco       []store.Order
		delivery      []store.DeliveryOrder
		quioscoTotal  int64
		deliveryTotal int64
		categories    []store.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	if wantLocal {
		g.Go(func() (err error) {
			quiosco, err = h.Store.HistoryInStoreOrders(gctx, filter)
			return err
		})
		g.Go(func() (err error) {
			quioscoTotal, err = h.Store.CountHistoryInStore(gctx, filter)
			return err
		})
	}
	if wantDelivery {
		g.Go(func() (err error) {
			delivery, err = h.Store.HistoryDeliveryOrders(gctx, filter)
			return err
		})
		g.Go(func() (err error) {
			deliveryTotal, err = h.Store.CountHistoryDelivery(gctx, filter)
			return err
		})
	}
	g.Go(func() (err error) {
		categories, err = h.Store.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Logger.Error("order history load failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load order history")
		return
	}

	entries := make([]historyEntry, 0, len(quiosco)+len(delivery))
	for _, o := range quiosco {
		entries = append(entries, historyEntry{
			ID:           "Q-" + strconv.FormatInt(o.ID, 10),
			Channel:      store.ChannelQuiosco,
			CustomerName: o.CustomerName,
			TableNumber:  o.TableNumber,
			Total:        o.Total,
			PlacedAt:     o.PlacedAt,
			Items:        o.Items,
		})
	}
	for _, o := range delivery {
		entries = append(entries, historyEntry{
			ID:           "D-" + strconv.FormatInt(o.ID, 10),
			Channel:      store.ChannelDelivery,
			CustomerName: o.ClientName,
			Address:      o.Address,
			Total:        reporting.SumLineItems(o.Items),
			PlacedAt:     o.PlacedAt,
			Items:        o.Items,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PlacedAt.After(entries[j].PlacedAt)
	})

	offset := (page - 1) * historyPageSize
	if offset > len(entries) {
		offset = len(entries)
	}
	pageEnd := offset + historyPageSize
	if pageEnd > len(entries) {
		pageEnd = len(entries)
	}

	response.Page(w, map[string]any{
		"orders":     entries[offset:pageEnd],
		"categories": categories,
	}, page, historyPageSize, int(quioscoTotal+deliveryTotal))
}
