package handlers

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"araucarias-admin-service/internal/reporting"
	"araucarias-admin-service/internal/store"
	"araucarias-admin-service/pkg/response"
)

// Dashboard aggregates revenue, counters and top products across both
// sales channels for the admin home screen. Optional month and year
// query params pin the monthly window to a historical calendar month.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	override, err := parseMonthOverride(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month or year")
		return
	}

	now := time.Now().In(h.Config.Location())
	periods, err := reporting.ResolvePeriods(now, override)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month or year")
		return
	}

	windows := []reporting.TimeWindow{periods.Daily, periods.Weekly, periods.Monthly, periods.Yearly}
	quiosco := make([][]store.Order, len(windows))
	delivery := make([][]store.DeliveryOrder, len(windows))

	var (
		quioscoCount  int64
		deliveryCount int64
		productCount  int64
		avgOrderValue float64
		recentQuiosco []store.Order
		recentDeliv   []store.DeliveryOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, win := range windows {
		i, win := i, win
		g.Go(func() error {
			orders, err := h.Store.DeliveredInStoreOrders(gctx, win.Start, win.End)
			if err != nil {
				return err
			}
			quiosco[i] = orders
			return nil
		})
		g.Go(func() error {
			orders, err := h.Store.DeliveredDeliveryOrders(gctx, win.Start, win.End)
			if err != nil {
				return err
			}
			delivery[i] = orders
			return nil
		})
	}
	g.Go(func() (err error) {
		quioscoCount, err = h.Store.CountDeliveredInStore(gctx)
		return err
	})
	g.Go(func() (err error) {
		deliveryCount, err = h.Store.CountDeliveredDelivery(gctx)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = h.Store.CountProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		avgOrderValue, err = h.Store.AvgInStoreOrderValue(gctx)
		return err
	})
	g.Go(func() (err error) {
		recentQuiosco, err = h.Store.RecentInStoreOrders(gctx, 5)
		return err
	})
	g.Go(func() (err error) {
		recentDeliv, err = h.Store.RecentDeliveryOrders(gctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Logger.Error("dashboard aggregation failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load dashboard data")
		return
	}

	aggs := make([]reporting.ChannelRevenue, len(windows))
	for i := range windows {
		aggs[i] = reporting.AggregateWindow(quiosco[i], delivery[i])
	}
	revenue, quioscoRevenue, deliveryRevenue := revenueByWindow(windows, aggs, periods.Override != nil)

	monthItems := reporting.PoolLineItems(quiosco[2], delivery[2])
	topProducts := reporting.TopProducts(monthItems, reporting.RankByQuantity, 5)

	data := map[string]any{
		"revenue":             revenue,
		"quioscoRevenue":      quioscoRevenue,
		"deliveryRevenue":     deliveryRevenue,
		"totalOrders":         quioscoCount + deliveryCount,
		"periodOrders":        len(quiosco[2]) + len(delivery[2]),
		"totalQuioscoOrders":  quioscoCount,
		"totalDeliveryOrders": deliveryCount,
		"totalProducts":       productCount,
		"avgOrderValue":       avgOrderValue,
		"topProducts":         topProducts,
		"recentOrders": map[string]any{
			"quiosco":  recentQuiosco,
			"delivery": recentDeliv,
		},
		"selectedPeriod": selectedPeriod(periods, now),
	}

	response.Success(w, data)
}

// revenueByWindow keys the aggregated figures by window label so every
// window carries its channel split, not just a grand total. With an
// override the monthly figures repeat under "period", which is what the
// admin UI reads when a historical month is pinned.
func revenueByWindow(windows []reporting.TimeWindow, aggs []reporting.ChannelRevenue, override bool) (total, quiosco, delivery map[string]float64) {
	total = make(map[string]float64, len(windows)+1)
	quiosco = make(map[string]float64, len(windows)+1)
	delivery = make(map[string]float64, len(windows)+1)
	for i, win := range windows {
		total[win.Label] = aggs[i].Total
		quiosco[win.Label] = aggs[i].Quiosco
		delivery[win.Label] = aggs[i].Delivery
		if override && win.Label == "monthly" {
			total["period"] = aggs[i].Total
			quiosco["period"] = aggs[i].Quiosco
			delivery["period"] = aggs[i].Delivery
		}
	}
	return total, quiosco, delivery
}

// selectedPeriod describes the monthly window in display terms. Without
// an override it is the running calendar month up to now; with one, the
// pinned month with endDate rendered as the last included second of the
// exclusive window end.
func selectedPeriod(periods reporting.Periods, ref time.Time) map[string]any {
	month, year := ref.Month(), ref.Year()
	endDate := periods.Monthly.End
	if periods.Override != nil {
		month, year = periods.Override.Month, periods.Override.Year
		endDate = endDate.Add(-time.Second)
	}
	return map[string]any{
		"month":     int(month),
		"year":      year,
		"startDate": periods.Monthly.Start,
		"endDate":   endDate,
	}
}

func parseMonthOverride(r *http.Request) (*reporting.MonthYear, error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" && yearStr == "" {
		return nil, nil
	}
	if monthStr == "" || yearStr == "" {
		return nil, reporting.ErrInvalidPeriod
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, reporting.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, reporting.ErrInvalidPeriod
	}
	override := &reporting.MonthYear{Month: time.Month(month), Year: year}
	if err := override.Validate(); err != nil {
		return nil, err
	}
	return override, nil
}
