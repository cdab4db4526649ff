package reporting

import (
	"time"

	"araucarias-admin-service/internal/store"
)

type SalesStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	QuioscoOrders     int     `json:"quioscoOrders"`
	QuioscoRevenue    float64 `json:"quioscoRevenue"`
	DeliveryOrders    int     `json:"deliveryOrders"`
	DeliveryRevenue   float64 `json:"deliveryRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type DayStat struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// BusinessSummary is the analytics digest fed to the chat assistant's
// context prompt and to the report exports.
type BusinessSummary struct {
	Days          int              `json:"days"`
	SalesStats    SalesStats       `json:"salesStats"`
	TopProducts   []RankedProduct  `json:"topProducts"`
	LowProducts   []RankedProduct  `json:"lowProducts"`
	TopCategories []RankedCategory `json:"topCategories"`
	DayStats      []DayStat        `json:"dayStats"`
}

var spanishDays = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// BuildBusinessSummary digests the two channels' delivered orders over the
// reporting window. Pure function of its inputs. Weekday buckets are
// computed in loc; the scanned timestamps arrive in mixed zones (pgx scan
// zone vs UnixMilli local) and must not decide the day themselves.
func BuildBusinessSummary(quiosco []store.Order, delivery []store.DeliveryOrder, days int, topN int, loc *time.Location) BusinessSummary {
	if topN <= 0 {
		topN = 5
	}
	if loc == nil {
		loc = time.UTC
	}

	rev := AggregateWindow(quiosco, delivery)
	items := PoolLineItems(quiosco, delivery)

	stats := SalesStats{
		TotalOrders:     len(quiosco) + len(delivery),
		TotalRevenue:    rev.Total,
		QuioscoOrders:   len(quiosco),
		QuioscoRevenue:  rev.Quiosco,
		DeliveryOrders:  len(delivery),
		DeliveryRevenue: rev.Delivery,
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	return BusinessSummary{
		Days:          days,
		SalesStats:    stats,
		TopProducts:   TopProducts(items, RankByQuantity, topN),
		LowProducts:   BottomProducts(items, RankByQuantity, topN),
		TopCategories: TopCategories(items, topN),
		DayStats:      dayOfWeekStats(quiosco, delivery, loc),
	}
}

// dayOfWeekStats buckets orders by weekday in loc, Monday first.
func dayOfWeekStats(quiosco []store.Order, delivery []store.DeliveryOrder, loc *time.Location) []DayStat {
	orders := make([]int, 7)
	revenue := make([]float64, 7)

	add := func(placedAt time.Time, amount float64) {
		wd := int(placedAt.In(loc).Weekday())
		orders[wd]++
		revenue[wd] += amount
	}
	for _, o := range quiosco {
		add(o.PlacedAt, SumLineItems(o.Items))
	}
	for _, o := range delivery {
		add(o.PlacedAt, SumLineItems(o.Items))
	}

	out := make([]DayStat, 0, 7)
	for offset := 0; offset < 7; offset++ {
		wd := (offset + 1) % 7 // start the listing on Monday
		out = append(out, DayStat{
			Day:     spanishDays[wd],
			Orders:  orders[wd],
			Revenue: revenue[wd],
		})
	}
	return out
}
