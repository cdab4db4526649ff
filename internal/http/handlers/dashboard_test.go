package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"araucarias-admin-service/internal/reporting"
)

func TestRevenueByWindowKeepsChannelSplits(t *testing.T) {
	windows := []reporting.TimeWindow{
		{Label: "daily"}, {Label: "weekly"}, {Label: "monthly"}, {Label: "yearly"},
	}
	aggs := []reporting.ChannelRevenue{
		{Quiosco: 10, Delivery: 5, Total: 15},
		{Quiosco: 40, Delivery: 20, Total: 60},
		{Quiosco: 100, Delivery: 50, Total: 150},
		{Quiosco: 900, Delivery: 300, Total: 1200},
	}

	total, quiosco, delivery := revenueByWindow(windows, aggs, false)

	for i, win := range windows {
		if total[win.Label] != aggs[i].Total {
			t.Fatalf("%s total = %v, want %v", win.Label, total[win.Label], aggs[i].Total)
		}
		if quiosco[win.Label] != aggs[i].Quiosco {
			t.Fatalf("%s quiosco split = %v, want %v", win.Label, quiosco[win.Label], aggs[i].Quiosco)
		}
		if delivery[win.Label] != aggs[i].Delivery {
			t.Fatalf("%s delivery split = %v, want %v", win.Label, delivery[win.Label], aggs[i].Delivery)
		}
	}
	if _, ok := total["period"]; ok {
		t.Fatalf("period key must only appear with an override")
	}
}

func TestRevenueByWindowOverrideAddsPeriod(t *testing.T) {
	windows := []reporting.TimeWindow{
		{Label: "daily"}, {Label: "weekly"}, {Label: "monthly"}, {Label: "yearly"},
	}
	aggs := []reporting.ChannelRevenue{
		{Total: 1}, {Total: 2},
		{Quiosco: 70, Delivery: 30, Total: 100},
		{Total: 4},
	}

	total, quiosco, delivery := revenueByWindow(windows, aggs, true)

	if total["period"] != 100 || quiosco["period"] != 70 || delivery["period"] != 30 {
		t.Fatalf("period figures must mirror the monthly window: total=%v quiosco=%v delivery=%v",
			total["period"], quiosco["period"], delivery["period"])
	}
}

func TestSelectedPeriodDefaultsToRunningMonth(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
	periods, err := reporting.ResolvePeriods(ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := selectedPeriod(periods, ref)
	if got["month"] != 6 || got["year"] != 2024 {
		t.Fatalf("month/year = %v/%v, want 6/2024", got["month"], got["year"])
	}
	if start := got["startDate"].(time.Time); !start.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("startDate = %v", start)
	}
	if end := got["endDate"].(time.Time); !end.Equal(ref) {
		t.Fatalf("endDate = %v, want the reference instant", end)
	}
}

func TestSelectedPeriodOverrideRendersInclusiveEnd(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
	periods, err := reporting.ResolvePeriods(ref, &reporting.MonthYear{Month: time.February, Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := selectedPeriod(periods, ref)
	if got["month"] != 2 || got["year"] != 2024 {
		t.Fatalf("month/year = %v/%v, want 2/2024", got["month"], got["year"])
	}
	want := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
	if end := got["endDate"].(time.Time); !end.Equal(want) {
		t.Fatalf("endDate = %v, want %v", end, want)
	}
}

func TestParseMonthOverride(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    *reporting.MonthYear
		wantErr bool
	}{
		{name: "absent", query: "", want: nil},
		{name: "both present", query: "?month=2&year=2024", want: &reporting.MonthYear{Month: time.February, Year: 2024}},
		{name: "month without year", query: "?month=2", wantErr: true},
		{name: "year without month", query: "?year=2024", wantErr: true},
		{name: "non numeric month", query: "?month=feb&year=2024", wantErr: true},
		{name: "month out of range", query: "?month=13&year=2024", wantErr: true},
		{name: "year out of range", query: "?month=1&year=1999", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/admin/dashboard"+tc.query, nil)
			got, err := parseMonthOverride(r)
			if tc.wantErr {
				if !errors.Is(err, reporting.ErrInvalidPeriod) {
					t.Fatalf("expected ErrInvalidPeriod, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected nil override, got %+v", got)
				}
				return
			}
			if got == nil || got.Month != tc.want.Month || got.Year != tc.want.Year {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
