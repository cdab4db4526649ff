package reporting

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePeriodsCalendarAligned(t *testing.T) {
	// Wednesday March 13 2024, mid-afternoon.
	ref := time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)

	periods, err := ResolvePeriods(ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := periods.Daily.Start; !got.Equal(time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("daily start = %v", got)
	}
	if got := periods.Weekly.Start; !got.Equal(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("weekly start = %v, want Monday March 11", got)
	}
	if got := periods.Monthly.Start; !got.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("monthly start = %v", got)
	}
	if got := periods.Yearly.Start; !got.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("yearly start = %v", got)
	}
	for _, win := range []TimeWindow{periods.Daily, periods.Weekly, periods.Monthly, periods.Yearly} {
		if !win.End.Equal(ref) {
			t.Fatalf("%s end = %v, want reference instant", win.Label, win.End)
		}
	}
}

func TestResolvePeriodsSundayBelongsToRunningWeek(t *testing.T) {
	// Sunday March 17 2024 counts as day 7, not the start of a new week.
	ref := time.Date(2024, time.March, 17, 10, 0, 0, 0, time.UTC)

	periods, err := ResolvePeriods(ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	if !periods.Weekly.Start.Equal(want) {
		t.Fatalf("weekly start = %v, want %v", periods.Weekly.Start, want)
	}
}

func TestResolvePeriodsDeterministic(t *testing.T) {
	ref := time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)

	first, err := ResolvePeriods(ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ResolvePeriods(ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Daily.Start.Equal(second.Daily.Start) || !first.Weekly.Start.Equal(second.Weekly.Start) ||
		!first.Monthly.Start.Equal(second.Monthly.Start) || !first.Yearly.Start.Equal(second.Yearly.Start) {
		t.Fatalf("same reference produced different windows")
	}
}

func TestResolvePeriodsMonthOverride(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	override := &MonthYear{Month: time.February, Year: 2024}

	periods, err := ResolvePeriods(ref, override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !periods.Monthly.Start.Equal(wantStart) {
		t.Fatalf("override start = %v, want %v", periods.Monthly.Start, wantStart)
	}
	if !periods.Monthly.End.Equal(wantEnd) {
		t.Fatalf("override end = %v, want first instant of next month", periods.Monthly.End)
	}

	// Leap day belongs to the window, the next month's first instant does not.
	if !periods.Monthly.Contains(time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("leap day excluded from February window")
	}
	if periods.Monthly.Contains(wantEnd) {
		t.Fatalf("window end must be exclusive")
	}

	// The other windows stay anchored to the reference instant.
	if !periods.Daily.End.Equal(ref) {
		t.Fatalf("daily window should not follow the override")
	}
}

func TestResolvePeriodsRejectsBadOverride(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		override MonthYear
	}{
		{name: "month zero", override: MonthYear{Month: 0, Year: 2024}},
		{name: "month thirteen", override: MonthYear{Month: 13, Year: 2024}},
		{name: "year too early", override: MonthYear{Month: time.May, Year: 1999}},
		{name: "year too late", override: MonthYear{Month: time.May, Year: 2101}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ResolvePeriods(ref, &tc.override); !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("expected ErrInvalidPeriod, got %v", err)
			}
		})
	}
}

func TestDaysWindow(t *testing.T) {
	ref := time.Date(2024, time.May, 31, 8, 0, 0, 0, time.UTC)

	window := DaysWindow(ref, 30)
	if !window.Start.Equal(time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("window start = %v", window.Start)
	}
	if !window.End.Equal(ref) {
		t.Fatalf("window end = %v", window.End)
	}

	fallback := DaysWindow(ref, 0)
	if !fallback.Start.Equal(ref.AddDate(0, 0, -30)) {
		t.Fatalf("zero days should fall back to 30")
	}
}
