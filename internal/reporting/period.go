package reporting

import (
	"errors"
	"time"
)

// ErrInvalidPeriod rejects a malformed month/year override before any
// query is issued.
var ErrInvalidPeriod = errors.New("invalid reporting period")

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthYear is an explicit historical reporting period.
type MonthYear struct {
	Month time.Month
	Year  int
}

func (m MonthYear) Validate() error {
	if m.Month < time.January || m.Month > time.December {
		return ErrInvalidPeriod
	}
	if m.Year < 2000 || m.Year > 2100 {
		return ErrInvalidPeriod
	}
	return nil
}

// Periods carries the calendar-aligned windows anchored to a reference
// instant. When Override is set, Monthly covers that whole calendar month
// instead of month-start-to-now.
type Periods struct {
	Daily    TimeWindow
	Weekly   TimeWindow
	Monthly  TimeWindow
	Yearly   TimeWindow
	Override *MonthYear
}

// ResolvePeriods computes the window boundaries from the reference
// instant's local calendar. Weeks start on Monday (ISO): a Sunday
// reference counts as day 7 of the running week.
func ResolvePeriods(ref time.Time, override *MonthYear) (Periods, error) {
	loc := ref.Location()
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := midnight.AddDate(0, 0, -(weekday - 1))

	p := Periods{
		Daily:  TimeWindow{Start: midnight, End: ref, Label: "daily"},
		Weekly: TimeWindow{Start: weekStart, End: ref, Label: "weekly"},
		Yearly: TimeWindow{Start: time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc), End: ref, Label: "yearly"},
	}

	if override != nil {
		if err := override.Validate(); err != nil {
			return Periods{}, err
		}
		start := time.Date(override.Year, override.Month, 1, 0, 0, 0, 0, loc)
		p.Monthly = TimeWindow{Start: start, End: start.AddDate(0, 1, 0), Label: "monthly"}
		ov := *override
		p.Override = &ov
		return p, nil
	}

	p.Monthly = TimeWindow{
		Start: time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc),
		End:   ref,
		Label: "monthly",
	}
	return p, nil
}

// DaysWindow covers the last n calendar days up to the reference instant.
// Used by the chat assistant's business summary.
func DaysWindow(ref time.Time, n int) TimeWindow {
	if n <= 0 {
		n = 30
	}
	return TimeWindow{Start: ref.AddDate(0, 0, -n), End: ref, Label: "days"}
}
