package utils

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func NumericToFloat64(value pgtype.Numeric) float64 {
	if !value.Valid {
		return 0
	}
	f, err := value.Float64Value()
	if err == nil {
		return f.Float64
	}
	// fallback to string parse
	text, err := value.MarshalJSON()
	if err != nil {
		return 0
	}
	var out float64
	if _, err := fmt.Sscan(string(text), &out); err != nil {
		return 0
	}
	return out
}

func TextOrDefault(value pgtype.Text, fallback string) string {
	if value.Valid && value.String != "" {
		return value.String
	}
	return fallback
}

func TimestamptzPtr(value pgtype.Timestamptz) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

// EpochMillis converts the delivery channel's integer placement timestamp
// into a calendar time.
func EpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
