package handlers

import (
	"testing"

	"araucarias-admin-service/internal/store"
)

func TestParsePrefixedOrderID(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		channel store.Channel
		id      int64
		wantErr bool
	}{
		{name: "quiosco", value: "Q-12", channel: store.ChannelQuiosco, id: 12},
		{name: "delivery", value: "D-34", channel: store.ChannelDelivery, id: 34},
		{name: "surrounding spaces", value: "  Q-7  ", channel: store.ChannelQuiosco, id: 7},
		{name: "missing prefix", value: "12", wantErr: true},
		{name: "unknown prefix", value: "X-12", wantErr: true},
		{name: "lowercase prefix", value: "q-12", wantErr: true},
		{name: "non numeric id", value: "Q-abc", wantErr: true},
		{name: "zero id", value: "Q-0", wantErr: true},
		{name: "negative id", value: "D--4", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			channel, id, err := parsePrefixedOrderID(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if channel != tc.channel || id != tc.id {
				t.Fatalf("got %s/%d, want %s/%d", channel, id, tc.channel, tc.id)
			}
		})
	}
}

func TestParseIntWithBounds(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		fallback int
		min      int
		max      int
		expected int
	}{
		{name: "empty falls back", value: "", fallback: 30, min: 1, max: 365, expected: 30},
		{name: "garbage falls back", value: "abc", fallback: 30, min: 1, max: 365, expected: 30},
		{name: "in range", value: "90", fallback: 30, min: 1, max: 365, expected: 90},
		{name: "clamped low", value: "0", fallback: 30, min: 1, max: 365, expected: 1},
		{name: "clamped high", value: "1000", fallback: 30, min: 1, max: 365, expected: 365},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseIntWithBounds(tc.value, tc.fallback, tc.min, tc.max); got != tc.expected {
				t.Fatalf("got %d, want %d", got, tc.expected)
			}
		})
	}
}
