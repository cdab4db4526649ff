package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"araucarias-admin-service/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

func readPathString(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

func parseIntWithBounds(value string, fallback, min, max int) int {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	if parsed < min {
		return min
	}
	if parsed > max {
		return max
	}
	return parsed
}

var errBadOrderID = errors.New("malformed order id")

// parsePrefixedOrderID splits a channel-prefixed id ("Q-12", "D-34") into
// its channel and numeric part.
func parsePrefixedOrderID(value string) (store.Channel, int64, error) {
	value = strings.TrimSpace(value)
	var channel store.Channel
	switch {
	case strings.HasPrefix(value, "Q-"):
		channel = store.ChannelQuiosco
	case strings.HasPrefix(value, "D-"):
		channel = store.ChannelDelivery
	default:
		return "", 0, errBadOrderID
	}
	id, err := strconv.ParseInt(value[2:], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, errBadOrderID
	}
	return channel, id, nil
}
