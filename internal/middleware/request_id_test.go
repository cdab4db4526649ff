package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDEchoesIncoming(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
	}))

	r := httptest.NewRequest("GET", "/health", nil)
	r.Header.Set("X-Request-Id", "upstream-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if seen != "upstream-123" {
		t.Fatalf("handler saw %q, want upstream id", seen)
	}
	if got := w.Header().Get("X-Request-Id"); got != "upstream-123" {
		t.Fatalf("response header = %q, want upstream id", got)
	}
}

func TestRequestIDAcceptsCorrelationHeader(t *testing.T) {
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("GET", "/health", nil)
	r.Header.Set("X-Correlation-Id", "corr-9")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-Id"); got != "corr-9" {
		t.Fatalf("response header = %q, want correlation id", got)
	}
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	got := w.Header().Get("X-Request-Id")
	if len(got) != 32 {
		t.Fatalf("generated id = %q, want 32 hex chars", got)
	}

	// A second request gets its own id.
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, httptest.NewRequest("GET", "/health", nil))
	if w2.Header().Get("X-Request-Id") == got {
		t.Fatalf("ids must be unique per request")
	}
}
