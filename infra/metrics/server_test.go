package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthz(t *testing.T) {
	m := New()
	healthy := true
	srv := NewServer(":0", m.Registry, func(context.Context) error {
		if !healthy {
			return errors.New("outbox closed")
		}
		return nil
	})

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	healthy = false
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := New()
	m.Commands.WithLabelValues("place_bet", "ok").Inc()
	srv := NewServer(":0", m.Registry, func(context.Context) error { return nil })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `bookie_commands_total{kind="place_bet",result="ok"} 1`) {
		t.Fatalf("metric missing from output:\n%s", body)
	}
}
