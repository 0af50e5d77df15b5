package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":true}`))
	})
	handler := Logger(zap.New(core))(next)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings?page=2", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["method"] != "POST" {
		t.Fatalf("expected method POST, got %v", fields["method"])
	}
	if fields["path"] != "/api/bookings" {
		t.Fatalf("expected path /api/bookings, got %v", fields["path"])
	}
	if fields["query"] != "page=2" {
		t.Fatalf("expected query page=2, got %v", fields["query"])
	}
	if fields["status"] != int64(http.StatusCreated) {
		t.Fatalf("expected status 201, got %v", fields["status"])
	}
	if fields["bytes"] != int64(len(`{"status":true}`)) {
		t.Fatalf("expected body length recorded, got %v", fields["bytes"])
	}
}

func TestLogger_DefaultsToOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	// Handler that never calls WriteHeader.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logger(zap.New(core))(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", got)
	}
}
