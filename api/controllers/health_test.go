package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailyneed/storefront-backend/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev", Port: "8080"}}
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthReady(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(testConfig(), nil, stubPinger{}, stubPinger{})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("redis down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(testConfig(), nil, stubPinger{}, stubPinger{err: errors.New("connection refused")})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})

	t.Run("both down reports dependency failure once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(testConfig(), nil, stubPinger{err: errors.New("db down")}, stubPinger{err: errors.New("redis down")})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
