// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/config"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/middleware"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, func(_ *Dependencies, c *ChiMiddlewareConfig) {
		c.RateLimitDisabled = false
		c.RateLimitRequests = 2
		c.RateLimitWindow = time.Minute
	})

	for i := 0; i < 2; i++ {
		if rec := s.do(t, http.MethodGet, "/api/v1/movies/trending", "", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := s.do(t, http.MethodGet, "/api/v1/movies/trending", "", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != "RATE_LIMITED" {
		t.Errorf("error = %+v, want RATE_LIMITED", env.Error)
	}

	// Health checks are outside the limited group.
	if rec := s.do(t, http.MethodGet, "/api/v1/health/live", "", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d while limited, want 200", rec.Code)
	}
}

func TestRouterResponseHeaders(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/v1/movies/trending", "", "")

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("ETag"); !strings.HasPrefix(got, `"`) {
		t.Errorf("ETag = %q, want a quoted validator", got)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response has no request id header")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, func(_ *Dependencies, c *ChiMiddlewareConfig) {
		cors := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{CORSOrigins: []string{"https://movies.example"}})
		*c = *cors
		c.RateLimitDisabled = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/movies/550/ratings", nil)
	req.Header.Set("Origin", "https://movies.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://movies.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterWebSocketAndMetrics(t *testing.T) {
	t.Parallel()

	without := newTestServer(t)
	if rec := without.do(t, http.MethodGet, "/api/v1/ws", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("ws without handler status = %d, want 404", rec.Code)
	}

	called := false
	with := newTestServer(t, func(d *Dependencies, _ *ChiMiddlewareConfig) {
		d.WebSocket = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusSwitchingProtocols)
		})
	})
	with.do(t, http.MethodGet, "/api/v1/ws", "", "")
	if !called {
		t.Error("websocket handler was not routed")
	}

	rec := with.do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("metrics output misses default collectors")
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sec  *config.SecurityConfig
		want func(*ChiMiddlewareConfig)
	}{
		{"nil keeps defaults", nil, func(*ChiMiddlewareConfig) {}},
		{"zero values keep defaults", &config.SecurityConfig{}, func(*ChiMiddlewareConfig) {}},
		{
			"overrides",
			&config.SecurityConfig{
				CORSOrigins:       []string{"https://a.example"},
				RateLimitReqs:     10,
				RateLimitWindow:   time.Second,
				RateLimitDisabled: true,
			},
			func(c *ChiMiddlewareConfig) {
				c.CORSAllowedOrigins = []string{"https://a.example"}
				c.RateLimitRequests = 10
				c.RateLimitWindow = time.Second
				c.RateLimitDisabled = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			want := DefaultChiMiddlewareConfig()
			tt.want(want)
			got := ChiMiddlewareConfigFromSecurity(tt.sec)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
