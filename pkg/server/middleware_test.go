// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

func newTestServer(limiter *rate.Limiter) (*Server, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return &Server{
		config:      parseConfig(),
		rateLimiter: limiter,
		clock:       clock,
	}, clock
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware_GeneratesNewID(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cakes", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %q", capturedRequestID)
	}
	if rec.Header().Get("X-Request-Id") != capturedRequestID {
		t.Errorf("expected X-Request-Id header to be %s, got %s",
			capturedRequestID, rec.Header().Get("X-Request-Id"))
	}
}

func TestRequestIDMiddleware_UsesProvidedID(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	providedID := uuid.New().String()
	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cakes", nil)
	req.Header.Set("X-Request-Id", providedID)
	handler(httptest.NewRecorder(), req)

	if capturedRequestID != providedID {
		t.Errorf("expected request ID %s, got %s", providedID, capturedRequestID)
	}
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	var capturedRequestID string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cakes", nil)
	req.Header.Set("X-Request-Id", "invalid-not-a-uuid")
	handler(httptest.NewRecorder(), req)

	if _, err := uuid.Parse(capturedRequestID); err != nil {
		t.Errorf("expected valid UUID, got: %s", capturedRequestID)
	}
}

func TestVersionMiddleware(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	var capturedVersion string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		capturedVersion = APIVersionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/cakes", nil)
	req.Header.Set("Accept", "application/vnd.delicious.cake.v1+json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Header().Get("X-API-Version") != "v1" {
		t.Errorf("X-API-Version = %q, want v1", rec.Header().Get("X-API-Version"))
	}
	if capturedVersion != "v1" {
		t.Errorf("context version = %q, want v1", capturedVersion)
	}
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(0, 0))

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

	if called {
		t.Error("handler should not be called when rate limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header when rate limited")
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Code != "RATE_LIMIT_EXCEEDED" || !resp.Retryable {
		t.Errorf("unexpected error response %+v", resp)
	}
}

func TestRateLimitMiddleware_RefillsWithClock(t *testing.T) {
	s, clock := newTestServer(rate.NewLimiter(1, 1))
	handler := s.rateLimitMiddleware(okHandler)

	codes := func() int {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))
		return rec.Code
	}

	if got := codes(); got != http.StatusOK {
		t.Fatalf("first request = %d, want 200", got)
	}
	if got := codes(); got != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", got)
	}

	clock.Advance(time.Second)
	if got := codes(); got != http.StatusOK {
		t.Fatalf("request after refill = %d, want 200", got)
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	t.Run("recovers panic", func(t *testing.T) {
		handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
	})

	t.Run("passes normal requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestLoggingMiddleware_TracksStatusCode(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			handler := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

			if rec.Code != status {
				t.Errorf("expected status %d, got %d", status, rec.Code)
			}
		})
	}
}

func TestMiddlewareChain_SetsAllHeaders(t *testing.T) {
	s, _ := newTestServer(rate.NewLimiter(100, 200))

	var hasRequestID bool
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = RequestIDFromContext(r.Context()) != ""
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/cakes", nil))

	if !hasRequestID {
		t.Error("expected request ID in context")
	}

	expectedHeaders := []string{
		"X-Request-Id",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"X-API-Version",
	}

	for _, header := range expectedHeaders {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected header %s to be set", header)
		}
	}
}
