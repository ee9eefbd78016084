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

package cake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/volatiletech/null/v8"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/server"
)

type brokenCatalog struct{}

func (brokenCatalog) List(context.Context) ([]Cake, error) {
	return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "catalog offline", errors.New("disk"))
}

func (brokenCatalog) Get(context.Context, int64) (*Cake, error) {
	return nil, cnserrors.New(cnserrors.ErrCodeUnavailable, "catalog offline")
}

func newTestRouter(t *testing.T, c Catalog, opts ...HandlerOption) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	for pattern, h := range NewHandler(c, NewRegistry(""), opts...).Handlers() {
		r.HandleFunc(pattern, h)
	}
	return r
}

func testCatalog(t *testing.T) *MemoryCatalog {
	t.Helper()

	c, err := NewMemoryCatalog(
		Cake{ID: 1, CakeType: null.IntFrom(1), Message: "Happy birthday!", Point: &Point{X: 1, Y: 2}},
		Cake{ID: 2, CakeType: null.IntFrom(99), Message: "Mystery"},
	)
	if err != nil {
		t.Fatalf("NewMemoryCatalog() error = %v", err)
	}
	return c
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHandleList(t *testing.T) {
	h := newTestRouter(t, testCatalog(t))

	w := do(h, http.MethodGet, "/v1/cakes")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", cc)
	}

	var got []CakeListView
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}

	want := []CakeListView{
		{ResourceID: 1, CakeType: "Chocolate", ResourceURI: "/v1/cakes/1"},
		{ResourceID: 2, CakeType: "Unknown", ResourceURI: "/v1/cakes/2"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d cakes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cake[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHandleDetail(t *testing.T) {
	h := newTestRouter(t, testCatalog(t))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"found", "/v1/cakes/1", http.StatusOK, ""},
		{"not found", "/v1/cakes/404", http.StatusNotFound, "NOT_FOUND"},
		{"non integer", "/v1/cakes/abc", http.StatusBadRequest, "INVALID_REQUEST"},
		{"zero", "/v1/cakes/0", http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, http.MethodGet, tt.target)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantCode == "" {
				var got CakeDetailView
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("invalid body: %v", err)
				}
				if got.Message != "Happy birthday!" || got.CakeType != "Chocolate" || got.ResourceURI != "/v1/cakes/1" {
					t.Errorf("unexpected detail %+v", got)
				}
				return
			}

			var resp server.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error body: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.Retryable {
				t.Error("client errors should not be retryable")
			}
		})
	}
}

func TestHandlePoints(t *testing.T) {
	h := newTestRouter(t, testCatalog(t))

	w := do(h, http.MethodGet, "/v1/cakes/points")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d cakes, want 2", len(got))
	}

	if got[0]["point"] == nil {
		t.Error("expected point on first cake")
	}
	if got[1]["point"] != nil {
		t.Errorf("expected null point, got %v", got[1]["point"])
	}
	if pts, ok := got[1]["points"].([]any); !ok || len(pts) != 0 {
		t.Errorf("expected empty points array, got %#v", got[1]["points"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, testCatalog(t))

	for _, target := range []string{"/v1/cakes", "/v1/cakes/1", "/v1/cakes/points"} {
		w := do(h, http.MethodPost, target)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s status = %d, want 405", target, w.Code)
		}
		if allow := w.Header().Get("Allow"); allow != http.MethodGet {
			t.Errorf("POST %s Allow = %q, want GET", target, allow)
		}
	}
}

func TestCatalogFailure(t *testing.T) {
	h := newTestRouter(t, brokenCatalog{})

	for _, target := range []string{"/v1/cakes", "/v1/cakes/1", "/v1/cakes/points"} {
		w := do(h, http.MethodGet, target)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %d, want 503", target, w.Code)
		}
	}
}

func TestCacheDisabled(t *testing.T) {
	h := newTestRouter(t, testCatalog(t), WithCacheTTL(0), WithTimeout(time.Second))

	w := do(h, http.MethodGet, "/v1/cakes")
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestHandlersCoverRoutes(t *testing.T) {
	handlers := NewHandler(testCatalog(t), NewRegistry("")).Handlers()

	for _, r := range Routes() {
		if handlers[r.Pattern] == nil {
			t.Errorf("no handler for route %s (%s)", r.Name, r.Pattern)
		}
	}
}
