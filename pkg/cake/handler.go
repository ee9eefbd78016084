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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhi-shete/delicious-cake/pkg/defaults"
	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/routes"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
	"github.com/abhi-shete/delicious-cake/pkg/server"
)

// Handler serves the cake projections over HTTP.
type Handler struct {
	catalog  Catalog
	reverser routes.Reverser
	cacheTTL time.Duration
	timeout  time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCacheTTL sets the max-age advertised in Cache-Control. Zero disables caching.
func WithCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.cacheTTL = ttl
	}
}

// WithTimeout bounds the catalog access of each request.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler returns a Handler reading from catalog and reversing resource
// URIs with rev.
func NewHandler(catalog Catalog, rev routes.Reverser, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:  catalog,
		reverser: rev,
		cacheTTL: defaults.CakeCacheTTL,
		timeout:  defaults.CakeHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handlers maps the route patterns of Routes to their handler functions.
func (h *Handler) Handlers() map[string]http.HandlerFunc {
	byName := map[string]http.HandlerFunc{
		RouteCakeList:   h.HandleList,
		RouteCakePoints: h.HandlePoints,
		RouteCakeDetail: h.HandleDetail,
	}

	out := make(map[string]http.HandlerFunc, len(byName))
	for _, r := range Routes() {
		out[r.Pattern] = byName[r.Name]
	}
	return out
}

// HandleList serves GET /v1/cakes.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cakes, err := h.catalog.List(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list cakes", nil)
		return
	}

	views, err := NewCakeListViews(cakes, h.reverser)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to project cakes", nil)
		return
	}
	observeProjections(viewList, views...)

	h.respond(w, views)
}

// HandleDetail serves GET /v1/cakes/{id}.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid cake id %q", raw), false, map[string]any{"id": raw})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	c, err := h.catalog.Get(ctx, id)
	if err != nil {
		if !cnserrors.IsCode(err, cnserrors.ErrCodeNotFound) {
			slog.Warn("cake lookup failed", "id", id, "error", err)
		}
		server.WriteErrorFromErr(w, r, err, "Failed to load cake", nil)
		return
	}

	view, err := NewCakeDetailView(c, h.reverser)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to project cake", nil)
		return
	}
	observeProjections(viewDetail, view.CakeListView)

	h.respond(w, view)
}

// HandlePoints serves GET /v1/cakes/points.
func (h *Handler) HandlePoints(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cakes, err := h.catalog.List(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list cakes", nil)
		return
	}

	views, err := NewCakePointListViews(cakes, h.reverser)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to project cakes", nil)
		return
	}

	bases := make([]CakeListView, len(views))
	for i, v := range views {
		bases[i] = v.CakeListView
	}
	observeProjections(viewPoints, bases...)

	h.respond(w, views)
}

func (h *Handler) respond(w http.ResponseWriter, body any) {
	if h.cacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheTTL.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	serializer.RespondJSON(w, http.StatusOK, body)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	slog.Debug("rejecting method", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
