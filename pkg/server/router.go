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
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
)

// RootResponse is served on "/" unless a handler for "/" is configured.
type RootResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.clockMiddleware)

	// System endpoints (no rate limiting)
	r.HandleFunc("/health", s.handleHealth)
	r.HandleFunc("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	// Application endpoints with middleware
	for _, pattern := range s.patterns() {
		r.HandleFunc(pattern, s.withMiddleware(s.config.Handlers[pattern]))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"Resource not found", false, map[string]any{"path": req.URL.Path})
	})

	return r
}

// patterns returns the configured handler patterns in a stable order.
func (s *Server) patterns() []string {
	out := make([]string, 0, len(s.config.Handlers))
	for p := range s.config.Handlers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// defaultRootHandler lists the configured routes.
func (s *Server) defaultRootHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	routes := make([]string, 0, len(s.config.Handlers)+3)
	for _, p := range s.patterns() {
		if p != "/" {
			routes = append(routes, p)
		}
	}
	routes = append(routes, "/health", "/ready", "/metrics")

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: s.clock.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	})
}
