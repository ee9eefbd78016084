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

// Package api wires the cake handlers into the reusable pkg/server shell.
//
// Serve configures structured logging, loads the cake catalog, registers the
// cake routes and blocks until SIGINT or SIGTERM.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/cakes        - summary projection of every cake
//   - GET /v1/cakes/points - point projection of every cake
//   - GET /v1/cakes/{id}   - detail projection of one cake
//
// System endpoints:
//   - GET /health, GET /ready, GET /metrics
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: debug, info, warn or error
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget
//   - CAKE_FIXTURE: fixture path or http(s) URL; the embedded sample when empty
//   - BASE_URL: prefix for resource_uri, e.g. https://cakes.example.com
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/abhi-shete/delicious-cake/pkg/api.version=1.0.0'"
package api
