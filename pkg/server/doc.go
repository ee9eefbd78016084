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

// Package server provides the reusable HTTP server shell used by caked.
//
// Application handlers are supplied as a map of chi route patterns and are
// wrapped by a middleware chain, outermost first:
//
//   - Prometheus RED metrics, labelled by route pattern
//   - API version negotiation (X-API-Version)
//   - Request ID propagation (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// System endpoints bypass the chain:
//
//   - GET /health  - liveness
//   - GET /ready   - readiness; 503 until Start and after Shutdown begins
//   - GET /metrics - Prometheus exposition
//
// A JSON index of the configured routes is served on "/" unless a handler
// for "/" is supplied.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("caked"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/cakes/{id}": h.HandleDetail,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both render
// an ErrorResponse; WriteErrorFromErr derives status and retryability from
// the code of a pkg/errors StructuredError.
//
// # Configuration
//
// New reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment; options
// such as WithName and WithHandler override the rest.
// Timeouts default to the values in pkg/defaults.
package server
