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

// Package defaults provides centralized configuration constants for the cake
// service and CLI.
//
// This package defines timeout values and cache durations used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Fixture timeouts: For loading cake fixtures from disk or over HTTP
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/abhi-shete/delicious-cake/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.CakeHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 10s, catalog reads are in-memory
//   - Fixture loading: 30s, may download over HTTP
//   - Server shutdown: 30s for graceful shutdown
package defaults
