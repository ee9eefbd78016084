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
	"context"

	"github.com/jonboulle/clockwork"
)

type contextKey string

const (
	contextKeyRequestID  contextKey = "requestID"
	contextKeyAPIVersion contextKey = "apiVersion"
	contextKeyClock      contextKey = "clock"
)

// RequestIDFromContext returns the request id set by the middleware chain.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// APIVersionFromContext returns the negotiated API version, or DefaultAPIVersion.
func APIVersionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(contextKeyAPIVersion).(string); ok && v != "" {
		return v
	}
	return DefaultAPIVersion
}

func withClock(ctx context.Context, clock clockwork.Clock) context.Context {
	return context.WithValue(ctx, contextKeyClock, clock)
}

// clockFromContext returns the server clock, or the wall clock outside a server.
func clockFromContext(ctx context.Context) clockwork.Clock {
	if c, ok := ctx.Value(contextKeyClock).(clockwork.Clock); ok && c != nil {
		return c
	}
	return clockwork.NewRealClock()
}
