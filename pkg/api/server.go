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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/abhi-shete/delicious-cake/pkg/cake"
	"github.com/abhi-shete/delicious-cake/pkg/defaults"
	"github.com/abhi-shete/delicious-cake/pkg/logging"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
	"github.com/abhi-shete/delicious-cake/pkg/server"
)

const (
	name           = "caked"
	versionDefault = "dev"

	// EnvCakeFixture names the fixture path, URL, or cm://namespace/name
	// ConfigMap; empty serves the embedded sample.
	EnvCakeFixture = "CAKE_FIXTURE"
	// EnvBaseURL makes resource URIs absolute when set.
	EnvBaseURL = "BASE_URL"
	// EnvCacheTTLSeconds overrides the Cache-Control max-age; 0 sends no-store.
	EnvCacheTTLSeconds = "CAKE_CACHE_TTL_SECONDS"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/abhi-shete/delicious-cake/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the cake catalog, sets up routes, and handles
// graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := newServer(ctx, clockwork.NewRealClock(), os.Getenv(EnvCakeFixture), os.Getenv(EnvBaseURL),
		handlerOptionsFromEnv())
	if err != nil {
		slog.Error("server setup failed", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// handlerOptionsFromEnv reads handler overrides; malformed values are ignored.
func handlerOptionsFromEnv() []cake.HandlerOption {
	var opts []cake.HandlerOption
	if v := os.Getenv(EnvCacheTTLSeconds); v != "" {
		var seconds int
		if _, err := fmt.Sscanf(v, "%d", &seconds); err == nil && seconds >= 0 {
			opts = append(opts, cake.WithCacheTTL(time.Duration(seconds)*time.Second))
		} else {
			slog.Warn("ignoring invalid cache TTL", "env", EnvCacheTTLSeconds, "value", v)
		}
	}
	return opts
}

func newServer(ctx context.Context, clock clockwork.Clock, fixture, baseURL string,
	handlerOpts []cake.HandlerOption, fixtureOpts ...serializer.Option) (*server.Server, error) {
	loadCtx, cancel := context.WithTimeout(ctx, defaults.FixtureLoadTimeout)
	defer cancel()

	catalog, err := cake.LoadFixture(loadCtx, fixture, fixtureOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load cake catalog: %w", err)
	}

	h := cake.NewHandler(catalog, cake.NewRegistry(baseURL), handlerOpts...)

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithClock(clock),
		server.WithHandler(h.Handlers()),
	), nil
}
