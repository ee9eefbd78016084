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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/urfave/cli/v3"

	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/logging"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
)

const (
	name           = "cakectl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// outputFlag and formatFlag build fresh flags per command; flag values are
// stateful and must not be shared between command trees.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}
}

// Exit codes returned by Execute.
const (
	exitFailure      = 1
	exitInvalidInput = 2
	exitNotFound     = 3
)

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(clockwork.NewRealClock()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error code carried by err to a process exit status.
func exitCode(err error) int {
	code, ok := cnserrors.CodeOf(err)
	if !ok {
		return exitFailure
	}
	switch code {
	case cnserrors.ErrCodeInvalidRequest:
		return exitInvalidInput
	case cnserrors.ErrCodeNotFound:
		return exitNotFound
	default:
		return exitFailure
	}
}

// newRootCmd builds the command tree; clock stamps rendered documents.
func newRootCmd(clock clockwork.Clock) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Delicious Cake CLI",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Offline companion of the caked service.

render  - renders list, detail, or point projections of a cake fixture.
label   - resolves stored cake type codes to their display labels.
choices - lists the declared cake types.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			renderCmd(clock),
			labelCmd(),
			choicesCmd(),
		},
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return "", fmt.Errorf("invalid --format: %w", err)
	}
	return f, nil
}

// writeOutput serializes data to --output, a file or cm://namespace/name
// ConfigMap, or to the root command writer when no path is given.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, data any, opts ...serializer.Option) error {
	var w serializer.WriteCloser
	if path := cmd.String("output"); path != "" {
		var err error
		if w, err = serializer.NewOutputWriter(format, path, opts...); err != nil {
			return fmt.Errorf("invalid --output: %w", err)
		}
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, data)
}
