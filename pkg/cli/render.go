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
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/urfave/cli/v3"

	"github.com/abhi-shete/delicious-cake/pkg/cake"
	cnserrors "github.com/abhi-shete/delicious-cake/pkg/errors"
	"github.com/abhi-shete/delicious-cake/pkg/routes"
	"github.com/abhi-shete/delicious-cake/pkg/serializer"
)

// Supported render views.
const (
	viewList   = "list"
	viewDetail = "detail"
	viewPoints = "points"
)

var renderViews = []string{viewList, viewDetail, viewPoints}

func renderCmd(clock clockwork.Clock) *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render cake projections from a fixture",
		Description: `Render the list, detail, or point projections of the cakes in a fixture.

The fixture is a CakeFixture document in JSON or YAML, read from a local path,
an HTTP/HTTPS URL, or a ConfigMap (cm://namespace/name). Without --fixture the
built-in sample catalog is used.

The result is a CakeRendering document. --output accepts a file path or a
ConfigMap URI.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fixture",
				Aliases: []string{"f"},
				Usage:   "Path/URI of the cake fixture (default: built-in sample)",
				Sources: cli.EnvVars("CAKE_FIXTURE"),
			},
			&cli.StringFlag{
				Name:  "view",
				Value: viewList,
				Usage: fmt.Sprintf("Projection to render (supported values: %s)", strings.Join(renderViews, ", ")),
			},
			&cli.Int64Flag{
				Name:  "id",
				Usage: "Render only the cake with this id (must be positive)",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Prefix for resource_uri values (default: paths only)",
				Sources: cli.EnvVars("BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "kubeconfig",
				Aliases: []string{"k"},
				Usage:   "Path to kubeconfig for cm:// fixtures and outputs (default: KUBECONFIG, ~/.kube/config, in-cluster)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			view := strings.ToLower(strings.TrimSpace(cmd.String("view")))
			if !isRenderView(view) {
				return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
					fmt.Sprintf("invalid --view %q (supported values: %s)", view, strings.Join(renderViews, ", ")))
			}

			var kubeOpts []serializer.Option
			if kc := cmd.String("kubeconfig"); kc != "" {
				kubeOpts = append(kubeOpts, serializer.WithKubeconfig(kc))
			}

			fixture := cmd.String("fixture")
			catalog, err := cake.LoadFixture(ctx, fixture, kubeOpts...)
			if err != nil {
				return fmt.Errorf("failed to load fixture %q: %w", fixture, err)
			}

			var cakes []cake.Cake
			if cmd.IsSet("id") {
				cakes, err = selectCake(ctx, catalog, cmd.Int64("id"))
			} else {
				cakes, err = catalog.List(ctx)
			}
			if err != nil {
				return err
			}

			doc, err := project(clock, view, cakes, cake.NewRegistry(cmd.String("base-url")))
			if err != nil {
				return fmt.Errorf("failed to render %s view: %w", view, err)
			}

			return writeOutput(ctx, cmd, outFormat, doc, kubeOpts...)
		},
	}
}

func isRenderView(view string) bool {
	for _, v := range renderViews {
		if v == view {
			return true
		}
	}
	return false
}

// selectCake returns the single cake with id. Ids start at 1.
func selectCake(ctx context.Context, catalog cake.Catalog, id int64) ([]cake.Cake, error) {
	if id < 1 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid --id %d: must be positive", id))
	}
	c, err := catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return []cake.Cake{*c}, nil
}

// project renders cakes in view and wraps them in a CakeRendering document.
func project(clock clockwork.Clock, view string, cakes []cake.Cake, rev routes.Reverser) (any, error) {
	switch view {
	case viewDetail:
		views, err := cake.NewCakeDetailViews(cakes, rev)
		if err != nil {
			return nil, err
		}
		return cake.NewRendering(clock, version, view, views), nil
	case viewPoints:
		views, err := cake.NewCakePointListViews(cakes, rev)
		if err != nil {
			return nil, err
		}
		return cake.NewRendering(clock, version, view, views), nil
	default:
		views, err := cake.NewCakeListViews(cakes, rev)
		if err != nil {
			return nil, err
		}
		return cake.NewRendering(clock, version, view, views), nil
	}
}
