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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/volatiletech/null/v8"

	"github.com/abhi-shete/delicious-cake/pkg/cake"
)

func labelCmd() *cli.Command {
	return &cli.Command{
		Name:      "label",
		Usage:     "Resolve stored cake type codes to display labels",
		ArgsUsage: "<code>...",
		Description: `Print one "code<TAB>label" line per argument.

Codes outside the declared cake types, NULL, and non-integer values
resolve to Unknown.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return errors.New("at least one cake type code is required")
			}

			w := cmd.Root().Writer
			for _, arg := range args {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", arg, cake.CakeTypeLabel(parseCode(arg))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseCode reads a stored code argument. Anything that is not an integer
// is treated as NULL.
func parseCode(s string) null.Int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(n)
}
