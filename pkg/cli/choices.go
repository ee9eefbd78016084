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

	"github.com/urfave/cli/v3"

	"github.com/abhi-shete/delicious-cake/pkg/cake"
)

// choiceRow is the rendered form of a declared cake type.
type choiceRow struct {
	Code  int    `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

func choicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "choices",
		Usage: "List the declared cake types",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			choices := cake.CakeTypeChoices()
			rows := make([]choiceRow, 0, len(choices))
			for _, c := range choices {
				rows = append(rows, choiceRow{Code: int(c.Code), Label: c.Label})
			}

			return writeOutput(ctx, cmd, outFormat, rows)
		},
	}
}
