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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/random"
)

func patternCmd() *cli.Command {
	return &cli.Command{
		Name:      "pattern",
		Usage:     "Generate strings matching a regular expression",
		ArgsUsage: "<regex>",
		Description: `Generate random strings matching a regular expression. Unbounded
quantifiers (*, +, {n,}) repeat at most --limit times:

  shampug --seed 42 pattern -n 3 "[A-Z]{2}-\d{4}"`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: defaults.RepetitionLimit,
				Usage: "maximum repetitions for unbounded quantifiers",
			},
			&cli.BoolFlag{
				Name:    "ignore-case",
				Aliases: []string{"i"},
				Usage:   "generate matches in mixed case",
			},
			countFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("usage: %s pattern [flags] <regex>", name)
			}
			pattern := cmd.Args().First()
			count, err := countFromCmd(cmd)
			if err != nil {
				return err
			}

			pug, release, err := newShamPug(ctx, cmd)
			if err != nil {
				return err
			}
			defer release()

			opts := random.PatternOptions{
				Limit:         cmd.Int("limit"),
				CaseSensitive: !cmd.Bool("ignore-case"),
			}
			values := make([]string, 0, count)
			for i := 0; i < count; i++ {
				s, err := pug.PatternWith(pattern, opts)
				if err != nil {
					return fmt.Errorf("failed to expand %q: %w", pattern, err)
				}
				values = append(values, s)
			}

			return writeResult(ctx, cmd, fixture.NewPatternResult(pattern, version, values))
		},
	}
}
