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
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/shampug/pkg/address"
	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/record"
)

// builtinTypes maps the --type flag to the category of a built-in entry type.
var builtinTypes = map[string]string{
	"address": address.Category,
}

func categoryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "category to draw from",
	}
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "type",
		Usage: fmt.Sprintf("built-in entry type to draw instead of a category (supported values: %v)", supportedTypes()),
	}
}

func supportedTypes() []string {
	types := make([]string, 0, len(builtinTypes))
	for t := range builtinTypes {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

func drawCmd() *cli.Command {
	return &cli.Command{
		Name:  "draw",
		Usage: "Draw random records from a category",
		Description: `Draw records uniformly at random from the fixtures loaded with --fixtures.
With the same --seed and the same fixture files the draws are identical.`,
		Flags: []cli.Flag{
			categoryFlag(),
			typeFlag(),
			countFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category, err := categoryFromCmd(cmd)
			if err != nil {
				return err
			}
			count, err := countFromCmd(cmd)
			if err != nil {
				return err
			}

			pug, release, err := newShamPug(ctx, cmd)
			if err != nil {
				return err
			}
			defer release()

			entries := make([]record.Entry, 0, count)
			for i := 0; i < count; i++ {
				e, err := pug.Get(category)
				if err != nil {
					return fmt.Errorf("failed to draw from %q: %w", category, err)
				}
				entries = append(entries, e)
			}

			return writeResult(ctx, cmd, fixture.NewDrawResult(category, version, entries))
		},
	}
}

// categoryFromCmd resolves exactly one of --category and --type.
func categoryFromCmd(cmd *cli.Command) (string, error) {
	category, typ := cmd.String("category"), cmd.String("type")
	switch {
	case category != "" && typ != "":
		return "", fmt.Errorf("--category and --type are mutually exclusive")
	case category != "":
		return category, nil
	case typ != "":
		c, ok := builtinTypes[typ]
		if !ok {
			return "", fmt.Errorf("type: %q, supported values: %v", typ, supportedTypes())
		}
		return c, nil
	default:
		return "", fmt.Errorf("--category or --type is required")
	}
}

func countFromCmd(cmd *cli.Command) (int, error) {
	n := cmd.Int("count")
	if n < 1 {
		return 0, fmt.Errorf("count must be positive, got %d", n)
	}
	return n, nil
}
