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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/shampug/pkg/fixture"
)

func fixturesCmd() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Validate and merge fixture files",
		Description: `Load every file given with --fixtures and write the merged registry as a
single FixtureSet document. Duplicate records are dropped. Files in the bare
category map form are converted to the versioned format.

  shampug -f pugs.yaml -f https://example.com/towns.json fixtures -o merged.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if len(cmd.StringSlice("fixtures")) == 0 {
				return fmt.Errorf("at least one --fixtures file is required")
			}

			pug, release, err := newShamPug(ctx, cmd)
			if err != nil {
				return err
			}
			defer release()

			doc, err := fixture.Snapshot(pug.Registry())
			if err != nil {
				return fmt.Errorf("failed to snapshot fixtures: %w", err)
			}
			doc.Init(doc.Kind, version)
			slog.Info("fixtures merged", "summary", doc.String())

			return writeResult(ctx, cmd, doc)
		},
	}
}
