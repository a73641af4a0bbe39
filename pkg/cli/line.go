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

	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/template"
)

func lineCmd() *cli.Command {
	return &cli.Command{
		Name:  "line",
		Usage: "Compose text lines from drawn records",
		Description: `Draw a record and render a template against it. Tokens naming a field
are replaced by its value, runs of # become random digits, anything else
is kept as is:

  shampug -f pugs.yaml line -c pugs --template "[name] weighs [weight] kg, tag ###"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "template",
				Aliases:  []string{"l"},
				Usage:    "line template",
				Required: true,
			},
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
			tpl := cmd.String("template")

			pug, release, err := newShamPug(ctx, cmd)
			if err != nil {
				return err
			}
			defer release()

			parsed := template.Parse(tpl)
			lines := make([]string, 0, count)
			for i := 0; i < count; i++ {
				line, err := pug.RenderLine(category, parsed)
				if err != nil {
					return fmt.Errorf("failed to compose line: %w", err)
				}
				lines = append(lines, line)
			}

			return writeResult(ctx, cmd, fixture.NewLineResult(tpl, version, lines))
		},
	}
}
