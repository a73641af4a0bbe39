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

	"github.com/NVIDIA/shampug/pkg/api"
	"github.com/NVIDIA/shampug/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve draws over HTTP",
		Description: `Start the HTTP API over the loaded fixtures. The server shuts down
gracefully on SIGINT or SIGTERM.

  shampug --seed 1000 -f pugs.yaml serve --port 8080
  curl "localhost:8080/v1/records?category=pugs&count=3"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Sources: cli.EnvVars("PORT"),
				Usage:   "listen port",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pug, release, err := newShamPug(ctx, cmd)
			if err != nil {
				return err
			}
			defer release()

			return api.Serve(ctx, pug, server.WithAddress(cmd.String("address"), cmd.Int("port")))
		},
	}
}
