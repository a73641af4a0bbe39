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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/logging"
	"github.com/NVIDIA/shampug/pkg/registry"
	"github.com/NVIDIA/shampug/pkg/serializer"
	"github.com/NVIDIA/shampug/pkg/shampug"
)

const (
	name           = "shampug"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// outputFlag, formatFlag and countFlag are shared by several commands and
// return a new flag on every call.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func countFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Value:   1,
		Usage:   "number of values to generate",
	}
}

// Execute runs the CLI and exits non-zero on failure. This is called by
// main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Reproducible random test fixtures",
		Version:               version,
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`shampug draws random records, composed lines and regex expansions
from fixture files.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "log level (debug, info, warn, error)",
			},
			&cli.Int64Flag{
				Name:    "seed",
				Sources: cli.EnvVars("SHAMPUG_SEED"),
				Usage:   "seed for reproducible draws (default: unseeded)",
			},
			&cli.StringSliceFlag{
				Name:    "fixtures",
				Aliases: []string{"f"},
				Sources: cli.EnvVars("SHAMPUG_FIXTURES"),
				Usage:   "fixture file path or HTTP/HTTPS URL, can be repeated",
			},
			&cli.StringFlag{
				Name:  "strategy",
				Value: registry.NewInstance.String(),
				Usage: fmt.Sprintf("registry strategy (supported values: %v)", registry.Strategies()),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			drawCmd(),
			lineCmd(),
			patternCmd(),
			fixturesCmd(),
			serveCmd(),
		},
	}
}

// newShamPug builds an instance from the root flags and loads every
// fixture file. The returned release func must be called when done.
func newShamPug(ctx context.Context, cmd *cli.Command) (*shampug.ShamPug, func(), error) {
	strategy, err := registry.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid strategy: %w", err)
	}

	release := func() {}
	b := shampug.Setup().WithRegistryStrategy(strategy)
	if strategy == registry.PerContext {
		ctx, release = registry.WithScope(ctx)
		b = b.WithContext(ctx)
	}
	if cmd.IsSet("seed") {
		b = b.UsingSeed(cmd.Int64("seed"))
	}

	pug, err := b.Create()
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to create generator: %w", err)
	}

	paths := cmd.StringSlice("fixtures")
	docs := make([]*fixture.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := fixture.LoadFile(ctx, p)
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("failed to load fixtures from %q: %w", p, err)
		}
		docs = append(docs, doc)
	}

	n, err := fixture.Apply(pug, docs...)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to register fixtures: %w", err)
	}
	slog.Debug("fixtures loaded", "files", len(docs), "records", n)

	return pug, release, nil
}

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// writeResult serializes v to the output flag destination.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
