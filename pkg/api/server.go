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

package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/server"
	"github.com/NVIDIA/shampug/pkg/shampug"
)

const (
	name           = "shampug"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/shampug/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs the API server over pug and blocks until ctx is done or a
// termination signal arrives. opts are applied after the defaults.
func Serve(ctx context.Context, pug *shampug.ShamPug, opts ...server.Option) error {
	if pug == nil {
		return errors.New(errors.ErrCodeNullArgument, "shampug instance is required")
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(append([]server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(NewHandler(pug, version).Routes()),
	}, opts...)...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
