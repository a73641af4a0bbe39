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
	"net/http"

	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/random"
	"github.com/NVIDIA/shampug/pkg/record"
	"github.com/NVIDIA/shampug/pkg/serializer"
	"github.com/NVIDIA/shampug/pkg/server"
	"github.com/NVIDIA/shampug/pkg/shampug"
	"github.com/NVIDIA/shampug/pkg/template"
)

// Handler serves draws from one ShamPug instance.
type Handler struct {
	pug     *shampug.ShamPug
	version string
}

// NewHandler returns a Handler drawing from pug. version is stamped into
// every result header.
func NewHandler(pug *shampug.ShamPug, version string) *Handler {
	return &Handler{pug: pug, version: version}
}

// Routes returns the application routes served by h.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/records":  h.HandleRecords,
		"/v1/lines":    h.HandleLines,
		"/v1/patterns": h.HandlePatterns,
	}
}

// HandleRecords draws count records from a category and returns a
// DrawResult.
func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DrawHandlerTimeout)
	defer cancel()

	category, err := parseCategory(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid record request", nil)
		return
	}
	count, err := parseCount(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid record request", nil)
		return
	}

	entries := make([]record.Entry, 0, count)
	err = repeat(ctx, count, func() error {
		e, err := h.pug.Get(category)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to draw records", nil)
		return
	}

	slog.Debug("records drawn", "category", category, "count", count)
	respond(w, fixture.NewDrawResult(category, h.version, entries))
}

// HandleLines renders a template against count drawn records.
func (h *Handler) HandleLines(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DrawHandlerTimeout)
	defer cancel()

	tpl, err := requireParam(r, ParamTemplate)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid line request", nil)
		return
	}
	category, err := parseCategory(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid line request", nil)
		return
	}
	count, err := parseCount(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid line request", nil)
		return
	}

	parsed := template.Parse(tpl)
	lines := make([]string, 0, count)
	err = repeat(ctx, count, func() error {
		line, err := h.pug.RenderLine(category, parsed)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to render lines", nil)
		return
	}

	respond(w, fixture.NewLineResult(tpl, h.version, lines))
}

// HandlePatterns returns count strings matching a regular expression.
func (h *Handler) HandlePatterns(w http.ResponseWriter, r *http.Request) {
	if !server.AllowGet(w, r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DrawHandlerTimeout)
	defer cancel()

	pattern, err := requireParam(r, ParamPattern)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pattern request", nil)
		return
	}
	opts := random.DefaultPatternOptions()
	if opts.Limit, err = parseLimit(r); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pattern request", nil)
		return
	}
	if opts.CaseSensitive, err = parseCaseSensitive(r); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pattern request", nil)
		return
	}
	count, err := parseCount(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid pattern request", nil)
		return
	}

	values := make([]string, 0, count)
	err = repeat(ctx, count, func() error {
		s, err := h.pug.PatternWith(pattern, opts)
		if err != nil {
			return err
		}
		values = append(values, s)
		return nil
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to expand pattern", nil)
		return
	}

	respond(w, fixture.NewPatternResult(pattern, h.version, values))
}

// repeat calls fn n times, stopping early when ctx is done.
func repeat(ctx context.Context, n int, fn func() error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeUnavailable, "request deadline exceeded", err)
		}
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func respond(w http.ResponseWriter, v any) {
	// every response is a fresh draw
	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, v)
}
