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

package random

import (
	"log/slog"
	mathrand "math/rand"
	"math/rand/v2"
	"regexp/syntax"

	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/errors"

	regen "github.com/zach-klippenstein/goregen"
)

// PatternOptions controls how a pattern is expanded.
type PatternOptions struct {
	// Limit caps unbounded quantifiers such as *, + and {n,}.
	Limit int
	// CaseSensitive disables case folding when true. With folding on, the
	// default compiler emits the canonical fold of each literal rune, so
	// "abc" always expands to "ABC". Character classes still vary.
	CaseSensitive bool
}

// DefaultPatternOptions returns the options used by Pattern.
func DefaultPatternOptions() PatternOptions {
	return PatternOptions{
		Limit:         defaults.RepetitionLimit,
		CaseSensitive: defaults.CaseSensitive,
	}
}

// PatternGenerator produces strings matching one compiled pattern.
type PatternGenerator interface {
	Generate() string
}

// PatternCompiler turns a pattern into a generator drawing from entropy.
// The generator is only invoked while the owning Source is locked, so it
// may hold on to entropy without synchronization.
type PatternCompiler interface {
	Compile(pattern string, opts PatternOptions, entropy mathrand.Source) (PatternGenerator, error)
}

// PatternCompilerFunc adapts a function to PatternCompiler.
type PatternCompilerFunc func(pattern string, opts PatternOptions, entropy mathrand.Source) (PatternGenerator, error)

// Compile implements PatternCompiler.
func (f PatternCompilerFunc) Compile(pattern string, opts PatternOptions, entropy mathrand.Source) (PatternGenerator, error) {
	return f(pattern, opts, entropy)
}

// DefaultPatternCompiler returns the regex inverter backed by goregen.
func DefaultPatternCompiler() PatternCompiler {
	return regenCompiler{}
}

type regenCompiler struct{}

func (regenCompiler) Compile(pattern string, opts PatternOptions, entropy mathrand.Source) (PatternGenerator, error) {
	flags := syntax.Perl
	if !opts.CaseSensitive {
		flags |= syntax.FoldCase
	}
	gen, err := regen.NewGenerator(pattern, &regen.GeneratorArgs{
		RngSource:               entropy,
		Flags:                   flags,
		MaxUnboundedRepeatCount: uint(opts.Limit),
	})
	if err != nil {
		return nil, err
	}
	return gen, nil
}

// compiledPattern is the single-entry cache held by a Source.
type compiledPattern struct {
	pattern   string
	opts      PatternOptions
	generator PatternGenerator
}

// legacySource exposes a v2 entropy stream through the math/rand Source
// interface expected by pattern compilers. Seed is ignored.
type legacySource struct {
	src rand.Source
}

func (l legacySource) Int63() int64 {
	return int64(l.src.Uint64() >> 1)
}

func (l legacySource) Seed(int64) {}

// Pattern returns a string matching pattern using the default options.
func (s *Source) Pattern(pattern string) (string, error) {
	return s.PatternWith(pattern, DefaultPatternOptions())
}

// PatternN returns a case-sensitive match of pattern with unbounded
// quantifiers capped at limit repetitions.
func (s *Source) PatternN(pattern string, limit int) (string, error) {
	return s.PatternWith(pattern, PatternOptions{Limit: limit, CaseSensitive: true})
}

// PatternWith returns a string matching pattern. The compiled pattern is
// reused for as long as pattern and opts stay the same.
func (s *Source) PatternWith(pattern string, opts PatternOptions) (string, error) {
	if opts.Limit <= 0 {
		return "", errors.NewWithContext(errors.ErrCodeInvalidBound,
			"repetition limit must be positive", map[string]any{"limit": opts.Limit})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pattern == nil || s.pattern.pattern != pattern || s.pattern.opts != opts {
		gen, err := s.compiler.Compile(pattern, opts, legacySource{src: s.entropy})
		if err != nil {
			patternCompilations.WithLabelValues(resultError).Inc()
			return "", errors.WrapWithContext(errors.ErrCodeInvalidPattern,
				"failed to compile pattern", err, map[string]any{
					"pattern":       pattern,
					"limit":         opts.Limit,
					"caseSensitive": opts.CaseSensitive,
				})
		}
		patternCompilations.WithLabelValues(resultOK).Inc()
		slog.Debug("compiled pattern", "pattern", pattern, "limit", opts.Limit)
		s.pattern = &compiledPattern{pattern: pattern, opts: opts, generator: gen}
	}

	return s.pattern.generator.Generate(), nil
}
