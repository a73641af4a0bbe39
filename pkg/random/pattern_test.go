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
	stderrors "errors"
	mathrand "math/rand"
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/shampug/pkg/errors"
)

type staticGenerator string

func (g staticGenerator) Generate() string { return string(g) }

// countingCompiler records every compilation it is asked to perform.
type countingCompiler struct {
	calls []string
	opts  []PatternOptions
}

func (c *countingCompiler) Compile(pattern string, opts PatternOptions, _ mathrand.Source) (PatternGenerator, error) {
	c.calls = append(c.calls, pattern)
	c.opts = append(c.opts, opts)
	return staticGenerator(pattern), nil
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		pattern string
		match   string
	}{
		{`[a-z]{5}`, `^[a-z]{5}$`},
		{`\d{3}-\d{2}`, `^[0-9]{3}-[0-9]{2}$`},
		{`(foo|bar)baz`, `^(foo|bar)baz$`},
		{`[A-F0-9]{8}`, `^[A-F0-9]{8}$`},
	}

	src := NewSeeded(1000)
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := regexp.MustCompile(tt.match)
			for i := 0; i < 20; i++ {
				got, err := src.Pattern(tt.pattern)
				require.NoError(t, err)
				require.Regexp(t, re, got)
			}
		})
	}
}

func TestPatternRepetitionLimit(t *testing.T) {
	src := NewSeeded(21)
	for i := 0; i < 50; i++ {
		got, err := src.PatternN("a+", 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 1)
		require.LessOrEqual(t, len(got), 3)
	}
}

func TestPatternCaseInsensitive(t *testing.T) {
	src := NewSeeded(22)
	re := regexp.MustCompile(`(?i)^abc$`)
	for i := 0; i < 20; i++ {
		got, err := src.PatternWith("abc", PatternOptions{Limit: 10})
		require.NoError(t, err)
		require.Regexp(t, re, got)
		require.Equal(t, "ABC", got, "literals expand to their canonical fold")
	}
}

func TestPatternDeterministic(t *testing.T) {
	a := NewSeeded(1000)
	b := NewSeeded(1000)
	for i := 0; i < 10; i++ {
		x, err := a.Pattern(`[a-z0-9]{12}`)
		require.NoError(t, err)
		y, err := b.Pattern(`[a-z0-9]{12}`)
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestPatternInvalid(t *testing.T) {
	src := NewSeeded(1)
	before := testutil.ToFloat64(patternCompilations.WithLabelValues(resultError))

	_, err := src.Pattern("[a-")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPattern))
	assert.Equal(t, before+1, testutil.ToFloat64(patternCompilations.WithLabelValues(resultError)))

	_, err = src.PatternN("a*", 0)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidBound))
}

func TestPatternCache(t *testing.T) {
	compiler := &countingCompiler{}
	src := NewSeeded(1, WithPatternCompiler(compiler))

	for i := 0; i < 3; i++ {
		got, err := src.Pattern("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	}
	assert.Equal(t, []string{"abc"}, compiler.calls, "unchanged pattern must compile once")

	_, err := src.Pattern("xyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "xyz"}, compiler.calls)

	_, err = src.PatternN("xyz", 5)
	require.NoError(t, err)
	assert.Len(t, compiler.calls, 3, "changed options recompile")
	assert.Equal(t, PatternOptions{Limit: 5, CaseSensitive: true}, compiler.opts[2])

	_, err = src.PatternN("xyz", 5)
	require.NoError(t, err)
	assert.Len(t, compiler.calls, 3)
}

func TestPatternDefaults(t *testing.T) {
	compiler := &countingCompiler{}
	src := NewSeeded(1, WithPatternCompiler(compiler))
	_, err := src.Pattern("q")
	require.NoError(t, err)
	require.Len(t, compiler.opts, 1)
	assert.Equal(t, 100, compiler.opts[0].Limit)
	assert.True(t, compiler.opts[0].CaseSensitive)
}

func TestPatternCompilerError(t *testing.T) {
	boom := stderrors.New("unsupported")
	src := NewSeeded(1, WithPatternCompiler(PatternCompilerFunc(
		func(string, PatternOptions, mathrand.Source) (PatternGenerator, error) {
			return nil, boom
		})))

	_, err := src.Pattern("x")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, boom))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPattern))
}

func TestLegacySource(t *testing.T) {
	l := legacySource{src: newLCG(5)}
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, l.Int63(), int64(0))
	}
}
