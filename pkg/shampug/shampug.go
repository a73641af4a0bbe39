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

package shampug

import (
	"fmt"
	"math"

	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/random"
	"github.com/NVIDIA/shampug/pkg/record"
	"github.com/NVIDIA/shampug/pkg/registry"
	"github.com/NVIDIA/shampug/pkg/template"
)

// ShamPug draws uniformly random fixture records from a registry.
type ShamPug struct {
	registry *registry.Registry
	randoms  *random.Source
}

// NewGlobal returns an instance over the process-wide registry seeded with
// defaults.Seed.
func NewGlobal() *ShamPug {
	return &ShamPug{
		registry: registry.Default(),
		randoms:  random.NewSeeded(defaults.Seed),
	}
}

// Registry returns the registry backing p.
func (p *ShamPug) Registry() *registry.Registry { return p.registry }

// Randoms returns the random source backing p.
func (p *ShamPug) Randoms() *random.Source { return p.randoms }

// Put stores entries under their own categories. Duplicates are ignored.
func (p *ShamPug) Put(entries ...record.Entry) error {
	_, err := p.registry.PutAll(entries...)
	return err
}

// Get draws one entry from category.
func (p *ShamPug) Get(category string) (record.Entry, error) {
	entries, ok := p.registry.Lookup(category)
	if !ok || len(entries) == 0 {
		draws.WithLabelValues(resultNotFound).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeCategoryNotFound,
			fmt.Sprintf("no %q records available", category), map[string]any{"category": category})
	}
	if len(entries) > math.MaxInt32 {
		draws.WithLabelValues(resultError).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeInternal,
			"category holds too many records", map[string]any{"category": category, "count": len(entries)})
	}

	idx, err := p.randoms.Int32N(int32(len(entries)))
	if err != nil {
		draws.WithLabelValues(resultError).Inc()
		return nil, err
	}
	draws.WithLabelValues(resultOK).Inc()
	return entries[idx], nil
}

// Sample draws n entries from category, with replacement.
func (p *ShamPug) Sample(category string, n int) ([]record.Entry, error) {
	if n < 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidBound,
			"sample size must not be negative", map[string]any{"count": n})
	}
	out := make([]record.Entry, 0, n)
	for i := 0; i < n; i++ {
		e, err := p.Get(category)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Line draws one entry from category and renders tpl against it.
func (p *ShamPug) Line(category, tpl string) (string, error) {
	return p.RenderLine(category, template.Parse(tpl))
}

// RenderLine draws one entry from category and renders the parsed tpl
// against it. Use it to render one template many times.
func (p *ShamPug) RenderLine(category string, tpl *template.Template) (string, error) {
	if tpl == nil {
		return "", errors.New(errors.ErrCodeNullArgument, "template is required")
	}
	e, err := p.Get(category)
	if err != nil {
		return "", err
	}
	return tpl.Render(e, p.randoms)
}

// Pattern returns a string matching pattern.
func (p *ShamPug) Pattern(pattern string) (string, error) {
	return p.observePattern(p.randoms.Pattern(pattern))
}

// PatternN returns a string matching pattern with unbounded quantifiers
// capped at limit.
func (p *ShamPug) PatternN(pattern string, limit int) (string, error) {
	return p.observePattern(p.randoms.PatternN(pattern, limit))
}

// PatternWith returns a string matching pattern under opts.
func (p *ShamPug) PatternWith(pattern string, opts random.PatternOptions) (string, error) {
	return p.observePattern(p.randoms.PatternWith(pattern, opts))
}

func (p *ShamPug) observePattern(s string, err error) (string, error) {
	if err != nil {
		patterns.WithLabelValues(resultError).Inc()
		return "", err
	}
	patterns.WithLabelValues(resultOK).Inc()
	return s, nil
}

// GetAs draws one entry from category and asserts it to T.
func GetAs[T record.Entry](p *ShamPug, category string) (T, error) {
	var zero T
	e, err := p.Get(category)
	if err != nil {
		return zero, err
	}
	t, ok := e.(T)
	if !ok {
		return zero, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"record has unexpected type", map[string]any{
				"category": category,
				"want":     record.TypeKey[T](),
				"got":      record.TypeKeyOf(e),
			})
	}
	return t, nil
}

// GetByType draws one entry from the category named after T.
func GetByType[T record.Entry](p *ShamPug) (T, error) {
	return GetAs[T](p, record.TypeKey[T]())
}
