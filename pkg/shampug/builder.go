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
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/random"
	"github.com/NVIDIA/shampug/pkg/registry"
)

// Builder collects the configuration of a ShamPug.
type Builder struct {
	strategy  registry.Strategy
	registry  *registry.Registry
	seed      int64
	seedSet   bool
	source    rand.Source
	sourceSet bool
	ctx       context.Context
	compiler  random.PatternCompiler
}

// Setup starts a new Builder.
func Setup() *Builder {
	return &Builder{}
}

// WithRegistryStrategy selects how the registry is resolved.
func (b *Builder) WithRegistryStrategy(s registry.Strategy) *Builder {
	b.strategy = s
	return b
}

// WithRegistry uses r directly instead of resolving one by strategy.
func (b *Builder) WithRegistry(r *registry.Registry) *Builder {
	b.registry = r
	return b
}

// UsingSeed makes every draw reproducible from seed.
func (b *Builder) UsingSeed(seed int64) *Builder {
	b.seed = seed
	b.seedSet = true
	return b
}

// UsingSource draws from a caller-supplied entropy stream.
func (b *Builder) UsingSource(src rand.Source) *Builder {
	b.source = src
	b.sourceSet = true
	return b
}

// WithContext sets the context used to resolve a PerContext registry.
func (b *Builder) WithContext(ctx context.Context) *Builder {
	b.ctx = ctx
	return b
}

// WithPatternCompiler replaces the regex inverter.
func (b *Builder) WithPatternCompiler(c random.PatternCompiler) *Builder {
	b.compiler = c
	return b
}

// Create validates the configuration and builds the instance.
func (b *Builder) Create() (*ShamPug, error) {
	if b.seedSet && b.sourceSet {
		return nil, errors.New(errors.ErrCodeConfigurationConflict,
			"a seed and a random source are mutually exclusive")
	}
	if b.registry != nil && b.strategy != registry.Unspecified {
		return nil, errors.NewWithContext(errors.ErrCodeConfigurationConflict,
			"a registry and a registry strategy are mutually exclusive",
			map[string]any{"strategy": b.strategy.String()})
	}
	if b.registry == nil && b.strategy == registry.Unspecified {
		return nil, errors.New(errors.ErrCodeMissingConfiguration,
			"a registry strategy or a registry is required")
	}

	reg := b.registry
	if reg == nil {
		ctx := b.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		r, err := registry.Get(ctx, b.strategy)
		if err != nil {
			return nil, err
		}
		reg = r
	}

	var opts []random.Option
	if b.compiler != nil {
		opts = append(opts, random.WithPatternCompiler(b.compiler))
	}

	var src *random.Source
	switch {
	case b.seedSet:
		src = random.NewSeeded(b.seed, opts...)
	case b.sourceSet:
		s, err := random.NewFromSource(b.source, opts...)
		if err != nil {
			return nil, err
		}
		src = s
	default:
		src = random.New(opts...)
	}

	slog.Debug("shampug created",
		"strategy", reg.Strategy().String(),
		"seeded", b.seedSet,
		"customSource", b.sourceSet)

	return &ShamPug{registry: reg, randoms: src}, nil
}
