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

package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/NVIDIA/shampug/pkg/errors"
)

var (
	globalRegistry *Registry
	globalOnce     sync.Once
)

// Default returns the process-wide registry shared by the Global strategy.
func Default() *Registry {
	globalOnce.Do(func() {
		globalRegistry = New(Global)
	})
	return globalRegistry
}

type scopeKey struct{}

// scopes holds the lazily created registries of live PerContext scopes.
var scopes = struct {
	sync.Mutex
	m map[string]*Registry
}{m: make(map[string]*Registry)}

// WithScope attaches a fresh PerContext scope to ctx. Every resolution with
// the returned context, or a context derived from it, shares one registry
// until release is called.
func WithScope(ctx context.Context) (context.Context, func()) {
	id := uuid.NewString()
	var once sync.Once
	release := func() {
		once.Do(func() {
			scopes.Lock()
			_, existed := scopes.m[id]
			delete(scopes.m, id)
			scopes.Unlock()
			if existed {
				activeScopes.Dec()
			}
		})
	}
	return context.WithValue(ctx, scopeKey{}, id), release
}

// ScopeID returns the id of the PerContext scope attached to ctx.
func ScopeID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(scopeKey{}).(string)
	return id, ok && id != ""
}

// Get resolves a registry for strategy.
func Get(ctx context.Context, strategy Strategy) (*Registry, error) {
	switch strategy {
	case Global:
		return Default(), nil
	case NewInstance:
		return New(NewInstance), nil
	case PerContext:
		if ctx == nil {
			return nil, errors.New(errors.ErrCodeNullArgument, "context is required for the per-context strategy")
		}
		id, ok := ScopeID(ctx)
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingConfiguration,
				"context has no registry scope; attach one with registry.WithScope")
		}
		scopes.Lock()
		defer scopes.Unlock()
		r, ok := scopes.m[id]
		if !ok {
			r = New(PerContext)
			scopes.m[id] = r
			activeScopes.Inc()
		}
		return r, nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown registry strategy", map[string]any{"strategy": strategy.String()})
	}
}
