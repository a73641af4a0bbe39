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
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/record"
)

// entrySet is an insertion-ordered set of entries, unique by identity.
type entrySet struct {
	entries []record.Entry
	index   map[string]struct{}
}

func (s *entrySet) add(e record.Entry) bool {
	id := e.Identity()
	if _, exists := s.index[id]; exists {
		return false
	}
	s.index[id] = struct{}{}
	s.entries = append(s.entries, e)
	return true
}

// Registry maps categories to sets of entries. It is safe for concurrent use.
type Registry struct {
	strategy Strategy

	mu         sync.RWMutex
	categories map[string]*entrySet
}

// New returns an empty registry labeled with strategy.
func New(strategy Strategy) *Registry {
	return &Registry{
		strategy:   strategy,
		categories: make(map[string]*entrySet),
	}
}

// Strategy returns the resolution strategy the registry was created for.
func (r *Registry) Strategy() Strategy {
	return r.strategy
}

// Put adds e under category. It reports false when an entry with the same
// identity is already present.
func (r *Registry) Put(category string, e record.Entry) (bool, error) {
	if category == "" {
		return false, errors.New(errors.ErrCodeNullArgument, "category is required")
	}
	if e == nil {
		return false, errors.NewWithContext(errors.ErrCodeNullArgument,
			"entry is required", map[string]any{"category": category})
	}

	r.mu.Lock()
	set, ok := r.categories[category]
	if !ok {
		set = &entrySet{index: make(map[string]struct{})}
		r.categories[category] = set
	}
	added := set.add(e)
	r.mu.Unlock()

	if added {
		registryPuts.WithLabelValues(r.strategy.String(), putAdded).Inc()
	} else {
		registryPuts.WithLabelValues(r.strategy.String(), putDuplicate).Inc()
		slog.Debug("duplicate entry ignored", "category", category)
	}
	return added, nil
}

// PutAll adds every entry under its own category and returns how many were new.
func (r *Registry) PutAll(entries ...record.Entry) (int, error) {
	n := 0
	for _, e := range entries {
		if e == nil {
			return n, errors.New(errors.ErrCodeNullArgument, "entry is required")
		}
		added, err := r.Put(e.Key(), e)
		if err != nil {
			return n, err
		}
		if added {
			n++
		}
	}
	return n, nil
}

// Lookup returns a snapshot of the entries under category in insertion order.
func (r *Registry) Lookup(category string) ([]record.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.categories[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(set.entries), true
}

// Len returns the number of entries under category.
func (r *Registry) Len(category string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if set, ok := r.categories[category]; ok {
		return len(set.entries)
	}
	return 0
}

// Categories returns the category names in sorted order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.categories))
}

// Clear removes every category.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[string]*entrySet)
}
