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

package record

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Entry is what a registry stores and a draw returns.
type Entry interface {
	// Key returns the category the entry belongs to.
	Key() string
	// Identity returns the text used for equality and ordering.
	Identity() string
	// Get returns the value bound to field.
	Get(field string) (Value, bool)
	// Tokens returns the field names the entry declares.
	Tokens() []string
}

// TokenProvider supplies the declared tokens of a record.
type TokenProvider func(r *Record) []string

// Comparator orders two records.
type Comparator func(a, b *Record) int

// Option configures a Record.
type Option func(*Record)

// WithTokens fixes the declared token set.
func WithTokens(tokens ...string) Option {
	fixed := slices.Clone(tokens)
	return func(r *Record) {
		r.tokens = func(*Record) []string { return slices.Clone(fixed) }
	}
}

// WithTokenProvider sets a custom declared-token provider.
func WithTokenProvider(p TokenProvider) Option {
	return func(r *Record) {
		if p != nil {
			r.tokens = p
		}
	}
}

// WithComparator sets a custom comparison strategy.
func WithComparator(c Comparator) Option {
	return func(r *Record) {
		if c != nil {
			r.compare = c
		}
	}
}

// Record is a set of named field values under an immutable category.
// It is safe for concurrent use.
type Record struct {
	category string

	mu     sync.RWMutex
	fields map[string]Value

	tokens  TokenProvider
	compare Comparator
}

// New returns an empty record in category.
func New(category string, opts ...Option) *Record {
	r := &Record{
		category: category,
		fields:   make(map[string]Value),
		tokens:   fieldNames,
		compare:  CompareIdentity,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the record's category.
func (r *Record) Key() string { return r.category }

// Set binds field to v and returns r for chaining.
func (r *Record) Set(field string, v Value) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[field] = v
	return r
}

// SetAny binds field to a value inferred from x.
func (r *Record) SetAny(field string, x any) error {
	v, err := FromAny(x)
	if err != nil {
		return err
	}
	r.Set(field, v)
	return nil
}

// Unset removes field.
func (r *Record) Unset(field string) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.fields, field)
	return r
}

// Get returns the value bound to field.
func (r *Record) Get(field string) (Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.fields[field]
	return v, ok
}

// Fields returns a copy of all bound fields.
func (r *Record) Fields() map[string]Value {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.fields)
}

// Names returns the bound field names in sorted order.
func (r *Record) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.fields))
}

// Tokens returns the declared tokens; by default, the bound field names.
func (r *Record) Tokens() []string {
	return r.tokens(r)
}

// Identity concatenates the field values in field-name order.
func (r *Record) Identity() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	for _, name := range slices.Sorted(maps.Keys(r.fields)) {
		sb.WriteString(r.fields[name].String())
	}
	return sb.String()
}

// Compare orders r against o using r's comparison strategy.
func (r *Record) Compare(o *Record) int {
	return r.compare(r, o)
}

// Equal reports whether r and o have the same identity.
func (r *Record) Equal(o *Record) bool {
	if o == nil {
		return false
	}
	return r.Identity() == o.Identity()
}

// String implements fmt.Stringer.
func (r *Record) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Sorted(maps.Keys(r.fields))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+r.fields[name].String())
	}
	return r.category + "{" + strings.Join(parts, ", ") + "}"
}

// MarshalYAML renders the bound fields.
func (r *Record) MarshalYAML() (any, error) {
	return NativeFields(r), nil
}

// NativeFields returns the native values of any entry, keyed by field name.
func NativeFields(e Entry) map[string]any {
	out := make(map[string]any)
	if r, ok := e.(*Record); ok {
		for k, v := range r.Fields() {
			out[k] = v.Native()
		}
		return out
	}
	for _, tok := range e.Tokens() {
		if v, ok := e.Get(tok); ok {
			out[tok] = v.Native()
		}
	}
	return out
}

func fieldNames(r *Record) []string {
	return r.Names()
}

// CompareIdentity orders records by their identity text.
func CompareIdentity(a, b *Record) int {
	return strings.Compare(a.Identity(), b.Identity())
}

// CompareFieldwise orders records field by field in name order, using each
// value's natural order. Records with fewer fields sort first on a tie.
func CompareFieldwise(a, b *Record) int {
	af, bf := a.Fields(), b.Fields()
	an := slices.Sorted(maps.Keys(af))
	bn := slices.Sorted(maps.Keys(bf))

	for i := 0; i < len(an) && i < len(bn); i++ {
		if c := strings.Compare(an[i], bn[i]); c != 0 {
			return c
		}
		if c := af[an[i]].Compare(bf[bn[i]]); c != 0 {
			return c
		}
	}
	switch {
	case len(an) < len(bn):
		return -1
	case len(an) > len(bn):
		return 1
	default:
		return 0
	}
}
