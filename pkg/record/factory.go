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
	"reflect"

	"github.com/NVIDIA/shampug/pkg/errors"
)

// Factory supplies pre-defaulted entries of one type.
type Factory[T Entry] struct {
	create func() T
}

// NewFactory returns a Factory calling create for every new entry.
func NewFactory[T Entry](create func() T) (*Factory[T], error) {
	if create == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "factory function is required")
	}
	return &Factory[T]{create: create}, nil
}

// Create returns a new entry.
func (f *Factory[T]) Create() T {
	return f.create()
}

// CreateN returns n new entries.
func (f *Factory[T]) CreateN(n int) []T {
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, f.create())
	}
	return out
}

// TypeKey returns the fully-qualified name of T, pointer indirections
// stripped, for use as a category.
func TypeKey[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// TypeKeyOf returns the fully-qualified name of v's type.
func TypeKeyOf(v any) string {
	if v == nil {
		return ""
	}
	return typeName(reflect.TypeOf(v))
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
