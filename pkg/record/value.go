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
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/NVIDIA/shampug/pkg/errors"
)

// Kind identifies the variant held by a Value. The declaration order is the
// cross-kind sort order.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindChar
)

var kindNames = map[Kind]string{
	KindText:    "text",
	KindInteger: "int",
	KindFloat:   "float",
	KindBoolean: "bool",
	KindChar:    "char",
}

// String returns the kind name used in fixture documents.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a fixture kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string", "":
		return KindText, nil
	case "int", "integer", "long":
		return KindInteger, nil
	case "float", "double", "number":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBoolean, nil
	case "char", "rune":
		return KindChar, nil
	default:
		return KindText, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown value kind", map[string]any{"kind": s})
	}
}

// Value is an immutable field value of one of the supported kinds.
// The zero Value is empty text.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	r    rune
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Char returns a single-character value.
func Char(r rune) Value { return Value{kind: KindChar, r: r} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// String renders v as text. Floats use the shortest representation that
// round-trips.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindChar:
		return string(v.r)
	default:
		return v.s
	}
}

// Native returns v as a plain Go value.
func (v Value) Native() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindBoolean:
		return v.b
	case KindChar:
		return string(v.r)
	default:
		return v.s
	}
}

// AsText returns the text payload and whether v is text.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInteger }

// AsFloat returns the float payload and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBoolean }

// AsChar returns the rune payload and whether v is a char.
func (v Value) AsChar() (rune, bool) { return v.r, v.kind == KindChar }

// Compare orders values by kind, then by each kind's natural order.
func (v Value) Compare(o Value) int {
	if c := cmp.Compare(v.kind, o.kind); c != 0 {
		return c
	}
	switch v.kind {
	case KindInteger:
		return cmp.Compare(v.i, o.i)
	case KindFloat:
		return cmp.Compare(v.f, o.f)
	case KindBoolean:
		switch {
		case v.b == o.b:
			return 0
		case !v.b:
			return -1
		default:
			return 1
		}
	case KindChar:
		return cmp.Compare(v.r, o.r)
	default:
		return strings.Compare(v.s, o.s)
	}
}

// MarshalYAML renders v as its native value.
func (v Value) MarshalYAML() (any, error) { return v.Native(), nil }

// MarshalJSON renders v as its native JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger, KindBoolean:
		return []byte(v.String()), nil
	case KindFloat:
		return []byte(strconv.FormatFloat(v.f, 'g', -1, 64)), nil
	default:
		return []byte(strconv.Quote(v.String())), nil
	}
}

// FromAny infers a Value from a plain Go value. Strings stay text; use
// Convert to coerce them into another kind. int32 is treated as a rune, and
// a json.Number becomes an integer when it has no fraction.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, errors.New(errors.ErrCodeNullArgument, "value is nil")
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case rune:
		return Char(t), nil
	case bool:
		return Bool(t), nil
	case float32, float64:
		return Float(cast.ToFloat64(t)), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid number", err)
		}
		return Float(f), nil
	case int, int8, int16, int64, uint, uint8, uint16, uint32, uint64:
		i, err := cast.ToInt64E(t)
		if err != nil {
			return Value{}, errors.Wrap(errors.ErrCodeInvalidRequest, "integer out of range", err)
		}
		return Int(i), nil
	default:
		return Value{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unsupported value type", map[string]any{"type": fmt.Sprintf("%T", x)})
	}
}

// Convert coerces x into a Value of kind k.
func Convert(x any, k Kind) (Value, error) {
	if x == nil {
		return Value{}, errors.New(errors.ErrCodeNullArgument, "value is nil")
	}
	if v, ok := x.(Value); ok {
		x = v.Native()
	}

	var (
		v   Value
		err error
	)
	switch k {
	case KindText:
		var s string
		s, err = cast.ToStringE(x)
		v = Text(s)
	case KindInteger:
		var i int64
		i, err = cast.ToInt64E(x)
		v = Int(i)
	case KindFloat:
		var f float64
		f, err = cast.ToFloat64E(x)
		v = Float(f)
	case KindBoolean:
		var b bool
		b, err = cast.ToBoolE(x)
		v = Bool(b)
	case KindChar:
		var s string
		s, err = cast.ToStringE(x)
		if err == nil {
			runes := []rune(s)
			if len(runes) != 1 {
				err = fmt.Errorf("char value must be exactly one character, got %q", s)
			} else {
				v = Char(runes[0])
			}
		}
	default:
		err = fmt.Errorf("unknown kind %d", int(k))
	}
	if err != nil {
		return Value{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to convert value", err, map[string]any{"kind": k.String()})
	}
	return v, nil
}
