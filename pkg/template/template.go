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

package template

import (
	"slices"
	"strconv"
	"strings"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/record"
)

// maxExactDigits is the widest placeholder drawn as a single int64.
const maxExactDigits = 18

// TokenKind classifies one template token against a record.
type TokenKind int

const (
	// Literal tokens are copied as-is.
	Literal TokenKind = iota
	// BoundField tokens name a field with a value.
	BoundField
	// UnboundField tokens name a declared field without a value; they render
	// as the field name.
	UnboundField
	// Placeholder tokens start with '#' and render as a random number with
	// one digit per character.
	Placeholder
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case BoundField:
		return "field"
	case UnboundField:
		return "unbound"
	case Placeholder:
		return "placeholder"
	default:
		return "literal"
	}
}

// Fielder is the view of a record a template renders from.
type Fielder interface {
	Get(field string) (record.Value, bool)
	Tokens() []string
}

// Rand draws placeholder digits.
type Rand interface {
	Int32N(bound int32) (int32, error)
	Int64Range(lo, hi int64) (int64, error)
}

// Template is an immutable, parsed line template.
type Template struct {
	line   string
	tokens []string
}

// Parse splits line on whitespace and strips every character outside
// [a-zA-Z0-9#] from each token. Tokens left empty render as empty strings.
func Parse(line string) *Template {
	fields := strings.Fields(line)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, harmonize(f))
	}
	return &Template{line: line, tokens: tokens}
}

// harmonize keeps ASCII letters, ASCII digits and '#'.
func harmonize(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '#' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Line returns the source line.
func (t *Template) Line() string { return t.line }

// Tokens returns the harmonized tokens.
func (t *Template) Tokens() []string { return slices.Clone(t.tokens) }

// String implements fmt.Stringer.
func (t *Template) String() string { return t.line }

// Token is a classified template token.
type Token struct {
	Text string
	Kind TokenKind
}

// Classify reports how each token resolves against rec.
func (t *Template) Classify(rec Fielder) ([]Token, error) {
	if rec == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "record is required")
	}
	declared := rec.Tokens()
	out := make([]Token, 0, len(t.tokens))
	for _, tok := range t.tokens {
		out = append(out, Token{Text: tok, Kind: classify(tok, rec, declared)})
	}
	return out, nil
}

func classify(tok string, rec Fielder, declared []string) TokenKind {
	if _, ok := rec.Get(tok); ok {
		return BoundField
	}
	if slices.Contains(declared, tok) {
		return UnboundField
	}
	if strings.HasPrefix(tok, "#") {
		return Placeholder
	}
	return Literal
}

// Render composes the line for rec, joining the rendered tokens with single
// spaces. r is only consulted for placeholders and may be nil otherwise.
func (t *Template) Render(rec Fielder, r Rand) (string, error) {
	tokens, err := t.Classify(rec)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case BoundField:
			v, _ := rec.Get(tok.Text)
			parts = append(parts, v.String())
		case Placeholder:
			n, err := digits(len(tok.Text), r)
			if err != nil {
				return "", err
			}
			parts = append(parts, n)
		default:
			parts = append(parts, tok.Text)
		}
	}
	return strings.Join(parts, " "), nil
}

// digits returns a random number with exactly d digits.
func digits(d int, r Rand) (string, error) {
	if r == nil {
		return "", errors.New(errors.ErrCodeNullArgument, "random source is required for placeholders")
	}
	if d <= maxExactDigits {
		lo := pow10(d - 1)
		n, err := r.Int64Range(lo, lo*10)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}

	var sb strings.Builder
	first, err := r.Int64Range(1, 10)
	if err != nil {
		return "", err
	}
	sb.WriteString(strconv.FormatInt(first, 10))
	for i := 1; i < d; i++ {
		n, err := r.Int32N(10)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n))
	}
	return sb.String(), nil
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
