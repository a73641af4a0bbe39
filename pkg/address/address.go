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

package address

import (
	"strings"
	"sync"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/record"
	"github.com/NVIDIA/shampug/pkg/template"
)

// Field names declared by every address.
const (
	Title      = "title"
	FirstName  = "firstname"
	MiddleName = "middlename"
	LastName   = "lastname"
	Street     = "street"
	Zipcode    = "zipcode"
	State      = "state"
	City       = "city"
	Country    = "country"
	Continent  = "continent"
)

// DefaultNameLine is the template used by WithDefaultNameTemplate.
const DefaultNameLine = "[title] [firstname] [middlename] [lastname]"

// Tokens returns the declared address fields.
func Tokens() []string {
	return []string{Title, FirstName, MiddleName, LastName, Street, Zipcode, State, City, Country, Continent}
}

// Category is the registry category of addresses.
var Category = record.TypeKey[Address]()

// Line selects one of the composed address lines.
type Line int

const (
	NameLine Line = iota
	StreetLine
	CityLine
	AdditionalLine
	lineCount
)

// String implements fmt.Stringer.
func (l Line) String() string {
	switch l {
	case NameLine:
		return "name"
	case StreetLine:
		return "street"
	case CityLine:
		return "city"
	case AdditionalLine:
		return "additional"
	default:
		return "unknown"
	}
}

// Option configures an Address.
type Option func(*Address)

// WithTemplate sets the template used to compose line.
func WithTemplate(line Line, tpl string) Option {
	return func(a *Address) {
		if line >= 0 && line < lineCount {
			a.templates[line] = template.Parse(tpl)
		}
	}
}

// WithDefaultNameTemplate composes the name line from DefaultNameLine.
func WithDefaultNameTemplate() Option {
	return WithTemplate(NameLine, DefaultNameLine)
}

// Address is a postal address record with composed lines. Composed lines are
// cached until a field changes.
type Address struct {
	rec  *record.Record
	rand template.Rand

	mu        sync.Mutex
	templates [lineCount]*template.Template
	lines     [lineCount]*string
}

// New returns an empty address drawing placeholder digits from r.
func New(r template.Rand, opts ...Option) *Address {
	a := &Address{
		rec:  record.New(Category, record.WithTokens(Tokens()...)),
		rand: r,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key implements record.Entry.
func (a *Address) Key() string { return a.rec.Key() }

// Identity implements record.Entry.
func (a *Address) Identity() string { return a.rec.Identity() }

// Get implements record.Entry.
func (a *Address) Get(field string) (record.Value, bool) { return a.rec.Get(field) }

// Tokens implements record.Entry.
func (a *Address) Tokens() []string { return a.rec.Tokens() }

// Record returns the underlying field set.
func (a *Address) Record() *record.Record { return a.rec }

// Set binds field to value and drops cached lines.
func (a *Address) Set(field, value string) *Address {
	a.rec.Set(field, record.Text(value))
	a.mu.Lock()
	a.lines = [lineCount]*string{}
	a.mu.Unlock()
	return a
}

func (a *Address) text(field string) string {
	v, ok := a.rec.Get(field)
	if !ok {
		return ""
	}
	return v.String()
}

// Template returns the source of the template configured for line.
func (a *Address) Template(line Line) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if line < 0 || line >= lineCount || a.templates[line] == nil {
		return "", false
	}
	return a.templates[line].Line(), true
}

// SetTemplate replaces the template for line and drops its cached value.
func (a *Address) SetTemplate(line Line, tpl string) *Address {
	WithTemplate(line, tpl)(a)
	a.mu.Lock()
	if line >= 0 && line < lineCount {
		a.lines[line] = nil
	}
	a.mu.Unlock()
	return a
}

// ComposeLine renders line, composing it on first use.
func (a *Address) ComposeLine(line Line) (string, error) {
	if line < 0 || line >= lineCount {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown address line", map[string]any{"line": int(line)})
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if cached := a.lines[line]; cached != nil {
		return *cached, nil
	}
	tpl := a.templates[line]
	if tpl == nil {
		return "", errors.NewWithContext(errors.ErrCodeMissingConfiguration,
			"no template defined for address line", map[string]any{"line": line.String()})
	}
	s, err := tpl.Render(a.rec, a.rand)
	if err != nil {
		return "", err
	}
	a.lines[line] = &s
	return s, nil
}

// Compare orders addresses by their name, street and city lines.
func (a *Address) Compare(o *Address) (int, error) {
	if o == nil {
		return 1, nil
	}
	x, err := a.summary()
	if err != nil {
		return 0, err
	}
	y, err := o.summary()
	if err != nil {
		return 0, err
	}
	return strings.Compare(x, y), nil
}

func (a *Address) summary() (string, error) {
	var sb strings.Builder
	for _, l := range []Line{NameLine, StreetLine, CityLine} {
		s, err := a.ComposeLine(l)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
