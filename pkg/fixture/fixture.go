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


package fixture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/NVIDIA/shampug/pkg/address"
	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/header"
	"github.com/NVIDIA/shampug/pkg/random"
	"github.com/NVIDIA/shampug/pkg/record"
	"github.com/NVIDIA/shampug/pkg/registry"
	"github.com/NVIDIA/shampug/pkg/serializer"
	"github.com/NVIDIA/shampug/pkg/template"
)

// Document is a set of fixture records grouped by category.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Categories []Category `json:"categories" yaml:"categories"`
}

// Category holds the records of one category.
type Category struct {
	// Name is the category the records are registered under.
	Name string `json:"name" yaml:"name"`

	// Tokens, when set, are the declared tokens of every record.
	Tokens []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`

	// Kinds maps field names to an explicit value kind (text, int, float,
	// bool, char). Fields not listed are inferred from the decoded value.
	Kinds map[string]string `json:"kinds,omitempty" yaml:"kinds,omitempty"`

	// Type selects the entry type built from each record: empty for plain
	// records, TypeAddress for postal addresses.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Lines maps address line names (name, street, city, additional) to
	// templates. Only used with TypeAddress.
	Lines map[string]string `json:"lines,omitempty" yaml:"lines,omitempty"`

	// Records are the field maps, one per record.
	Records []map[string]any `json:"records" yaml:"records"`
}

// TypeAddress builds address.Address entries. Their category is always
// address.Category, whatever the name.
const TypeAddress = "address"

var addressLines = map[string]address.Line{
	address.NameLine.String():       address.NameLine,
	address.StreetLine.String():     address.StreetLine,
	address.CityLine.String():       address.CityLine,
	address.AdditionalLine.String(): address.AdditionalLine,
}

// Putter stores entries. *shampug.ShamPug satisfies it; wrap a bare
// Registry in RegistryPutter.
type Putter interface {
	Put(entries ...record.Entry) error
}

// randomized is implemented by targets that can supply placeholder digits
// to address lines.
type randomized interface {
	Randoms() *random.Source
}

// RegistryPutter adapts a Registry to Putter.
type RegistryPutter struct {
	Registry *registry.Registry
}

// Put implements Putter.
func (p RegistryPutter) Put(entries ...record.Entry) error {
	_, err := p.Registry.PutAll(entries...)
	return err
}

// New returns an empty FixtureSet document.
func New() *Document {
	return &Document{Header: *header.New(header.WithKind(header.KindFixtureSet))}
}

// Load decodes a document from r. Besides the FixtureSet form, a bare map
// of category name to a list of field maps is accepted.
func Load(r io.Reader, format serializer.Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read fixtures", err)
	}

	var probe map[string]any
	if err := decode(data, format, &probe); err != nil {
		return nil, err
	}
	if len(probe) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "fixture document is empty")
	}

	if _, ok := probe["kind"]; !ok {
		var bare map[string][]map[string]any
		if err := decode(data, format, &bare); err != nil {
			return nil, err
		}
		return fromBare(bare), nil
	}

	var doc Document
	if err := decode(data, format, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile loads a document from a local path or an http(s) URL, with the
// format taken from the extension.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err = serializer.NewHttpReader().ReadWithContext(ctx, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		code := errors.CodeOf(err)
		if code == "" {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to read fixture file", err,
			map[string]any{"path": path})
	}

	doc, err := Load(bytes.NewReader(data), serializer.FormatFromPath(path))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid fixture file", err,
			map[string]any{"path": path})
	}

	slog.Debug("fixtures loaded", "path", path, "categories", len(doc.Categories))
	return doc, nil
}

func decode(data []byte, format serializer.Format, v any) error {
	r, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "unsupported fixture format", err)
	}
	if err := r.Deserialize(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode fixtures", err)
	}
	return nil
}

func fromBare(bare map[string][]map[string]any) *Document {
	doc := New()
	for _, name := range slices.Sorted(maps.Keys(bare)) {
		doc.Categories = append(doc.Categories, Category{Name: name, Records: bare[name]})
	}
	return doc
}

// Validate checks the header and every category declaration.
func (d *Document) Validate() error {
	if d.Kind != header.KindFixtureSet {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unexpected document kind",
			map[string]any{"kind": d.Kind.String(), "want": header.KindFixtureSet.String()})
	}
	if d.APIVersion != header.APIVersion {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unsupported apiVersion",
			map[string]any{"apiVersion": d.APIVersion, "want": header.APIVersion})
	}
	for i, c := range d.Categories {
		if c.Name == "" {
			return errors.NewWithContext(errors.ErrCodeNullArgument, "category name is required",
				map[string]any{"index": i})
		}
		for field, k := range c.Kinds {
			if _, err := record.ParseKind(k); err != nil {
				return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid field kind", err,
					map[string]any{"category": c.Name, "field": field})
			}
		}
		if err := c.validateType(); err != nil {
			return err
		}
	}
	return nil
}

func (c Category) validateType() error {
	switch c.Type {
	case "":
		if len(c.Lines) > 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "lines require an address category",
				map[string]any{"category": c.Name})
		}
	case TypeAddress:
		for name := range c.Lines {
			if _, ok := addressLines[name]; !ok {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown address line",
					map[string]any{"category": c.Name, "line": name})
			}
		}
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown category type",
			map[string]any{"category": c.Name, "type": c.Type})
	}
	return nil
}

// Records converts every category into entries, in document order.
// Address lines with placeholders draw their digits from r, which may be
// nil when no template uses one.
func (d *Document) Records(r template.Rand) ([]record.Entry, error) {
	var out []record.Entry
	for _, c := range d.Categories {
		if err := c.validateType(); err != nil {
			return nil, err
		}
		recs, err := c.records(r)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (c Category) records(rnd template.Rand) ([]record.Entry, error) {
	kinds := make(map[string]record.Kind, len(c.Kinds))
	for field, s := range c.Kinds {
		k, err := record.ParseKind(s)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid field kind", err,
				map[string]any{"category": c.Name, "field": field})
		}
		kinds[field] = k
	}

	var opts []record.Option
	if len(c.Tokens) > 0 {
		opts = append(opts, record.WithTokens(c.Tokens...))
	}

	out := make([]record.Entry, 0, len(c.Records))
	for i, fields := range c.Records {
		if c.Type == TypeAddress {
			a, err := c.address(rnd, fields)
			if err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid address", err,
					map[string]any{"category": c.Name, "index": i})
			}
			out = append(out, a)
			continue
		}

		r := record.New(c.Name, opts...)
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			v, err := convert(fields[name], kinds, name)
			if err != nil {
				return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid field value", err,
					map[string]any{"category": c.Name, "index": i, "field": name})
			}
			r.Set(name, v)
		}
		out = append(out, r)
	}
	return out, nil
}

func (c Category) address(rnd template.Rand, fields map[string]any) (*address.Address, error) {
	opts := []address.Option{address.WithDefaultNameTemplate()}
	for name, tpl := range c.Lines {
		opts = append(opts, address.WithTemplate(addressLines[name], tpl))
	}

	a := address.New(rnd, opts...)
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		v, err := record.Convert(fields[name], record.KindText)
		if err != nil {
			return nil, err
		}
		text, _ := v.AsText()
		a.Set(name, text)
	}
	return a, nil
}

func convert(x any, kinds map[string]record.Kind, field string) (record.Value, error) {
	if k, ok := kinds[field]; ok {
		return record.Convert(x, k)
	}
	return record.FromAny(x)
}

// Apply converts the documents and stores every entry in p. When p has a
// random source (as *shampug.ShamPug does) address lines draw from it. It
// returns the number of entries offered; duplicates are dropped by the
// registry.
func Apply(p Putter, docs ...*Document) (int, error) {
	if p == nil {
		return 0, errors.New(errors.ErrCodeNullArgument, "fixture target is nil")
	}

	var rnd template.Rand
	if r, ok := p.(randomized); ok {
		rnd = r.Randoms()
	}

	total := 0
	for _, d := range docs {
		if d == nil {
			continue
		}
		entries, err := d.Records(rnd)
		if err != nil {
			return total, err
		}
		if err := p.Put(entries...); err != nil {
			return total, err
		}
		total += len(entries)
	}
	return total, nil
}

// Snapshot captures the contents of reg as a document. Fields that hold a
// char or float in every record are listed in Kinds so the document loads
// back to the same values.
func Snapshot(reg *registry.Registry) (*Document, error) {
	if reg == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "registry is nil")
	}

	doc := New()
	for _, name := range reg.Categories() {
		entries, _ := reg.Lookup(name)
		c := Category{Name: name}
		observed := make(map[string]string)

		for i, e := range entries {
			if i == 0 {
				describe(&c, e)
			}
			fields := record.NativeFields(e)
			c.Records = append(c.Records, fields)
			for field := range fields {
				v, _ := e.Get(field)
				observe(observed, field, v.Kind())
			}
		}

		for field, k := range observed {
			if k == record.KindChar.String() || k == record.KindFloat.String() {
				if c.Kinds == nil {
					c.Kinds = make(map[string]string)
				}
				c.Kinds[field] = k
			}
		}
		doc.Categories = append(doc.Categories, c)
	}
	return doc, nil
}

const mixedKinds = "mixed"

func observe(observed map[string]string, field string, k record.Kind) {
	prev, seen := observed[field]
	switch {
	case !seen:
		observed[field] = k.String()
	case prev != k.String():
		observed[field] = mixedKinds
	}
}

// describe fills the category declaration from its first entry. Tokens are
// only kept when they are not simply the bound field names.
func describe(c *Category, e record.Entry) {
	switch t := e.(type) {
	case *address.Address:
		c.Type = TypeAddress
		for name, line := range addressLines {
			if tpl, ok := t.Template(line); ok {
				if c.Lines == nil {
					c.Lines = make(map[string]string)
				}
				c.Lines[name] = tpl
			}
		}
	case *record.Record:
		if !slices.Equal(t.Tokens(), t.Names()) {
			c.Tokens = t.Tokens()
		}
	default:
		c.Tokens = e.Tokens()
	}
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Records)
	}
	return fmt.Sprintf("%s(%d categories, %d records)", d.Kind, len(d.Categories), n)
}
