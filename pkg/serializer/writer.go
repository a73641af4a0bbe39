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


package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var headerCaser = cases.Upper(language.English)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats lists the formats accepted by --format, default first.
func SupportedFormats() []string {
	return []string{
		string(FormatYAML),
		string(FormatJSON),
		string(FormatTable),
	}
}

// Writer serializes values to an io.Writer.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer encoding to output, or stdout when output is
// nil. Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: knownOrJSON(format),
		output: output,
	}
}

// NewFileWriterOrStdout creates a Writer for path in the given format.
// An empty path, or a file that cannot be created, writes to stdout.
// Call Close on the returned Writer to release the file.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("output file not writable, using stdout", "path", trimmed, "error", err)
		return NewStdoutWriter(format)
	}

	return &Writer{
		format: knownOrJSON(format),
		output: file,
		closer: file,
	}
}

// NewStdoutWriter returns a Writer encoding to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

func knownOrJSON(format Format) Format {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		return FormatJSON
	}
	return format
}

// Close releases the output file, if any. Repeated calls are no-ops.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

// Serialize writes v in the configured format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("serialize canceled: %w", err)
	}

	switch w.format {
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	case FormatTable:
		return w.serializeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml flush: %w", err)
	}
	return nil
}

func (w *Writer) serializeTable(v any) error {
	if t, ok := v.(Tabular); ok {
		return writeColumns(w.output, t.TableColumns(), t.TableRows())
	}

	flat := make(map[string]any)
	flatten(flat, "", reflect.ValueOf(v))

	rows := make([][]string, 0, len(flat))
	for _, path := range slices.Sorted(maps.Keys(flat)) {
		rows = append(rows, []string{path, fmt.Sprint(flat[path])})
	}
	if len(rows) == 0 {
		return writeColumns(w.output, nil, nil)
	}
	return writeColumns(w.output, []string{"field", "value"}, rows)
}

// writeColumns renders rows under upper-cased column headers.
func writeColumns(out io.Writer, columns []string, rows [][]string) error {
	if len(columns) == 0 {
		_, err := fmt.Fprintln(out, "<empty>")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	heads := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		heads[i] = headerCaser.String(c)
		rules[i] = strings.Repeat("-", len(heads[i]))
	}
	fmt.Fprintln(tw, strings.Join(heads, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// flatten collects the leaves of v keyed by dotted paths. Struct fields use
// their json name; embedded and inlined structs add no path segment.
func flatten(out map[string]any, path string, v reflect.Value) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			if path != "" {
				out[path] = nil
			}
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	//nolint:exhaustive // leaves are handled by default
	switch v.Kind() {
	case reflect.Struct:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			out[leafPath(path)] = s.String()
			return
		}
		t := v.Type()
		for i := range t.NumField() {
			name, ok := fieldName(t.Field(i))
			if !ok {
				continue
			}
			flatten(out, join(path, name), v.Field(i))
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			flatten(out, join(path, fmt.Sprint(iter.Key().Interface())), iter.Value())
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			flatten(out, fmt.Sprintf("%s[%d]", path, i), v.Index(i))
		}
	default:
		out[leafPath(path)] = v.Interface()
	}
}

// fieldName returns the path segment of f and whether f is serialized.
func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch {
	case tag == "-":
		return "", false
	case f.Anonymous && tag == "", opts == "inline":
		return "", true
	case tag != "":
		return tag, true
	default:
		return f.Name, true
	}
}

func leafPath(path string) string {
	if path == "" {
		return "value"
	}
	return path
}

func join(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "." + name
	}
}
