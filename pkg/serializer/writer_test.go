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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type TestHeader struct {
	Kind string `json:"kind"`
}

type testDocument struct {
	TestHeader `json:",inline"`
	Items      []testConfig `json:"items"`
	Skipped    string       `json:"-"`
}

type testRows struct {
	cols []string
	rows [][]string
}

func (r testRows) TableColumns() []string { return r.cols }
func (r testRows) TableRows() [][]string  { return r.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Name != "b" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "pug", Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "pug" || result.Value != 7 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	tests := []struct {
		name string
		data any
		want []string
	}{
		{
			name: "flattened struct",
			data: testConfig{Name: "pug", Value: 7},
			want: []string{"FIELD", "VALUE", "name", "pug", "value", "7"},
		},
		{
			name: "nested map",
			data: map[string]any{"outer": map[string]int{"inner": 3}},
			want: []string{"outer.inner", "3"},
		},
		{
			name: "slice",
			data: []string{"x", "y"},
			want: []string{"[0]", "x", "[1]", "y"},
		},
		{
			name: "inline header and nested slice",
			data: testDocument{
				TestHeader: TestHeader{Kind: "FixtureSet"},
				Skipped:    "hidden",
				Items:      []testConfig{{Name: "Emmy", Value: 5}},
			},
			want: []string{"kind", "FixtureSet", "items[0].name", "Emmy", "items[0].value"},
		},
		{
			name: "tabular",
			data: testRows{cols: []string{"name", "weight"}, rows: [][]string{{"Emmy", "5"}}},
			want: []string{"NAME", "WEIGHT", "----", "Emmy", "5"},
		},
		{
			name: "empty",
			data: map[string]any{},
			want: []string{"<empty>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.data); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected output to contain %q, got:\n%s", w, out)
				}
			}
		})
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	type withPtr struct {
		Ptr *string
	}
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), withPtr{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<nil>") {
		t.Errorf("expected nil pointer to render, got:\n%s", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if writer.format != FormatJSON {
		t.Fatalf("expected JSON fallback, got %s", writer.format)
	}
	if err := writer.Serialize(context.Background(), map[string]int{"a": 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected valid JSON, got %s", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, "x"); err == nil {
		t.Error("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewWriter_NilOutputDefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("expected stdout output")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatYAML, "  ")
		if w.output != os.Stdout {
			t.Error("expected stdout for empty path")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		w := NewFileWriterOrStdout(FormatYAML, path)
		if err := w.Serialize(context.Background(), testConfig{Name: "file", Value: 1}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("second Close failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.Contains(string(data), "name: file") {
			t.Errorf("unexpected file content: %s", data)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
		if w.output != os.Stdout {
			t.Error("expected stdout fallback for invalid path")
		}
	})
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%s should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}
