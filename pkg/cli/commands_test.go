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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/NVIDIA/shampug/pkg/fixture"
	"github.com/NVIDIA/shampug/pkg/header"
	"github.com/NVIDIA/shampug/pkg/serializer"
)

const pugFixtures = "../fixture/testdata/pugs.yaml"

// run executes the root command with args and returns the JSON output
// file. The output flags are placed right after the subcommand name.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.json")
	full := []string{name}
	for i, a := range args {
		full = append(full, a)
		if slices.Contains([]string{"draw", "line", "pattern", "fixtures"}, a) {
			full = append(full, "-o", out, "-t", "json")
			full = append(full, args[i+1:]...)
			break
		}
	}

	if err := newRootCmd().Run(context.Background(), full); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return data, nil
}

func TestDrawCommand(t *testing.T) {
	data, err := run(t, "--seed", "1000", "-f", pugFixtures, "draw", "-c", "pugs", "-n", "3")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	var res fixture.DrawResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if res.Kind != header.KindDrawResult {
		t.Errorf("kind = %q, want %q", res.Kind, header.KindDrawResult)
	}
	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(res.Records))
	}
	if got := res.Records[0]["name"]; got != "Emmy" {
		t.Errorf("first draw = %v, want Emmy", got)
	}
}

func TestDrawCommandReproducible(t *testing.T) {
	args := []string{"--seed", "7", "-f", pugFixtures, "draw", "-c", "pugs", "-n", "20"}
	a, err := run(t, args...)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := run(t, args...)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	var ra, rb fixture.DrawResult
	if err := json.Unmarshal(a, &ra); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, &rb); err != nil {
		t.Fatal(err)
	}
	for i := range ra.Records {
		if ra.Records[i]["name"] != rb.Records[i]["name"] {
			t.Fatalf("draw %d differs: %v != %v", i, ra.Records[i]["name"], rb.Records[i]["name"])
		}
	}
}

func TestDrawCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"unknown category", []string{"-f", pugFixtures, "draw", "-c", "cats"}, "failed to draw"},
		{"missing category", []string{"-f", pugFixtures, "draw"}, "--category or --type is required"},
		{"bad count", []string{"-f", pugFixtures, "draw", "-c", "pugs", "-n", "0"}, "count must be positive"},
		{"missing fixture file", []string{"-f", "testdata/none.yaml", "draw", "-c", "pugs"}, "failed to load fixtures"},
		{"bad strategy", []string{"--strategy", "shared", "draw", "-c", "pugs"}, "invalid strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDrawCommandPerContext(t *testing.T) {
	data, err := run(t, "--strategy", "per-context", "--seed", "1000", "-f", pugFixtures, "draw", "-c", "towns")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	var res fixture.DrawResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Category != "towns" || len(res.Records) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestLineCommand(t *testing.T) {
	data, err := run(t, "--seed", "1000", "-f", pugFixtures,
		"line", "-c", "pugs", "--template", "[name] weighs [weight] kg, tag ###", "-n", "2")
	if err != nil {
		t.Fatalf("line failed: %v", err)
	}

	var res fixture.ValuesResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Kind != header.KindLineResult {
		t.Errorf("kind = %q", res.Kind)
	}
	if len(res.Values) != 2 {
		t.Fatalf("got %d lines, want 2", len(res.Values))
	}
	if !regexp.MustCompile(`^Emmy weighs 5 kg tag [1-9]\d\d$`).MatchString(res.Values[0]) {
		t.Errorf("first line = %q", res.Values[0])
	}

	if _, err := run(t, "-f", pugFixtures, "line", "-c", "pugs"); err == nil {
		t.Error("expected error without --template")
	}
}

func TestPatternCommand(t *testing.T) {
	data, err := run(t, "--seed", "42", "pattern", "-n", "5", "--limit", "4", `[A-Z]{2}-\d+`)
	if err != nil {
		t.Fatalf("pattern failed: %v", err)
	}

	var res fixture.ValuesResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Kind != header.KindPatternResult {
		t.Errorf("kind = %q", res.Kind)
	}
	re := regexp.MustCompile(`^[A-Z]{2}-\d{1,4}$`)
	for _, v := range res.Values {
		if !re.MatchString(v) {
			t.Errorf("value %q does not match %s", v, re)
		}
	}

	if _, err := run(t, "pattern"); err == nil {
		t.Error("expected error without a pattern")
	}
	if _, err := run(t, "pattern", "("); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestFixturesCommand(t *testing.T) {
	dir := t.TempDir()
	bare := filepath.Join(dir, "extra.json")
	if err := os.WriteFile(bare, []byte(`{"towns": [{"name": "Bern", "zip": 3000}, {"name": "Chur", "zip": 7000}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := run(t, "-f", pugFixtures, "-f", bare, "fixtures")
	if err != nil {
		t.Fatalf("fixtures failed: %v", err)
	}

	doc, err := fixture.Load(strings.NewReader(string(data)), serializer.FormatJSON)
	if err != nil {
		t.Fatalf("merged output is not a valid fixture document: %v", err)
	}
	if got := doc.String(); got != "FixtureSet(2 categories, 9 records)" {
		t.Errorf("summary = %q", got)
	}
	if doc.Metadata["version"] != version {
		t.Errorf("version = %q, want %q", doc.Metadata["version"], version)
	}

	if _, err := run(t, "fixtures"); err == nil {
		t.Error("expected error without fixture files")
	}
}
