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
	"fmt"
	"maps"
	"slices"

	"github.com/NVIDIA/shampug/pkg/header"
	"github.com/NVIDIA/shampug/pkg/record"
)

// DrawResult lists records drawn from one category.
type DrawResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Category string           `json:"category" yaml:"category"`
	Records  []map[string]any `json:"records" yaml:"records"`
}

// NewDrawResult builds a DrawResult from drawn entries.
func NewDrawResult(category, version string, entries []record.Entry) *DrawResult {
	res := &DrawResult{Category: category, Records: make([]map[string]any, 0, len(entries))}
	res.Init(header.KindDrawResult, version)
	for _, e := range entries {
		res.Records = append(res.Records, record.NativeFields(e))
	}
	return res
}

// TableColumns implements serializer.Tabular.
func (r *DrawResult) TableColumns() []string {
	seen := make(map[string]struct{})
	for _, rec := range r.Records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// TableRows implements serializer.Tabular.
func (r *DrawResult) TableRows() [][]string {
	cols := r.TableColumns()
	rows := make([][]string, 0, len(r.Records))
	for _, rec := range r.Records {
		row := make([]string, len(cols))
		for i, c := range cols {
			if v, ok := rec[c]; ok {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ValuesResult lists generated strings, either composed lines or pattern
// expansions.
type ValuesResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Source string   `json:"source" yaml:"source"`
	Values []string `json:"values" yaml:"values"`
}

// NewLineResult builds a LineResult for lines composed from template.
func NewLineResult(template, version string, lines []string) *ValuesResult {
	return newValuesResult(header.KindLineResult, template, version, lines)
}

// NewPatternResult builds a PatternResult for values matching pattern.
func NewPatternResult(pattern, version string, values []string) *ValuesResult {
	return newValuesResult(header.KindPatternResult, pattern, version, values)
}

func newValuesResult(kind header.Kind, source, version string, values []string) *ValuesResult {
	res := &ValuesResult{Source: source, Values: values}
	res.Init(kind, version)
	if res.Values == nil {
		res.Values = []string{}
	}
	return res
}

// TableColumns implements serializer.Tabular.
func (r *ValuesResult) TableColumns() []string {
	if r.Kind == header.KindPatternResult {
		return []string{"value"}
	}
	return []string{"line"}
}

// TableRows implements serializer.Tabular.
func (r *ValuesResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Values))
	for _, v := range r.Values {
		rows = append(rows, []string{v})
	}
	return rows
}
