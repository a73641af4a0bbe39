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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/shampug/pkg/header"
	"github.com/NVIDIA/shampug/pkg/record"
	"github.com/NVIDIA/shampug/pkg/serializer"
)

func TestDrawResultTable(t *testing.T) {
	entries := []record.Entry{
		record.New("pugs").Set("name", record.Text("Emmy")).Set("weight", record.Float(5)),
		record.New("pugs").Set("name", record.Text("Baby")).Set("color", record.Char('S')),
	}
	res := NewDrawResult("pugs", "v1", entries)

	assert.Equal(t, header.KindDrawResult, res.Kind)
	assert.Equal(t, "v1", res.Metadata["version"])
	assert.Equal(t, []string{"color", "name", "weight"}, res.TableColumns())
	assert.Equal(t, [][]string{{"", "Emmy", "5"}, {"S", "Baby", ""}}, res.TableRows())

	var buf bytes.Buffer
	require.NoError(t, serializer.NewWriter(serializer.FormatTable, &buf).Serialize(context.Background(), res))
	assert.Contains(t, buf.String(), "COLOR")
	assert.Contains(t, buf.String(), "Emmy")
}

func TestValuesResult(t *testing.T) {
	lines := NewLineResult("[name]", "", []string{"Emmy"})
	assert.Equal(t, header.KindLineResult, lines.Kind)
	assert.Equal(t, []string{"line"}, lines.TableColumns())
	assert.Equal(t, [][]string{{"Emmy"}}, lines.TableRows())

	values := NewPatternResult(`\d`, "", nil)
	assert.Equal(t, header.KindPatternResult, values.Kind)
	assert.Equal(t, []string{"value"}, values.TableColumns())
	assert.NotNil(t, values.Values)
	assert.Empty(t, values.TableRows())
}
