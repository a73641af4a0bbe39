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


package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindFixtureSet, true},
		{KindDrawResult, true},
		{KindLineResult, true},
		{KindPatternResult, true},
		{Kind("Inventory"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindDrawResult), WithMetadata("seed", "1000"))
	assert.Equal(t, KindDrawResult, h.GetKind())
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "1000", h.GetMetadata()["seed"])

	h = New(WithAPIVersion("v0"))
	assert.Equal(t, "v0", h.APIVersion)
	assert.NotNil(t, h.Metadata)
}

func TestWithMetadataNilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, "v", h.Metadata["k"])
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindLineResult, "v1.2.3")

	assert.Equal(t, KindLineResult, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.NotContains(t, h.Metadata, "stale")
	assert.Equal(t, "v1.2.3", h.Metadata["version"])

	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)

	h.Init(KindLineResult, "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestInlineYAML(t *testing.T) {
	type doc struct {
		Header `yaml:",inline"`
		Items  []string `yaml:"items"`
	}

	var d doc
	d.SetKind(KindPatternResult)
	d.APIVersion = APIVersion
	d.Items = []string{"a"}

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: PatternResult\n")
	assert.Contains(t, string(out), "apiVersion: "+APIVersion+"\n")

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, d.Kind, back.Kind)
	assert.Equal(t, d.Items, back.Items)
}
