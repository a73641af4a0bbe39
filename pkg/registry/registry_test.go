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

package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/record"
)

func pug(name string) *record.Record {
	return record.New("pugs").Set("name", record.Text(name))
}

func TestPutAndLookup(t *testing.T) {
	r := New(NewInstance)

	for _, name := range []string{"Baby", "Emmy", "Biene"} {
		added, err := r.Put("pugs", pug(name))
		require.NoError(t, err)
		assert.True(t, added)
	}

	got, ok := r.Lookup("pugs")
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, "Baby", got[0].Identity())
	assert.Equal(t, "Biene", got[2].Identity())
	assert.Equal(t, 3, r.Len("pugs"))
}

func TestPutDuplicateSuppressed(t *testing.T) {
	r := New(NewInstance)
	before := testutil.ToFloat64(registryPuts.WithLabelValues(NewInstance.String(), putDuplicate))

	added, err := r.Put("pugs", pug("Emmy"))
	require.NoError(t, err)
	require.True(t, added)

	added, err = r.Put("pugs", pug("Emmy"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, r.Len("pugs"))
	assert.Equal(t, before+1, testutil.ToFloat64(registryPuts.WithLabelValues(NewInstance.String(), putDuplicate)))
}

func TestPutRejectsNull(t *testing.T) {
	r := New(NewInstance)

	_, err := r.Put("pugs", nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNullArgument))

	_, err = r.Put("", pug("x"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeNullArgument))

	_, err = r.PutAll(pug("a"), nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNullArgument))
}

func TestPutAll(t *testing.T) {
	r := New(NewInstance)
	n, err := r.PutAll(pug("a"), pug("b"), pug("a"), record.New("cats").Set("n", record.Text("Tom")))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"cats", "pugs"}, r.Categories())
}

func TestLookupAbsent(t *testing.T) {
	r := New(NewInstance)
	got, ok := r.Lookup("nothing")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, r.Len("nothing"))
}

func TestLookupIsSnapshot(t *testing.T) {
	r := New(NewInstance)
	_, _ = r.Put("pugs", pug("a"))

	snap, _ := r.Lookup("pugs")
	_, _ = r.Put("pugs", pug("b"))

	assert.Len(t, snap, 1)
	assert.Equal(t, 2, r.Len("pugs"))
}

func TestClear(t *testing.T) {
	r := New(NewInstance)
	_, _ = r.Put("pugs", pug("a"))
	r.Clear()
	assert.Empty(t, r.Categories())
}

func TestConcurrentPutsLoseNothing(t *testing.T) {
	r := New(NewInstance)
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 250; i++ {
				if _, err := r.Put("n", pug(fmt.Sprintf("%d-%d", w, i))); err != nil {
					return err
				}
				_, _ = r.Lookup("n")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 2000, r.Len("n"))
}

func TestGetGlobalShared(t *testing.T) {
	a, err := Get(context.Background(), Global)
	require.NoError(t, err)
	b, err := Get(context.TODO(), Global)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Same(t, Default(), a)
	assert.Equal(t, Global, a.Strategy())
}

func TestGetNewInstanceIsolated(t *testing.T) {
	a, err := Get(context.Background(), NewInstance)
	require.NoError(t, err)
	b, err := Get(context.Background(), NewInstance)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	_, _ = a.Put("pugs", pug("Emmy"))
	assert.Equal(t, 0, b.Len("pugs"))
}

func TestGetPerContext(t *testing.T) {
	ctx1, release1 := WithScope(context.Background())
	defer release1()
	ctx2, release2 := WithScope(context.Background())
	defer release2()

	a, err := Get(ctx1, PerContext)
	require.NoError(t, err)
	again, err := Get(ctx1, PerContext)
	require.NoError(t, err)
	assert.Same(t, a, again, "same scope shares a registry")

	derived, cancel := context.WithCancel(ctx1)
	defer cancel()
	fromDerived, err := Get(derived, PerContext)
	require.NoError(t, err)
	assert.Same(t, a, fromDerived, "derived contexts share the scope")

	b, err := Get(ctx2, PerContext)
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	_, _ = a.Put("pugs", pug("Emmy"))
	assert.Equal(t, 0, b.Len("pugs"), "scopes are isolated")
}

func TestPerContextRelease(t *testing.T) {
	ctx, release := WithScope(context.Background())
	before := testutil.ToFloat64(activeScopes)

	a, err := Get(ctx, PerContext)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(activeScopes))

	release()
	release()
	assert.Equal(t, before, testutil.ToFloat64(activeScopes))

	b, err := Get(ctx, PerContext)
	require.NoError(t, err)
	assert.NotSame(t, a, b, "released scope starts over")
}

func TestGetPerContextWithoutScope(t *testing.T) {
	_, err := Get(context.Background(), PerContext)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingConfiguration))
}

func TestGetUnknownStrategy(t *testing.T) {
	_, err := Get(context.Background(), Unspecified)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
	_, err = Get(context.Background(), Strategy(42))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"global", Global, false},
		{"GLOBAL", Global, false},
		{"per-context", PerContext, false},
		{"PER_THREAD", PerContext, false},
		{"new-instance", NewInstance, false},
		{"NEW_INSTANCE", NewInstance, false},
		{"sometimes", Unspecified, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, name := range Strategies() {
		s, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	assert.Equal(t, "unknown", Strategy(99).String())
}
