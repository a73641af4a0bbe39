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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/random"
	"github.com/NVIDIA/shampug/pkg/record"
)

func sample(t *testing.T, opts ...Option) *Address {
	t.Helper()
	return New(random.NewSeeded(1000), opts...).
		SetTitle("Dr.").
		SetFirstName("Ada").
		SetLastName("Lovelace").
		SetStreet("Baker").
		SetZipcode("NW1").
		SetCity("London")
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "github.com/NVIDIA/shampug/pkg/address.Address", Category)
	assert.Equal(t, Category, New(nil).Key())
}

func TestDeclaredTokens(t *testing.T) {
	a := New(nil)
	assert.Equal(t, Tokens(), a.Tokens())
	assert.Len(t, a.Tokens(), 10)
}

func TestAccessors(t *testing.T) {
	a := sample(t).SetCountry("UK").SetContinent("Europe").SetState("Greater London").SetMiddleName("K")

	assert.Equal(t, "Dr.", a.Title())
	assert.Equal(t, "Ada", a.FirstName())
	assert.Equal(t, "K", a.MiddleName())
	assert.Equal(t, "Lovelace", a.LastName())
	assert.Equal(t, "Baker", a.Street())
	assert.Equal(t, "NW1", a.Zipcode())
	assert.Equal(t, "Greater London", a.State())
	assert.Equal(t, "London", a.City())
	assert.Equal(t, "UK", a.Country())
	assert.Equal(t, "Europe", a.Continent())
	assert.Equal(t, "", New(nil).City())
}

func TestDefaultNameLine(t *testing.T) {
	a := sample(t, WithDefaultNameTemplate())

	line, err := a.NameLine()
	require.NoError(t, err)
	// middlename is declared but unset
	assert.Equal(t, "Dr. Ada middlename Lovelace", line)

	tpl, ok := a.Template(NameLine)
	require.True(t, ok)
	assert.Equal(t, DefaultNameLine, tpl)
}

func TestStreetLineWithNumber(t *testing.T) {
	a := sample(t, WithTemplate(StreetLine, "[street] Street ###"))

	line, err := a.StreetLine()
	require.NoError(t, err)
	assert.Regexp(t, `^Baker Street [1-9]\d\d$`, line)

	again, err := a.StreetLine()
	require.NoError(t, err)
	assert.Equal(t, line, again, "lines are cached")
}

func TestCacheDroppedOnSet(t *testing.T) {
	a := sample(t, WithTemplate(CityLine, "[zipcode] [city]"))

	line, err := a.CityLine()
	require.NoError(t, err)
	assert.Equal(t, "NW1 London", line)

	a.SetCity("Bath")
	line, err = a.CityLine()
	require.NoError(t, err)
	assert.Equal(t, "NW1 Bath", line)

	a.SetTemplate(CityLine, "[city]")
	line, err = a.CityLine()
	require.NoError(t, err)
	assert.Equal(t, "Bath", line)
}

func TestMissingTemplate(t *testing.T) {
	a := sample(t)
	_, err := a.AdditionalLine()
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingConfiguration))

	_, ok := a.Template(AdditionalLine)
	assert.False(t, ok)

	_, err = a.ComposeLine(Line(9))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestCompare(t *testing.T) {
	opts := []Option{
		WithDefaultNameTemplate(),
		WithTemplate(StreetLine, "[street]"),
		WithTemplate(CityLine, "[city]"),
	}
	a := sample(t, opts...)
	b := sample(t, opts...).SetLastName("Byron")

	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Positive(t, c)

	c, err = a.Compare(a)
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = a.Compare(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = sample(t).Compare(a)
	assert.Error(t, err)
}

func TestIsEntry(t *testing.T) {
	var e record.Entry = sample(t)
	v, ok := e.Get(City)
	require.True(t, ok)
	assert.Equal(t, "London", v.String())
	assert.Equal(t, sample(t).Identity(), e.Identity())
	assert.Equal(t, Category, sample(t).Record().Key())
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "name", NameLine.String())
	assert.Equal(t, "additional", AdditionalLine.String())
	assert.Equal(t, "unknown", Line(-1).String())
}
