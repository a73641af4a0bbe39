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

// Typed setters for the declared fields.

func (a *Address) SetTitle(v string) *Address      { return a.Set(Title, v) }
func (a *Address) SetFirstName(v string) *Address  { return a.Set(FirstName, v) }
func (a *Address) SetMiddleName(v string) *Address { return a.Set(MiddleName, v) }
func (a *Address) SetLastName(v string) *Address   { return a.Set(LastName, v) }
func (a *Address) SetStreet(v string) *Address     { return a.Set(Street, v) }
func (a *Address) SetZipcode(v string) *Address    { return a.Set(Zipcode, v) }
func (a *Address) SetState(v string) *Address      { return a.Set(State, v) }
func (a *Address) SetCity(v string) *Address       { return a.Set(City, v) }
func (a *Address) SetCountry(v string) *Address    { return a.Set(Country, v) }
func (a *Address) SetContinent(v string) *Address  { return a.Set(Continent, v) }

// Typed getters; unset fields read as empty strings.

func (a *Address) Title() string      { return a.text(Title) }
func (a *Address) FirstName() string  { return a.text(FirstName) }
func (a *Address) MiddleName() string { return a.text(MiddleName) }
func (a *Address) LastName() string   { return a.text(LastName) }
func (a *Address) Street() string     { return a.text(Street) }
func (a *Address) Zipcode() string    { return a.text(Zipcode) }
func (a *Address) State() string      { return a.text(State) }
func (a *Address) City() string       { return a.text(City) }
func (a *Address) Country() string    { return a.text(Country) }
func (a *Address) Continent() string  { return a.text(Continent) }

// NameLine returns the composed name line.
func (a *Address) NameLine() (string, error) { return a.ComposeLine(NameLine) }

// StreetLine returns the composed street line.
func (a *Address) StreetLine() (string, error) { return a.ComposeLine(StreetLine) }

// CityLine returns the composed city line.
func (a *Address) CityLine() (string, error) { return a.ComposeLine(CityLine) }

// AdditionalLine returns the composed additional line.
func (a *Address) AdditionalLine() (string, error) { return a.ComposeLine(AdditionalLine) }
