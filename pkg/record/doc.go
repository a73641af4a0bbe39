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

// Package record defines the fixture records stored in a registry.
//
// A Record is a set of named Values under a category fixed at construction.
// Values are a closed set of kinds: text, integer, float, boolean and char.
//
//	pug := record.New("pugs").
//	    Set("name", record.Text("Emmy")).
//	    Set("weight", record.Float(5.0)).
//	    Set("leader", record.Bool(false))
//
// Two records are equal when their identities match; the identity is the
// concatenation of the field values as text in field-name order. Declared
// tokens default to the bound field names and can be fixed with WithTokens,
// which is what lets an unset field render as its own name in a line
// template.
package record
