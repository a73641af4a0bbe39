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


// Package fixture reads and writes fixture documents.
//
// A FixtureSet document groups records by category:
//
//	kind: FixtureSet
//	apiVersion: shampug.nvidia.com/v1alpha1
//	categories:
//	  - name: pugs
//	    kinds: {color: char}
//	    records:
//	      - {name: Baby, weight: 6.5, leader: false, color: S}
//	      - {name: Emmy, weight: 5.0, leader: false, color: B}
//
// Field kinds are inferred from the decoded value unless listed in kinds.
// A bare map of category to record list, without header, is accepted as
// well:
//
//	{"pugs": [{"name": "Baby"}, {"name": "Emmy"}]}
//
// Categories with type address hold postal addresses instead of plain
// records. Their lines map composes name, street, city or additional lines
// from templates, and they are stored under address.Category.
//
// Load a document and register its records:
//
//	doc, err := fixture.LoadFile(ctx, "pugs.yaml")
//	if err != nil {
//	    return err
//	}
//	if _, err := fixture.Apply(pug, doc); err != nil {
//	    return err
//	}
//
// Snapshot goes the other way and captures a registry as a document.
// DrawResult and ValuesResult are the documents written by the CLI and
// returned by the server.
package fixture
