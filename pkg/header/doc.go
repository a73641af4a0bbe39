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


// Package header provides the common header carried by shampug documents.
//
// Fixture files and the results produced by the CLI and server all start
// with the same three fields:
//
//	kind: FixtureSet
//	apiVersion: shampug.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.1.0
//
// Build one with functional options:
//
//	h := header.New(header.WithKind(header.KindDrawResult),
//	    header.WithMetadata("seed", "1000"))
//
// or reset an embedded header in place:
//
//	var res Result
//	res.Init(header.KindLineResult, version)
//
// Embed Header inline so its fields appear at the top level of the document:
//
//	type Result struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Items []string `json:"items" yaml:"items"`
//	}
package header
