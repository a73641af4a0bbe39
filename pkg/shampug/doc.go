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

// Package shampug generates reproducible random test fixtures.
//
// Register records under categories, then draw one uniformly at random:
//
//	pug, err := shampug.Setup().
//	    WithRegistryStrategy(registry.NewInstance).
//	    UsingSeed(1000).
//	    Create()
//	if err != nil {
//	    return err
//	}
//
//	_ = pug.Put(
//	    record.New("pugs").Set("name", record.Text("Baby")),
//	    record.New("pugs").Set("name", record.Text("Emmy")),
//	)
//
//	e, err := pug.Get("pugs")
//
// The same seed and the same insertion order always give the same draws.
// Line composes text from a drawn record, and Pattern returns strings that
// match a regular expression.
//
// # Configuration
//
//   - A registry strategy or an explicit registry is required
//     (MISSING_CONFIGURATION), but not both (CONFIGURATION_CONFLICT).
//   - A seed and a custom source are mutually exclusive
//     (CONFIGURATION_CONFLICT). With neither, draws are unseeded.
//   - The PerContext strategy needs a context carrying a registry scope,
//     see registry.WithScope.
package shampug
