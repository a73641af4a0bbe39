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

package defaults

// Generation defaults shared by the facade, the CLI and the server.
const (
	// Seed is the seed used by the ready-made global instance.
	Seed int64 = 1000

	// RepetitionLimit caps unbounded quantifiers (*, +, {n,}) in patterns.
	RepetitionLimit = 100

	// CaseSensitive is the default pattern matching mode.
	CaseSensitive = true

	// MaxDrawCount caps the number of values returned by one server request.
	MaxDrawCount = 1000

	// MaxFixtureBytes caps the size of one remote fixture file.
	MaxFixtureBytes int64 = 32 << 20
)
