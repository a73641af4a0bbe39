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

// Package random provides the bounded pseudo-random source used to draw
// fixture records.
//
// A Source wraps any math/rand/v2 Source and adds strict range semantics:
//
//   - Int32N and Int64N return values in [0, bound) and fail with
//     INVALID_BOUND when bound <= 0.
//   - Int32Range and Int64Range return values in [min, max) and fail with
//     INVALID_RANGE when min >= max.
//   - Hex returns two lowercase hex characters.
//   - Pattern, PatternN and PatternWith return strings matching a regular
//     expression; unbounded quantifiers are capped (100 by default).
//
// Bounded draws use rejection sampling, so every value in range is equally
// likely. Failed calls consume no entropy.
//
// Seeded sources are deterministic:
//
//	a := random.NewSeeded(1000)
//	b := random.NewSeeded(1000)
//	x, _ := a.Int32N(6)
//	y, _ := b.Int32N(6)
//	// x == y
//
// Unseeded sources (New) are keyed from crypto/rand. A Source may be shared
// across goroutines; WithSource and FromContext carry one through a context
// when each request should draw from its own stream.
package random
