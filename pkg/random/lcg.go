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

package random

// 48-bit linear congruential generator parameters.
const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = 1<<48 - 1
)

// lcg is a 48-bit linear congruential stream. Its output depends only on the
// seed, so seeded sequences are stable across processes and Go releases.
// It is not safe for concurrent use; Source serializes access.
type lcg struct {
	state uint64
}

// newLCG scrambles seed into the initial state.
func newLCG(seed int64) *lcg {
	return &lcg{state: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

// next advances the stream and returns its top bits.
func (l *lcg) next(bits uint) uint64 {
	l.state = (l.state*lcgMultiplier + lcgAddend) & lcgMask
	return l.state >> (48 - bits)
}

// Uint64 implements math/rand/v2.Source by joining two 32-bit outputs.
func (l *lcg) Uint64() uint64 {
	return l.next(32)<<32 | l.next(32)
}
