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

// Package template composes text lines from record fields.
//
// A template is a whitespace-separated list of tokens. Every token is
// stripped down to [a-zA-Z0-9#], then resolved against a record in order:
//
//  1. a field with a value renders as the value,
//  2. a declared field without a value renders as its own name,
//  3. a token starting with '#' renders as a random number with one digit
//     per character ("###" gives 100..999),
//  4. anything else is copied literally.
//
// Example:
//
//	t := template.Parse("[street] ### [city]")
//	line, err := t.Render(addr, src)
//	// "Main 472 Bern"
package template
