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

// Package cli implements the shampug command line.
//
// # Commands
//
// draw - Draw random records:
//
//	shampug --seed 1000 -f pugs.yaml draw --category pugs --count 3
//
// line - Compose lines from drawn records:
//
//	shampug -f pugs.yaml line -c pugs --template "[name] weighs [weight] kg"
//
// pattern - Generate strings matching a regular expression:
//
//	shampug pattern -n 5 --limit 8 "[a-z]+@example\.com"
//
// fixtures - Validate and merge fixture files into one FixtureSet:
//
//	shampug -f pugs.yaml -f towns.json fixtures -o merged.yaml
//
// serve - Serve the loaded fixtures over HTTP, see package api:
//
//	shampug --seed 1000 -f pugs.yaml serve --port 8080
//
// # Global Flags
//
//	--seed           Seed for reproducible draws (env: SHAMPUG_SEED)
//	--fixtures, -f   Fixture file or URL, repeatable (env: SHAMPUG_FIXTURES)
//	--strategy       Registry strategy: global, per-context, new-instance
//	--log-level      debug, info, warn, error (env: LOG_LEVEL)
//
// Output commands also take --output, -o (default: stdout) and
// --format, -t (yaml, json, table; default: yaml).
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or generation failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/shampug/pkg/cli.version=1.0.0'"
package cli
