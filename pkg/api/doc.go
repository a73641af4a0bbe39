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

// Package api serves ShamPug draws over HTTP.
//
//	pug, _ := shampug.Setup().WithRegistryStrategy(registry.NewInstance).UsingSeed(1000).Create()
//	if err := api.Serve(ctx, pug); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (rate limited, GET only):
//   - /v1/records?category=pugs&count=3 - draw records from a category
//   - /v1/records?type=address           - draw from a built-in entry type
//   - /v1/lines?category=pugs&template=[name]+###&count=2
//   - /v1/patterns?pattern=[A-Z]{3}&limit=10&caseSensitive=false&count=5
//
// count defaults to 1 and is capped at defaults.MaxDrawCount. Out of range
// values are rejected with INVALID_BOUND, malformed ones with
// INVALID_REQUEST.
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/shampug/pkg/api.version=1.0.0'"
package api
