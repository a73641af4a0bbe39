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


// Package server provides the HTTP plumbing for the shampug fixture service.
//
// Application handlers are registered by path and wrapped in a fixed
// middleware chain:
//
//   - metrics: request count, latency and in-flight gauge (Prometheus)
//   - version: API version negotiation via the Accept header
//   - request id: X-Request-Id, generated when absent or not a UUID
//   - panic recovery: converts panics into 500 responses
//   - rate limiting: token bucket (golang.org/x/time/rate)
//   - logging: structured request logs at debug level
//
// System endpoints bypass the chain:
//
//   - GET /health  - liveness
//   - GET /ready   - readiness, 503 until serving and during shutdown
//   - GET /metrics - Prometheus metrics
//   - GET /        - name, version and route listing
//
// # Usage
//
//	s := server.New(
//	    server.WithName("shampug"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/records": h.HandleRecords,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on context cancellation, SIGINT or SIGTERM, and drains in-flight
// requests for up to Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig reads two environment variables:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//
// # Errors
//
// Every error body is an ErrorResponse:
//
//	{
//	  "code": "CATEGORY_NOT_FOUND",
//	  "message": "no \"cats\" records available",
//	  "details": {"category": "cats"},
//	  "requestId": "3f0f7ac2-...",
//	  "timestamp": "2025-12-30T10:30:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the status from the error code: 400 for bad
// arguments, 404 for missing categories, 429 when rate limited and 500
// otherwise.
package server
