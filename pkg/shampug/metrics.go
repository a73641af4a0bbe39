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

package shampug

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

var (
	draws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shampug_draws_total",
			Help: "Total number of record draws by result",
		},
		[]string{"result"},
	)

	patterns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shampug_patterns_total",
			Help: "Total number of pattern expansions by result",
		},
		[]string{"result"},
	)
)
