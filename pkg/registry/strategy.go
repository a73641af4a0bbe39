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

package registry

import (
	"strings"

	"github.com/NVIDIA/shampug/pkg/errors"
)

// Strategy selects how a registry instance is shared.
type Strategy int

const (
	// Unspecified is the zero Strategy; it is never valid.
	Unspecified Strategy = iota
	// Global shares one process-wide registry.
	Global
	// PerContext shares one registry per scope attached with WithScope.
	PerContext
	// NewInstance creates a private registry on every resolution.
	NewInstance
)

var strategyNames = map[Strategy]string{
	Unspecified: "unspecified",
	Global:      "global",
	PerContext:  "per-context",
	NewInstance: "new-instance",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.NewReplacer("_", "-").Replace(strings.TrimSpace(s))) {
	case "global":
		return Global, nil
	case "per-context", "per-thread", "context":
		return PerContext, nil
	case "new-instance", "new", "instance":
		return NewInstance, nil
	default:
		return Unspecified, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown registry strategy", map[string]any{"strategy": s})
	}
}

// Strategies returns the valid strategy names.
func Strategies() []string {
	return []string{Global.String(), PerContext.String(), NewInstance.String()}
}
