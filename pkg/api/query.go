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

package api

import (
	"net/http"
	"strconv"

	"github.com/NVIDIA/shampug/pkg/address"
	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/errors"
)

// Query parameter names.
const (
	ParamCategory      = "category"
	ParamType          = "type"
	ParamCount         = "count"
	ParamTemplate      = "template"
	ParamPattern       = "pattern"
	ParamLimit         = "limit"
	ParamCaseSensitive = "caseSensitive"
)

// builtinTypes maps the type parameter to the category of a built-in
// entry type.
var builtinTypes = map[string]string{
	"address": address.Category,
}

// parseCategory resolves the category from either the category or the type
// parameter. Exactly one of them is required.
func parseCategory(r *http.Request) (string, error) {
	q := r.URL.Query()
	category, typ := q.Get(ParamCategory), q.Get(ParamType)

	switch {
	case category != "" && typ != "":
		return "", errors.New(errors.ErrCodeInvalidRequest, "category and type are mutually exclusive")
	case category != "":
		return category, nil
	case typ != "":
		c, ok := builtinTypes[typ]
		if !ok {
			return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown record type",
				map[string]any{"type": typ})
		}
		return c, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidRequest, "category or type is required")
	}
}

// parseCount reads the count parameter, defaulting to 1.
func parseCount(r *http.Request) (int, error) {
	return parseBoundedInt(r, ParamCount, 1, 1, defaults.MaxDrawCount)
}

// parseLimit reads the repetition limit, defaulting to defaults.RepetitionLimit.
func parseLimit(r *http.Request) (int, error) {
	return parseBoundedInt(r, ParamLimit, defaults.RepetitionLimit, 1, defaults.RepetitionLimit*10)
}

func parseBoundedInt(r *http.Request, param string, def, lo, hi int) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "parameter must be an integer", err,
			map[string]any{"param": param, "value": raw})
	}
	if n < lo || n > hi {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidBound, "parameter out of range",
			map[string]any{"param": param, "value": n, "min": lo, "max": hi})
	}
	return n, nil
}

// parseCaseSensitive reads the caseSensitive flag, defaulting to true.
func parseCaseSensitive(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get(ParamCaseSensitive)
	if raw == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "parameter must be a boolean", err,
			map[string]any{"param": ParamCaseSensitive, "value": raw})
	}
	return b, nil
}

func requireParam(r *http.Request, param string) (string, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "required parameter missing",
			map[string]any{"param": param})
	}
	return v, nil
}
