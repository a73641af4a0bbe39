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


package server

import (
	stderrors "errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/shampug/pkg/errors"
	"github.com/NVIDIA/shampug/pkg/serializer"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a status and writes it. A StructuredError
// contributes its code, message and context; anything else is reported as
// an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		details := mergeDetails(extraDetails, nil)
		if err != nil {
			details["error"] = err.Error()
		}
		WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			fallbackMessage, true, details)
		return
	}

	details := mergeDetails(extraDetails, se.Context)
	if se.Cause != nil {
		details["error"] = se.Cause.Error()
	}
	message := se.Message
	if message == "" {
		message = fallbackMessage
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, message,
		retryableFromCode(se.Code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest,
		errors.ErrCodeInvalidBound,
		errors.ErrCodeInvalidRange,
		errors.ErrCodeInvalidPattern,
		errors.ErrCodeNullArgument,
		errors.ErrCodeConfigurationConflict,
		errors.ErrCodeMissingConfiguration:
		return http.StatusBadRequest
	case errors.ErrCodeCategoryNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeRateLimitExceeded, errors.ErrCodeUnavailable, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(extra, ctx map[string]any) map[string]any {
	out := make(map[string]any, len(extra)+len(ctx)+1)
	maps.Copy(out, ctx)
	maps.Copy(out, extra)
	return out
}
