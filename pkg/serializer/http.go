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


package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/NVIDIA/shampug/pkg/defaults"
	"github.com/NVIDIA/shampug/pkg/errors"
)

// RespondJSON encodes data and writes it with statusCode. Nothing is sent
// until encoding succeeds, so a failure yields a clean 500.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(data); err != nil {
		slog.Error("response encoding failed", "error", err, "type", fmt.Sprintf("%T", data))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := body.WriteTo(w); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// HttpReaderUserAgent is sent with every fixture download.
const HttpReaderUserAgent = "ShamPug-Serializer/1.0"

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches remote fixture files.
type HttpReader struct {
	UserAgent          string
	TotalTimeout       time.Duration
	InsecureSkipVerify bool
	Client             *http.Client

	// MaxBytes caps the body size; zero means defaults.MaxFixtureBytes.
	MaxBytes int64
}

// WithUserAgent overrides HttpReaderUserAgent.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout bounds each request end to end.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.TotalTimeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate checks on the default transport.
func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithMaxBytes caps the accepted body size.
func WithMaxBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		r.MaxBytes = n
	}
}

// WithClient uses client as is. Timeout and TLS options are not applied to it.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates a new HttpReader with the specified options.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:    HttpReaderUserAgent,
		TotalTimeout: defaults.HTTPClientTimeout,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.Client == nil {
		r.Client = &http.Client{
			Timeout:   r.TotalTimeout,
			Transport: newTransport(r.InsecureSkipVerify),
		}
	}
	return r
}

func newTransport(insecure bool) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: insecure, //nolint:gosec // opt-in for self-signed fixture hosts
		},
	}
}

// Read fetches url with a background context.
func (r *HttpReader) Read(url string) ([]byte, error) {
	return r.ReadWithContext(context.Background(), url)
}

// ReadWithContext fetches url and returns the body. A 404 is reported as
// NOT_FOUND, server errors and transport failures as SERVICE_UNAVAILABLE,
// and bodies over MaxBytes as INVALID_REQUEST.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "url is empty")
	}
	if r.Client == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "http client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid url", err,
			map[string]any{"url": url})
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "fetch failed", err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "remote file not found",
			map[string]any{"url": url})
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable, "remote server error",
			map[string]any{"url": url, "status": resp.StatusCode})
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "unexpected response status",
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	limit := r.MaxBytes
	if limit <= 0 {
		limit = defaults.MaxFixtureBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to read response body", err,
			map[string]any{"url": url})
	}
	if int64(len(data)) > limit {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "remote file too large",
			map[string]any{"url": url, "limit": limit})
	}
	return data, nil
}

// Download fetches url into filePath, readable by the owner only.
func (r *HttpReader) Download(ctx context.Context, url, filePath string) error {
	data, err := r.ReadWithContext(ctx, url)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write file", err,
			map[string]any{"path": filePath})
	}
	return nil
}
