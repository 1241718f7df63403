// Copyright (c) 2025 LakeBridge AI and/or its affiliates.
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

package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const HttpClientTimeoutTime = 30

var RequestParamErr = errors.New("workspace request param invalid error")

// APIError is a structured error returned by workspace REST APIs. It is
// propagated to callers unmodified; this layer adds no retry or backoff.
type APIError struct {
	StatusCode int
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("workspace api error (status %d, code %s): %s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsNotFound reports whether the error represents a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.ErrorCode == "RESOURCE_DOES_NOT_EXIST"
}

// Request is a single authenticated call against a workspace REST API.
type Request struct {
	TokenSource oauth2.TokenSource
	HTTPClient  *http.Client
	Method      string
	Host        string // scheme included, e.g. https://adb-1234.cloud.example.com
	Path        string
	Queries     map[string]string
	Body        interface{}
}

func (r Request) validate() error {
	if r.TokenSource == nil {
		return RequestParamErr
	}
	m := strings.ToUpper(r.Method)
	switch m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
	default:
		return RequestParamErr
	}
	if r.Host == "" {
		return RequestParamErr
	}
	if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
		return RequestParamErr
	}
	return nil
}

// Do executes the request and decodes a JSON response into out (when out
// is non-nil). Non-2xx responses are returned as *APIError.
func (r Request) Do(ctx context.Context, out interface{}) error {
	req, err := r.buildRequest(ctx)
	if err != nil {
		return err
	}

	client := r.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: HttpClientTimeoutTime * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}

func (r Request) buildRequest(ctx context.Context) (*http.Request, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	token, err := r.TokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace token: %w", err)
	}

	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := strings.TrimRight(r.Host, "/") + r.Path
	if len(r.Queries) > 0 {
		queries := make(url.Values)
		for key, value := range r.Queries {
			queries.Set(key, value)
		}
		u += "?" + queries.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(r.Method), u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	token.SetAuthHeader(req)
	return req, nil
}
