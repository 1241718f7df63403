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

package serving

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lakebridge-ai/lakebridge-go/auth"
	"github.com/lakebridge-ai/lakebridge-go/integrations/restclient"
	"golang.org/x/oauth2"
)

const endpointsBasePath = "/api/2.0/serving-endpoints"

// Endpoint is the workspace descriptor of a model serving endpoint.
type Endpoint struct {
	Name  string `json:"name"`
	State struct {
		Ready string `json:"ready,omitempty"`
	} `json:"state,omitempty"`
	Task string `json:"task,omitempty"`
}

// ClientConfig configures a serving-endpoints client.
type ClientConfig struct {
	Credentials *auth.Credentials
	HTTPClient  *http.Client
}

// Client looks up model serving endpoints in the workspace.
type Client struct {
	host        string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

func NewClient(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		cfg = &ClientConfig{}
	}
	cred, err := auth.ResolveCredentials(cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("serving endpoints: %w", err)
	}
	return &Client{
		host:        cred.Host,
		tokenSource: cred.TokenSource(ctx),
		httpClient:  cfg.HTTPClient,
	}, nil
}

// Get looks up an endpoint by name. A missing endpoint is an expected
// outcome and reported through the found flag; only genuine failures are
// returned as errors.
func (c *Client) Get(ctx context.Context, endpointName string) (*Endpoint, bool, error) {
	var endpoint Endpoint
	err := restclient.Request{
		TokenSource: c.tokenSource,
		HTTPClient:  c.httpClient,
		Method:      http.MethodGet,
		Host:        c.host,
		Path:        endpointsBasePath + "/" + url.PathEscape(endpointName),
	}.Do(ctx, &endpoint)
	if err != nil {
		var apiErr *restclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &endpoint, true, nil
}
