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

package vectorsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lakebridge-ai/lakebridge-go/auth"
	"github.com/lakebridge-ai/lakebridge-go/integrations/restclient"
	"golang.org/x/oauth2"
)

const indexesBasePath = "/api/2.0/vector-search/indexes"

// ClientConfig configures a Vector Search client. Credentials missing
// here are resolved from the environment and the global configuration.
type ClientConfig struct {
	Credentials *auth.Credentials
	HTTPClient  *http.Client
}

// Client talks to the workspace Vector Search REST API.
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
		return nil, fmt.Errorf("vector search: %w", err)
	}
	return &Client{
		host:        cred.Host,
		tokenSource: cred.TokenSource(ctx),
		httpClient:  cfg.HTTPClient,
	}, nil
}

// GetIndex resolves an index by its fully qualified name and returns a
// handle for queries. A missing index surfaces as the service's
// not-found *restclient.APIError, unmodified.
func (c *Client) GetIndex(ctx context.Context, indexName string) (*Index, error) {
	var info IndexInfo
	err := restclient.Request{
		TokenSource: c.tokenSource,
		HTTPClient:  c.httpClient,
		Method:      http.MethodGet,
		Host:        c.host,
		Path:        indexesBasePath + "/" + url.PathEscape(indexName),
	}.Do(ctx, &info)
	if err != nil {
		return nil, err
	}
	return &Index{client: c, info: &info}, nil
}

// Index is a handle to a single Vector Search index.
type Index struct {
	client *Client
	info   *IndexInfo
}

// Info returns the descriptor fetched when the handle was created.
func (i *Index) Info() *IndexInfo {
	return i.info
}

// SimilaritySearch submits a query and returns the scored rows.
func (i *Index) SimilaritySearch(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("vector search: query request is nil")
	}
	var resp QueryResponse
	err := restclient.Request{
		TokenSource: i.client.tokenSource,
		HTTPClient:  i.client.httpClient,
		Method:      http.MethodPost,
		Host:        i.client.host,
		Path:        indexesBasePath + "/" + url.PathEscape(i.info.Name) + "/query",
		Body:        req,
	}.Do(ctx, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
