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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lakebridge-ai/lakebridge-go/auth"
	"github.com/lakebridge-ai/lakebridge-go/integrations/restclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deltaSyncIndexInfo() *IndexInfo {
	return &IndexInfo{
		Name:         "main.docs.product_index",
		EndpointName: "vs-endpoint",
		PrimaryKey:   "id",
		IndexType:    IndexTypeDeltaSync,
		DeltaSyncIndexSpec: &DeltaSyncIndexSpec{
			SourceTable: "main.docs.product_table",
			EmbeddingSourceColumns: []EmbeddingSourceColumn{
				{Name: "text", EmbeddingModelEndpointName: "managed-embedder"},
			},
		},
	}
}

func newIndexTestServer(t *testing.T, info *IndexInfo, queryResp *QueryResponse, gotQuery **QueryRequest) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/2.0/vector-search/indexes/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != info.Name {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_code": "RESOURCE_DOES_NOT_EXIST",
				"message":    "index not found",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(info)
	})
	mux.HandleFunc("POST /api/2.0/vector-search/indexes/{name}/query", func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode query request: %v", err)
		}
		if gotQuery != nil {
			*gotQuery = &req
		}
		_ = json.NewEncoder(w).Encode(queryResp)
	})
	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), &ClientConfig{
		Credentials: &auth.Credentials{Host: serverURL, Token: "dapi-test"},
	})
	require.NoError(t, err)
	return client
}

func TestClient_GetIndex(t *testing.T) {
	info := deltaSyncIndexInfo()
	server := newIndexTestServer(t, info, nil, nil)
	defer server.Close()

	client := newTestClient(t, server.URL)

	t.Run("found", func(t *testing.T) {
		index, err := client.GetIndex(context.Background(), "main.docs.product_index")
		assert.NoError(t, err)
		assert.Equal(t, "main.docs.product_index", index.Info().Name)
		assert.Equal(t, IndexTypeDeltaSync, index.Info().IndexType)
		assert.Equal(t, "main.docs.product_table", index.Info().DeltaSyncIndexSpec.SourceTable)
	})

	t.Run("not_found_propagates", func(t *testing.T) {
		_, err := client.GetIndex(context.Background(), "main.docs.missing_index")
		assert.Error(t, err)
		var apiErr *restclient.APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.True(t, apiErr.IsNotFound())
	})
}

func TestIndex_SimilaritySearch(t *testing.T) {
	info := deltaSyncIndexInfo()
	queryResp := &QueryResponse{
		Manifest: ResultManifest{
			ColumnCount: 3,
			Columns:     []ColumnInfo{{Name: "id"}, {Name: "text"}, {Name: "score"}},
		},
		Result: ResultData{
			RowCount:  1,
			DataArray: [][]interface{}{{float64(1), "a", 0.9}},
		},
	}

	var gotQuery *QueryRequest
	server := newIndexTestServer(t, info, queryResp, &gotQuery)
	defer server.Close()

	client := newTestClient(t, server.URL)
	index, err := client.GetIndex(context.Background(), "main.docs.product_index")
	require.NoError(t, err)

	resp, err := index.SimilaritySearch(context.Background(), &QueryRequest{
		Columns:    []string{"id", "text"},
		QueryText:  "what is spark",
		NumResults: 5,
		QueryType:  QueryTypeANN,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Result.RowCount)
	assert.Equal(t, "what is spark", gotQuery.QueryText)
	assert.Empty(t, gotQuery.QueryVector)
	assert.Equal(t, 5, gotQuery.NumResults)

	t.Run("nil_request", func(t *testing.T) {
		_, err := index.SimilaritySearch(context.Background(), nil)
		assert.Error(t, err)
	})
}
