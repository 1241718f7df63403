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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lakebridge-ai/lakebridge-go/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/2.0/serving-endpoints/{name}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("name") {
		case "bge-embedder":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"name":  "bge-embedder",
				"state": map[string]string{"ready": "READY"},
				"task":  "llm/v1/embeddings",
			})
		case "flaky":
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_code": "INTERNAL_ERROR",
				"message":    "backend unavailable",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error_code": "RESOURCE_DOES_NOT_EXIST",
				"message":    "endpoint not found",
			})
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(context.Background(), &ClientConfig{
		Credentials: &auth.Credentials{Host: server.URL, Token: "dapi-test"},
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		endpoint, found, err := client.Get(context.Background(), "bge-embedder")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "bge-embedder", endpoint.Name)
		assert.Equal(t, "READY", endpoint.State.Ready)
	})

	t.Run("not_found_is_not_an_error", func(t *testing.T) {
		endpoint, found, err := client.Get(context.Background(), "unknown-embedder")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, endpoint)
	})

	t.Run("server_error_propagates", func(t *testing.T) {
		_, found, err := client.Get(context.Background(), "flaky")
		assert.Error(t, err)
		assert.False(t, found)
		assert.ErrorContains(t, err, "backend unavailable")
	})
}
