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

package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/lakebridge-ai/lakebridge-go/configs"
	"github.com/lakebridge-ai/lakebridge-go/utils"
)

// OpenAIEmbeddingConfig holds configuration for an OpenAI-compatible
// embeddings endpoint.
type OpenAIEmbeddingConfig struct {
	APIKey     string
	BaseURL    string
	Dimensions int
	HTTPClient *http.Client
}

type openAIEmbeddingModel struct {
	name       string
	config     *OpenAIEmbeddingConfig
	httpClient *http.Client
}

// NewOpenAIEmbeddingModel creates an Embedder backed by an
// OpenAI-compatible embeddings API. The API key is resolved as
// config.APIKey > MODEL_EMBEDDING_API_KEY > global config, and is
// required to issue requests.
func NewOpenAIEmbeddingModel(ctx context.Context, modelName string, config *OpenAIEmbeddingConfig) (Embedder, error) {
	_ = ctx

	if config == nil {
		config = &OpenAIEmbeddingConfig{}
	}

	embeddingCfg := configs.GetGlobalConfig().Model.Embedding
	if config.APIKey == "" {
		config.APIKey = utils.GetEnvWithDefault(common.MODEL_EMBEDDING_API_KEY, embeddingCfg.ApiKey)
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai embedding: API key is required to generate embeddings for retrieval queries, set MODEL_EMBEDDING_API_KEY or provide config.APIKey")
	}

	if config.BaseURL == "" {
		config.BaseURL = utils.GetEnvWithDefault(common.MODEL_EMBEDDING_API_BASE, embeddingCfg.ApiBase, common.DEFAULT_MODEL_EMBEDDING_API_BASE)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &openAIEmbeddingModel{
		name:       modelName,
		config:     config,
		httpClient: httpClient,
	}, nil
}

type openAIEmbeddingRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions int      `json:"dimensions,omitempty"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

func (m *openAIEmbeddingModel) EmbedTexts(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	if req == nil || len(req.Texts) == 0 {
		return nil, fmt.Errorf("openai embedding: at least one text input is required")
	}

	apiReq := openAIEmbeddingRequest{
		Input: req.Texts,
		Model: m.name,
	}
	dim := req.Dimensions
	if dim == 0 {
		dim = m.config.Dimensions
	}
	if dim > 0 {
		apiReq.Dimensions = dim
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("openai embedding: failed to marshal request: %w", err)
	}

	url := strings.TrimRight(m.config.BaseURL, "/") + "/embeddings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai embedding: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.config.APIKey)

	httpResp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai embedding: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai embedding: failed to read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embedding: unexpected status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var apiResp openAIEmbeddingResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("openai embedding: failed to parse response: %w", err)
	}

	embeddings := make([][]float32, len(apiResp.Data))
	for i, d := range apiResp.Data {
		embeddings[i] = d.Embedding
	}

	return &EmbeddingResponse{
		Embeddings: embeddings,
		Model:      apiResp.Model,
		Usage: &EmbeddingUsage{
			PromptTokens: apiResp.Usage.PromptTokens,
			TotalTokens:  apiResp.Usage.TotalTokens,
		},
	}, nil
}
