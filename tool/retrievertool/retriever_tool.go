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

// Package retrievertool exposes a Vector Search index as a callable
// function tool for chat-completion requests. Construction validates the
// configuration against the index's metadata and builds the tool
// declaration; Execute maps a natural-language query to the documents
// the index returns.
package retrievertool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakebridge-ai/lakebridge-go/auth"
	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/lakebridge-ai/lakebridge-go/integrations/serving"
	"github.com/lakebridge-ai/lakebridge-go/integrations/vectorsearch"
	"github.com/lakebridge-ai/lakebridge-go/log"
	"github.com/lakebridge-ai/lakebridge-go/model"
	"github.com/lakebridge-ai/lakebridge-go/observability"
	"google.golang.org/genai"
	"gopkg.in/go-playground/validator.v8"
)

// ErrConfig marks configuration errors raised at construction or
// execute time. External-service failures propagate unwrapped.
var ErrConfig = errors.New("retriever tool config error")

const defaultToolDescription = "A vector search-based retrieval tool for querying indexed embeddings."

// Config is the user-supplied configuration for a RetrieverTool.
type Config struct {
	// IndexName is the fully qualified index name, 'catalog.schema.index'.
	IndexName string `validate:"required"`
	// TextColumn is the column holding the document text. Required for
	// self-managed embeddings indexes; inferred for managed ones.
	TextColumn string
	// EmbeddingModelName names the model used to embed queries. Required
	// for self-managed embeddings indexes.
	EmbeddingModelName string
	// Columns to return with each document. The index's primary key and
	// the text column are always included.
	Columns []string
	// NumResults caps the number of returned documents. Defaults to 10.
	NumResults int `validate:"omitempty,min=1"`
	// Filters restrict the search, keyed by filter expression.
	Filters map[string]interface{}
	// QueryType is ANN (default) or HYBRID.
	QueryType string
	// ToolName overrides the derived tool name.
	ToolName string
	// ToolDescription overrides the default tool description.
	ToolDescription string
}

func (c *Config) validate() error {
	v := validator.New(&validator.Config{TagName: "validate"})
	if err := v.Struct(c); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			return fmt.Errorf("%w: field %s validation failed: %s", ErrConfig, fieldErr.Field, fieldErr.Tag)
		}
	}
	return nil
}

// RetrieverTool is a validated, ready-to-call retrieval tool. It is
// immutable after construction and safe for concurrent use.
type RetrieverTool struct {
	config      *Config
	index       *vectorsearch.Index
	details     *vectorsearch.IndexDetails
	declaration *genai.FunctionDeclaration
	resources   []Resource

	name        string
	description string
	textColumn  string
	columns     []string
	embedder    model.Embedder
}

type options struct {
	credentials   *auth.Credentials
	vsClient      *vectorsearch.Client
	servingClient *serving.Client
	embedder      model.Embedder
}

// Option customizes construction, mainly for dependency injection.
type Option func(*options)

// WithCredentials supplies workspace credentials instead of resolving
// them from the environment.
func WithCredentials(cred *auth.Credentials) Option {
	return func(o *options) { o.credentials = cred }
}

// WithVectorSearchClient supplies a preconfigured Vector Search client.
func WithVectorSearchClient(client *vectorsearch.Client) Option {
	return func(o *options) { o.vsClient = client }
}

// WithServingClient supplies a preconfigured serving-endpoints client.
func WithServingClient(client *serving.Client) Option {
	return func(o *options) { o.servingClient = client }
}

// WithEmbedder supplies the embedding client used for self-managed
// embeddings indexes. Without it, a default OpenAI-compatible client is
// constructed on first use.
func WithEmbedder(embedder model.Embedder) Option {
	return func(o *options) { o.embedder = embedder }
}

// New validates the configuration against the index's metadata and
// returns a ready-to-use tool, or fails fast.
func New(ctx context.Context, cfg *Config, opts ...Option) (*RetrieverTool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if splits := strings.Split(cfg.IndexName, "."); len(splits) != 3 {
		return nil, fmt.Errorf("%w: index name %s is not in the expected format 'catalog.schema.index'", ErrConfig, cfg.IndexName)
	}
	if cfg.NumResults == 0 {
		cfg.NumResults = common.DEFAULT_NUM_RESULTS
	}
	if cfg.QueryType == "" {
		cfg.QueryType = common.DEFAULT_QUERY_TYPE
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vsClient := o.vsClient
	if vsClient == nil {
		var err error
		vsClient, err = vectorsearch.NewClient(ctx, &vectorsearch.ClientConfig{Credentials: o.credentials})
		if err != nil {
			return nil, err
		}
	}

	index, err := vsClient.GetIndex(ctx, cfg.IndexName)
	if err != nil {
		return nil, err
	}
	details := vectorsearch.NewIndexDetails(index.Info())

	textColumn, err := vectorsearch.ValidateAndGetTextColumn(cfg.TextColumn, details)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	columns, err := vectorsearch.ValidateAndGetReturnColumns(cfg.Columns, textColumn, details)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if !details.IsManagedEmbeddings() && cfg.EmbeddingModelName == "" {
		return nil, fmt.Errorf(
			"%w: the embedding model name is required for self-managed embeddings indexes in order to generate embeddings for retrieval queries",
			ErrConfig,
		)
	}

	t := &RetrieverTool{
		config:      cfg,
		index:       index,
		details:     details,
		name:        deriveToolName(cfg.ToolName, cfg.IndexName),
		description: deriveToolDescription(cfg.ToolDescription, details),
		textColumn:  textColumn,
		columns:     columns,
		embedder:    o.embedder,
	}
	t.declaration = buildDeclaration(t.name, t.description)

	t.resources, err = resolveResources(ctx, cfg, o)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// deriveToolName falls back to the index name with dots replaced, since
// tool names may only contain alphanumerics, underscores and hyphens.
// Overlong names keep their last 64 characters, which can collide across
// distinct long index names.
func deriveToolName(override, indexName string) string {
	toolName := override
	if toolName == "" {
		toolName = strings.ReplaceAll(indexName, ".", "__")
	}
	if len(toolName) > common.MAX_TOOL_NAME_LENGTH {
		truncated := toolName[len(toolName)-common.MAX_TOOL_NAME_LENGTH:]
		log.Warn("Tool name is too long, truncating to 64 characters", "tool_name", toolName, "truncated", truncated)
		return truncated
	}
	return toolName
}

func deriveToolDescription(override string, details *vectorsearch.IndexDetails) string {
	if override != "" {
		return override
	}
	description := defaultToolDescription
	if sourceTable := details.SourceTable(); sourceTable != "" {
		description += fmt.Sprintf(" The queried index uses the source table %s.", sourceTable)
	}
	return description
}

func buildDeclaration(name, description string) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        name,
		Description: description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query": {
					Type:        genai.TypeString,
					Description: "The string used to query the index with and identify the most similar documents.",
				},
				"filters": {
					Type:        genai.TypeObject,
					Description: "Optional filters to refine the search results.",
					Nullable:    genai.Ptr(true),
				},
			},
			Required: []string{"query"},
		},
	}
}

// resolveResources records the workspace resources the tool depends on.
// The serving-endpoint lookup is best effort: a missing endpoint is
// expected and omitted, any other failure propagates.
func resolveResources(ctx context.Context, cfg *Config, o *options) ([]Resource, error) {
	resources := []Resource{{Type: ResourceTypeVectorSearchIndex, Name: cfg.IndexName}}
	if cfg.EmbeddingModelName == "" {
		return resources, nil
	}

	servingClient := o.servingClient
	if servingClient == nil {
		var err error
		servingClient, err = serving.NewClient(ctx, &serving.ClientConfig{Credentials: o.credentials})
		if err != nil {
			return nil, err
		}
	}
	endpoint, found, err := servingClient.Get(ctx, cfg.EmbeddingModelName)
	if err != nil {
		return nil, err
	}
	if found {
		resources = append(resources, Resource{Type: ResourceTypeServingEndpoint, Name: endpoint.Name})
	}
	return resources, nil
}

// Declaration returns the function declaration consumed by
// chat-completion requests.
func (t *RetrieverTool) Declaration() *genai.FunctionDeclaration {
	return t.declaration
}

// Resources returns the workspace resources the tool depends on.
func (t *RetrieverTool) Resources() []Resource {
	return t.resources
}

type executeOptions struct {
	filters  map[string]interface{}
	embedder model.Embedder
}

// ExecuteOption customizes a single Execute call.
type ExecuteOption func(*executeOptions)

// WithFilters overrides the configured filters for this call.
func WithFilters(filters map[string]interface{}) ExecuteOption {
	return func(o *executeOptions) {
		if filters != nil {
			o.filters = filters
		}
	}
}

// WithExecuteEmbedder overrides the embedding client for this call.
func WithExecuteEmbedder(embedder model.Embedder) ExecuteOption {
	return func(o *executeOptions) { o.embedder = embedder }
}

// Execute maps a natural-language query to the documents the index
// returns, in index order, scores discarded.
func (t *RetrieverTool) Execute(ctx context.Context, query string, opts ...ExecuteOption) ([]vectorsearch.Document, error) {
	ctx, endSpan := observability.StartRetrievalSpan(ctx, t.name, t.details.Name(), t.config.QueryType, t.config.NumResults)
	start := time.Now()

	docs, err := t.execute(ctx, query, opts...)

	observability.RecordRetrieval(ctx, t.details.Name(), time.Since(start), err)
	endSpan(len(docs), err)
	return docs, err
}

func (t *RetrieverTool) execute(ctx context.Context, query string, opts ...ExecuteOption) ([]vectorsearch.Document, error) {
	o := &executeOptions{filters: t.config.Filters, embedder: t.embedder}
	for _, opt := range opts {
		opt(o)
	}

	var queryText string
	var queryVector []float32

	if t.details.IsManagedEmbeddings() {
		queryText = query
	} else {
		embedder := o.embedder
		if embedder == nil {
			var err error
			embedder, err = model.NewOpenAIEmbeddingModel(ctx, t.config.EmbeddingModelName, nil)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConfig, err)
			}
		}

		resp, err := embedder.EmbedTexts(ctx, &model.EmbeddingRequest{Texts: []string{query}})
		if err != nil {
			return nil, err
		}
		if len(resp.Embeddings) == 0 {
			return nil, fmt.Errorf("embedding model %s returned no embeddings", t.config.EmbeddingModelName)
		}
		queryVector = resp.Embeddings[0]

		if strings.EqualFold(t.config.QueryType, vectorsearch.QueryTypeHybrid) {
			queryText = query
		}
		if dimension := t.details.EmbeddingDimension(); dimension > 0 && len(queryVector) != dimension {
			return nil, fmt.Errorf("%w: expected embedding dimension %d but got %d", ErrConfig, dimension, len(queryVector))
		}
	}

	var filtersJSON string
	if len(o.filters) > 0 {
		data, err := json.Marshal(o.filters)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal filters: %v", ErrConfig, err)
		}
		filtersJSON = string(data)
	}

	resp, err := t.index.SimilaritySearch(ctx, &vectorsearch.QueryRequest{
		Columns:     t.columns,
		QueryText:   queryText,
		QueryVector: queryVector,
		FiltersJSON: filtersJSON,
		NumResults:  t.config.NumResults,
		QueryType:   t.config.QueryType,
	})
	if err != nil {
		return nil, err
	}

	scored := vectorsearch.ParseSearchResponse(resp)
	docs := make([]vectorsearch.Document, 0, len(scored))
	for _, sd := range scored {
		docs = append(docs, sd.Document)
	}
	return docs, nil
}
