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

// IndexType distinguishes how an index ingests data.
type IndexType string

const (
	// IndexTypeDeltaSync indexes are kept in sync with a source table by
	// the service.
	IndexTypeDeltaSync IndexType = "DELTA_SYNC"
	// IndexTypeDirectAccess indexes are written to directly by the caller.
	IndexTypeDirectAccess IndexType = "DIRECT_ACCESS"
)

// Query types supported by the service.
const (
	QueryTypeANN    = "ANN"
	QueryTypeHybrid = "HYBRID"
)

// EmbeddingSourceColumn describes a text column the service embeds on
// the caller's behalf (managed embeddings).
type EmbeddingSourceColumn struct {
	Name                       string `json:"name"`
	EmbeddingModelEndpointName string `json:"embedding_model_endpoint_name,omitempty"`
}

// EmbeddingVectorColumn describes a precomputed vector column
// (self-managed embeddings).
type EmbeddingVectorColumn struct {
	Name               string `json:"name"`
	EmbeddingDimension int    `json:"embedding_dimension,omitempty"`
}

type DeltaSyncIndexSpec struct {
	SourceTable            string                  `json:"source_table,omitempty"`
	PipelineType           string                  `json:"pipeline_type,omitempty"`
	EmbeddingSourceColumns []EmbeddingSourceColumn `json:"embedding_source_columns,omitempty"`
	EmbeddingVectorColumns []EmbeddingVectorColumn `json:"embedding_vector_columns,omitempty"`
}

type DirectAccessIndexSpec struct {
	EmbeddingSourceColumns []EmbeddingSourceColumn `json:"embedding_source_columns,omitempty"`
	EmbeddingVectorColumns []EmbeddingVectorColumn `json:"embedding_vector_columns,omitempty"`
	SchemaJSON             string                  `json:"schema_json,omitempty"`
}

// IndexInfo is the service-side descriptor of an index, as returned by
// the describe endpoint. Treated as read-only once fetched.
type IndexInfo struct {
	Name                  string                 `json:"name"`
	EndpointName          string                 `json:"endpoint_name,omitempty"`
	PrimaryKey            string                 `json:"primary_key,omitempty"`
	IndexType             IndexType              `json:"index_type"`
	DeltaSyncIndexSpec    *DeltaSyncIndexSpec    `json:"delta_sync_index_spec,omitempty"`
	DirectAccessIndexSpec *DirectAccessIndexSpec `json:"direct_access_index_spec,omitempty"`
}

// QueryRequest is the body of a similarity-search call.
type QueryRequest struct {
	Columns     []string  `json:"columns"`
	QueryText   string    `json:"query_text,omitempty"`
	QueryVector []float32 `json:"query_vector,omitempty"`
	FiltersJSON string    `json:"filters_json,omitempty"`
	NumResults  int       `json:"num_results,omitempty"`
	QueryType   string    `json:"query_type,omitempty"`
}

type ColumnInfo struct {
	Name string `json:"name"`
}

type ResultManifest struct {
	ColumnCount int          `json:"column_count"`
	Columns     []ColumnInfo `json:"columns"`
}

type ResultData struct {
	RowCount  int             `json:"row_count"`
	DataArray [][]interface{} `json:"data_array"`
}

// QueryResponse carries scored rows in column-manifest order. The
// service appends a relevance score as the trailing column.
type QueryResponse struct {
	Manifest ResultManifest `json:"manifest"`
	Result   ResultData     `json:"result"`
}
