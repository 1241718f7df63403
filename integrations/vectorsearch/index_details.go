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
	"encoding/json"
	"fmt"
)

// IndexDetails is a read-only view over an index descriptor that answers
// the questions retrieval needs: who computes embeddings, which columns
// exist, and what vector dimension the index expects.
type IndexDetails struct {
	info *IndexInfo
}

func NewIndexDetails(info *IndexInfo) *IndexDetails {
	return &IndexDetails{info: info}
}

func (d *IndexDetails) Name() string {
	return d.info.Name
}

func (d *IndexDetails) PrimaryKey() string {
	return d.info.PrimaryKey
}

func (d *IndexDetails) IsDeltaSyncIndex() bool {
	return d.info.IndexType == IndexTypeDeltaSync
}

func (d *IndexDetails) IsDirectAccessIndex() bool {
	return d.info.IndexType == IndexTypeDirectAccess
}

// IsManagedEmbeddings reports whether the service computes embeddings
// from raw text itself. Only delta-sync indexes with an embedding source
// column qualify; everything else requires caller-supplied vectors.
func (d *IndexDetails) IsManagedEmbeddings() bool {
	return d.IsDeltaSyncIndex() && d.EmbeddingSourceColumn() != nil
}

// EmbeddingSourceColumn returns the text column the service embeds, or
// nil for self-managed indexes.
func (d *IndexDetails) EmbeddingSourceColumn() *EmbeddingSourceColumn {
	var cols []EmbeddingSourceColumn
	switch {
	case d.info.DeltaSyncIndexSpec != nil:
		cols = d.info.DeltaSyncIndexSpec.EmbeddingSourceColumns
	case d.info.DirectAccessIndexSpec != nil:
		cols = d.info.DirectAccessIndexSpec.EmbeddingSourceColumns
	}
	if len(cols) == 0 {
		return nil
	}
	return &cols[0]
}

// EmbeddingVectorColumn returns the vector column descriptor, or nil
// when the index declares none.
func (d *IndexDetails) EmbeddingVectorColumn() *EmbeddingVectorColumn {
	var cols []EmbeddingVectorColumn
	switch {
	case d.info.DeltaSyncIndexSpec != nil:
		cols = d.info.DeltaSyncIndexSpec.EmbeddingVectorColumns
	case d.info.DirectAccessIndexSpec != nil:
		cols = d.info.DirectAccessIndexSpec.EmbeddingVectorColumns
	}
	if len(cols) == 0 {
		return nil
	}
	return &cols[0]
}

// EmbeddingDimension returns the declared vector dimension, 0 if the
// index declares none.
func (d *IndexDetails) EmbeddingDimension() int {
	if col := d.EmbeddingVectorColumn(); col != nil {
		return col.EmbeddingDimension
	}
	return 0
}

func (d *IndexDetails) SourceTable() string {
	if d.info.DeltaSyncIndexSpec != nil {
		return d.info.DeltaSyncIndexSpec.SourceTable
	}
	return ""
}

// SchemaColumns returns the index's column names when the descriptor
// carries a schema (direct-access indexes). Delta-sync indexes expose no
// schema, so a nil slice is returned and column validation is skipped.
func (d *IndexDetails) SchemaColumns() ([]string, error) {
	if d.info.DirectAccessIndexSpec == nil || d.info.DirectAccessIndexSpec.SchemaJSON == "" {
		return nil, nil
	}
	var schema map[string]string
	if err := json.Unmarshal([]byte(d.info.DirectAccessIndexSpec.SchemaJSON), &schema); err != nil {
		return nil, fmt.Errorf("failed to parse index schema for %s: %w", d.info.Name, err)
	}
	columns := make([]string, 0, len(schema))
	for name := range schema {
		columns = append(columns, name)
	}
	return columns, nil
}
