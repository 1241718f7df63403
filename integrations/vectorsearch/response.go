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
	"slices"
	"strconv"
)

// Document is a retrieved row, keyed by column name.
type Document map[string]interface{}

// ScoredDocument pairs a document with the relevance score the service
// attached to it.
type ScoredDocument struct {
	Document Document
	Score    float64
}

const scoreColumnName = "score"

// ValidateAndGetTextColumn derives the text column for a retrieval
// query. Managed-embeddings indexes infer it from the index's own source
// column; self-managed indexes require the caller to supply it.
func ValidateAndGetTextColumn(textColumn string, details *IndexDetails) (string, error) {
	if details.IsManagedEmbeddings() {
		sourceColumn := details.EmbeddingSourceColumn().Name
		if textColumn != "" && textColumn != sourceColumn {
			return "", fmt.Errorf(
				"the index %s has the source column configured as %s, do not pass the text_column parameter",
				details.Name(), sourceColumn,
			)
		}
		return sourceColumn, nil
	}
	if textColumn == "" {
		return "", fmt.Errorf("the text_column parameter is required for the index %s", details.Name())
	}
	return textColumn, nil
}

// ValidateAndGetReturnColumns ensures the primary key and text column
// are requested and that every requested column exists in the index's
// schema when one is available.
func ValidateAndGetReturnColumns(columns []string, textColumn string, details *IndexDetails) ([]string, error) {
	result := slices.Clone(columns)
	if pk := details.PrimaryKey(); pk != "" && !slices.Contains(result, pk) {
		result = append(result, pk)
	}
	if textColumn != "" && !slices.Contains(result, textColumn) {
		result = append(result, textColumn)
	}

	schema, err := details.SchemaColumns()
	if err != nil {
		return nil, err
	}
	if schema != nil {
		for _, column := range result {
			if !slices.Contains(schema, column) {
				return nil, fmt.Errorf("column %s is not in the index %s schema", column, details.Name())
			}
		}
	}
	return result, nil
}

// ParseSearchResponse unwraps a similarity-search response into scored
// documents, preserving the service's result order. The score column is
// separated out; everything else becomes document fields.
func ParseSearchResponse(resp *QueryResponse) []ScoredDocument {
	if resp == nil {
		return nil
	}

	names := make([]string, len(resp.Manifest.Columns))
	for i, col := range resp.Manifest.Columns {
		names[i] = col.Name
	}

	docs := make([]ScoredDocument, 0, len(resp.Result.DataArray))
	for _, row := range resp.Result.DataArray {
		doc := Document{}
		var score float64
		for i, value := range row {
			// The trailing score is present even when the manifest omits it.
			if i >= len(names) || names[i] == scoreColumnName {
				score = toFloat(value)
				continue
			}
			doc[names[i]] = value
		}
		docs = append(docs, ScoredDocument{Document: doc, Score: score})
	}
	return docs
}

func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
