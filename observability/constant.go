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

package observability

const (
	InstrumentationName = "lakebridge-go"

	// GenAI semantic-convention attribute keys.
	AttrGenAISpanKind      = "gen_ai.span.kind"
	AttrGenAIOperationName = "gen_ai.operation.name"
	AttrGenAIToolName      = "gen_ai.tool.name"

	// Retrieval attribute keys.
	AttrRetrievalIndexName      = "retrieval.index.name"
	AttrRetrievalQueryType      = "retrieval.query.type"
	AttrRetrievalNumResults     = "retrieval.num_results"
	AttrRetrievalDocumentCount  = "retrieval.document.count"
	AttrRetrievalEmbeddingModel = "retrieval.embedding.model"

	SpanKindTool      = "tool"
	SpanKindRetriever = "retriever"
)
