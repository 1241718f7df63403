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

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartRetrievalSpan opens a span for one retrieval call. The caller
// must invoke the returned end function with the call's outcome.
func StartRetrievalSpan(ctx context.Context, toolName, indexName, queryType string, numResults int) (context.Context, func(documentCount int, err error)) {
	tracer := otel.Tracer(InstrumentationName)
	ctx, span := tracer.Start(ctx, "retrieval "+toolName, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrGenAISpanKind, SpanKindRetriever),
		attribute.String(AttrGenAIOperationName, "execute_tool"),
		attribute.String(AttrGenAIToolName, toolName),
		attribute.String(AttrRetrievalIndexName, indexName),
		attribute.String(AttrRetrievalQueryType, queryType),
		attribute.Int(AttrRetrievalNumResults, numResults),
	)

	return ctx, func(documentCount int, err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int(AttrRetrievalDocumentCount, documentCount))
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
