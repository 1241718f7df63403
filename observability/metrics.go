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
	"sync"
	"time"

	"github.com/lakebridge-ai/lakebridge-go/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Retrieval duration buckets (seconds).
var retrievalDurationBuckets = []float64{
	0.01, 0.02, 0.04, 0.08, 0.16, 0.32, 0.64, 1.28, 2.56, 5.12, 10.24, 20.48, 40.96,
}

var (
	instrumentsMu              sync.RWMutex
	retrievalCounter           metric.Int64Counter
	retrievalErrorCounter      metric.Int64Counter
	retrievalDurationHistogram metric.Float64Histogram
)

func initializeInstruments(meter metric.Meter) {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()

	var err error
	retrievalCounter, err = meter.Int64Counter(
		"retrieval.calls",
		metric.WithDescription("Number of retrieval calls issued against vector search indexes"),
	)
	if err != nil {
		log.Warn("Failed to create retrieval call counter", "err", err)
	}

	retrievalErrorCounter, err = meter.Int64Counter(
		"retrieval.errors",
		metric.WithDescription("Number of failed retrieval calls"),
	)
	if err != nil {
		log.Warn("Failed to create retrieval error counter", "err", err)
	}

	retrievalDurationHistogram, err = meter.Float64Histogram(
		"retrieval.duration",
		metric.WithDescription("Duration of retrieval calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(retrievalDurationBuckets...),
	)
	if err != nil {
		log.Warn("Failed to create retrieval duration histogram", "err", err)
	}
}

// RecordRetrieval records one retrieval call outcome. A no-op until
// metrics are initialized.
func RecordRetrieval(ctx context.Context, indexName string, elapsed time.Duration, err error) {
	instrumentsMu.RLock()
	defer instrumentsMu.RUnlock()

	attrs := metric.WithAttributes(attribute.String(AttrRetrievalIndexName, indexName))
	if retrievalCounter != nil {
		retrievalCounter.Add(ctx, 1, attrs)
	}
	if err != nil && retrievalErrorCounter != nil {
		retrievalErrorCounter.Add(ctx, 1, attrs)
	}
	if retrievalDurationHistogram != nil {
		retrievalDurationHistogram.Record(ctx, elapsed.Seconds(), attrs)
	}
}
