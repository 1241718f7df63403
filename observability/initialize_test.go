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
	"path/filepath"
	"testing"

	"github.com/lakebridge-ai/lakebridge-go/configs"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitWithConfig(t *testing.T) {
	origTP := otel.GetTracerProvider()
	origMP := otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(origTP)
		otel.SetMeterProvider(origMP)
	}()

	t.Run("no_exporters", func(t *testing.T) {
		err := initWithConfig(context.Background(), &configs.OpenTelemetryConfig{})
		assert.ErrorIs(t, err, ErrNoExporters)
	})

	t.Run("file_exporter", func(t *testing.T) {
		enableMetrics := false
		err := initWithConfig(context.Background(), &configs.OpenTelemetryConfig{
			EnableMetrics: &enableMetrics,
			File:          &configs.FileConfig{Path: filepath.Join(t.TempDir(), "traces.jsonl")},
		})
		assert.NoError(t, err)

		tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, ok)
		assert.NoError(t, tp.Shutdown(context.Background()))
	})
}

func TestBuildTraceExporters(t *testing.T) {
	t.Run("empty_config", func(t *testing.T) {
		exporters, err := buildTraceExporters(context.Background(), &configs.OpenTelemetryConfig{})
		assert.NoError(t, err)
		assert.Empty(t, exporters)
	})

	t.Run("file_and_stdout", func(t *testing.T) {
		exporters, err := buildTraceExporters(context.Background(), &configs.OpenTelemetryConfig{
			File:   &configs.FileConfig{Path: filepath.Join(t.TempDir(), "traces.jsonl")},
			Stdout: &configs.StdoutConfig{Enable: true},
		})
		assert.NoError(t, err)
		assert.Len(t, exporters, 2)
	})
}

func TestOTLPHeaders(t *testing.T) {
	headers := otlpHeaders(&configs.OTLPExporterConfig{
		APIKey:      "secret",
		ServiceName: "lakebridge-agent",
	})
	assert.Equal(t, map[string]string{
		"Authorization":  "Bearer secret",
		"X-Service-Name": "lakebridge-agent",
	}, headers)

	assert.Empty(t, otlpHeaders(&configs.OTLPExporterConfig{}))
}
