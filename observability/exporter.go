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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lakebridge-ai/lakebridge-go/configs"
	"github.com/lakebridge-ai/lakebridge-go/log"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	OTELExporterOTLPProtocolEnvKey = "OTEL_EXPORTER_OTLP_PROTOCOL"
	OTELExporterOTLPEndpointEnvKey = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

var fileWriters sync.Map

func createTraceClient(ctx context.Context, url, protocol string, headers map[string]string) (sdktrace.SpanExporter, error) {
	if protocol == "" {
		protocol = os.Getenv(OTELExporterOTLPProtocolEnvKey)
	}
	if url == "" {
		url = os.Getenv(OTELExporterOTLPEndpointEnvKey)
	}

	switch {
	case strings.HasPrefix(protocol, "http"):
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(url), otlptracehttp.WithHeaders(headers))
	default:
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(url), otlptracegrpc.WithHeaders(headers))
	}
}

func createMetricClient(ctx context.Context, url, protocol string, headers map[string]string) (sdkmetric.Exporter, error) {
	if protocol == "" {
		protocol = os.Getenv(OTELExporterOTLPProtocolEnvKey)
	}
	if url == "" {
		url = os.Getenv(OTELExporterOTLPEndpointEnvKey)
	}

	switch {
	case strings.HasPrefix(protocol, "http"):
		return otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(url), otlpmetrichttp.WithHeaders(headers))
	default:
		return otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpointURL(url), otlpmetricgrpc.WithHeaders(headers))
	}
}

func otlpHeaders(cfg *configs.OTLPExporterConfig) map[string]string {
	headers := map[string]string{}
	if cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + cfg.APIKey
	}
	if cfg.ServiceName != "" {
		headers["X-Service-Name"] = cfg.ServiceName
	}
	return headers
}

func getFileWriter(path string) io.Writer {
	if path == "" {
		log.Warn("No path provided for file writer, using io.Discard")
		return io.Discard
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Warn("Failed to resolve absolute path, using original", "path", path, "err", err)
		absPath = path
	}

	if fileWriter, ok := fileWriters.Load(absPath); ok {
		return fileWriter.(io.Writer)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		log.Warn("Failed to create directory for file writer, using io.Discard", "path", absPath, "err", err)
		return io.Discard
	}
	fd, err := os.OpenFile(absPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warn("Failed to open file for file writer, using io.Discard", "path", absPath, "err", err)
		return io.Discard
	}
	fileWriters.Store(absPath, fd)
	return fd
}

// buildTraceExporters creates one span exporter per configured sink.
func buildTraceExporters(ctx context.Context, cfg *configs.OpenTelemetryConfig) ([]sdktrace.SpanExporter, error) {
	var exporters []sdktrace.SpanExporter

	if cfg.OTLP != nil && cfg.OTLP.Endpoint != "" {
		exp, err := createTraceClient(ctx, cfg.OTLP.Endpoint, cfg.OTLP.Protocol, otlpHeaders(cfg.OTLP))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		exporters = append(exporters, exp)
	}

	if cfg.File != nil && cfg.File.Path != "" {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(getFileWriter(cfg.File.Path)))
		if err != nil {
			return nil, fmt.Errorf("failed to create file trace exporter: %w", err)
		}
		exporters = append(exporters, exp)
	}

	if cfg.Stdout != nil && cfg.Stdout.Enable {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
		exporters = append(exporters, exp)
	}

	return exporters, nil
}

// buildMetricReaders creates one periodic reader per configured sink.
func buildMetricReaders(ctx context.Context, cfg *configs.OpenTelemetryConfig) ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	if cfg.OTLP != nil && cfg.OTLP.Endpoint != "" {
		exp, err := createMetricClient(ctx, cfg.OTLP.Endpoint, cfg.OTLP.Protocol, otlpHeaders(cfg.OTLP))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exp))
	}

	if cfg.Stdout != nil && cfg.Stdout.Enable {
		exp, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exp))
	}

	return readers, nil
}
