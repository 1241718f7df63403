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
	"errors"
	"sync"

	"github.com/lakebridge-ai/lakebridge-go/configs"
	"github.com/lakebridge-ai/lakebridge-go/log"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var (
	initConfigOnce sync.Once
	initErr        error
	meterProvider  *sdkmetric.MeterProvider

	// ErrNoExporters is returned when no exporters are configured.
	ErrNoExporters = errors.New("observability disabled: no exporters configured")
)

// Option overrides parts of the observability configuration.
type Option func(config *configs.ObservabilityConfig)

// WithEnableMetrics manually controls metrics recording.
func WithEnableMetrics(enable bool) Option {
	return func(cfg *configs.ObservabilityConfig) {
		enableVal := enable
		cfg.OpenTelemetry.EnableMetrics = &enableVal
	}
}

// Setup initializes observability from the global configuration plus
// option overrides. Exporterless configurations are not an error for the
// caller: tracing degrades to no-op spans.
func Setup(ctx context.Context, opts ...Option) {
	cfg := configs.GetGlobalConfig().Observability.Clone()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := Init(ctx, cfg); err != nil && !errors.Is(err, ErrNoExporters) {
		log.Error("Failed to initialize observability", "err", err)
	}
}

// Init initializes the global trace and meter providers once. Subsequent
// calls return the first outcome.
func Init(ctx context.Context, cfg *configs.ObservabilityConfig) error {
	initConfigOnce.Do(func() {
		var otelCfg *configs.OpenTelemetryConfig
		if cfg != nil {
			otelCfg = cfg.OpenTelemetry
		}
		if otelCfg == nil {
			log.Info("No observability config found, observability data will not be exported")
			initErr = ErrNoExporters
			return
		}
		initErr = initWithConfig(ctx, otelCfg)
		if initErr == nil {
			log.Info("Initialized TracerProvider and MeterProvider from observability config")
		}
	})
	return initErr
}

func initWithConfig(ctx context.Context, cfg *configs.OpenTelemetryConfig) error {
	traceExporters, err := buildTraceExporters(ctx, cfg)
	if err != nil {
		return err
	}

	metricsEnabled := cfg.EnableMetrics == nil || *cfg.EnableMetrics
	var metricReaders []sdkmetric.Reader
	if metricsEnabled {
		metricReaders, err = buildMetricReaders(ctx, cfg)
		if err != nil {
			return err
		}
	}

	if len(traceExporters) == 0 && len(metricReaders) == 0 {
		log.Info("No observability exporters are configured, observability data will not be exported")
		return ErrNoExporters
	}

	if len(traceExporters) > 0 {
		var opts []sdktrace.TracerProviderOption
		for _, exp := range traceExporters {
			opts = append(opts, sdktrace.WithBatcher(exp))
		}
		otel.SetTracerProvider(sdktrace.NewTracerProvider(opts...))
	}

	if len(metricReaders) > 0 {
		var opts []sdkmetric.Option
		for _, r := range metricReaders {
			opts = append(opts, sdkmetric.WithReader(r))
		}
		meterProvider = sdkmetric.NewMeterProvider(opts...)
		otel.SetMeterProvider(meterProvider)
		initializeInstruments(meterProvider.Meter(InstrumentationName))
	}

	return nil
}

// Shutdown flushes and shuts down the providers set up by Init.
func Shutdown(ctx context.Context) error {
	log.Info("Shut down TracerProvider and MeterProvider")
	var errs []error

	tp := otel.GetTracerProvider()
	if sdkTP, ok := tp.(*sdktrace.TracerProvider); ok {
		if err := sdkTP.ForceFlush(ctx); err != nil {
			log.Error("Failed to force flush TracerProvider", "err", err)
			errs = append(errs, err)
		}
		if err := sdkTP.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if meterProvider != nil {
		if err := meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
