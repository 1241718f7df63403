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

package configs

import (
	"strconv"

	"github.com/lakebridge-ai/lakebridge-go/utils"
)

const (
	EnvOtelServiceName = "OTEL_SERVICE_NAME"

	EnvObservabilityEnableMetrics = "OBSERVABILITY_OPENTELEMETRY_ENABLE_METRICS"

	// OTLP
	EnvObservabilityOpenTelemetryOTLPProtocol = "OBSERVABILITY_OPENTELEMETRY_OTLP_PROTOCOL"
	EnvObservabilityOpenTelemetryOTLPEndpoint = "OBSERVABILITY_OPENTELEMETRY_OTLP_ENDPOINT"
	EnvObservabilityOpenTelemetryOTLPAPIKey   = "OBSERVABILITY_OPENTELEMETRY_OTLP_API_KEY"

	// File
	EnvObservabilityOpenTelemetryFilePath = "OBSERVABILITY_OPENTELEMETRY_FILE_PATH"

	// Stdout
	EnvObservabilityOpenTelemetryStdoutEnable = "OBSERVABILITY_OPENTELEMETRY_STDOUT_ENABLE"
)

// ObservabilityConfig groups exporter configurations.
type ObservabilityConfig struct {
	OpenTelemetry *OpenTelemetryConfig `yaml:"opentelemetry"`
}

type OpenTelemetryConfig struct {
	EnableMetrics *bool `yaml:"enable_metrics"`

	OTLP   *OTLPExporterConfig `yaml:"otlp"`
	File   *FileConfig         `yaml:"file"`
	Stdout *StdoutConfig       `yaml:"stdout"`
}

type OTLPExporterConfig struct {
	Protocol    string `yaml:"protocol"` // grpc by default
	Endpoint    string `yaml:"endpoint"`
	APIKey      string `yaml:"api_key"`
	ServiceName string `yaml:"service_name"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

type StdoutConfig struct {
	Enable bool `yaml:"enable"`
}

func (c *ObservabilityConfig) MapEnvToConfig() {
	if c.OpenTelemetry == nil {
		c.OpenTelemetry = &OpenTelemetryConfig{}
	}
	ot := c.OpenTelemetry

	if v := utils.GetEnvWithDefault(EnvObservabilityOpenTelemetryOTLPEndpoint); v != "" {
		if ot.OTLP == nil {
			ot.OTLP = &OTLPExporterConfig{}
		}
		ot.OTLP.Endpoint = v
		ot.OTLP.Protocol = utils.GetEnvWithDefault(EnvObservabilityOpenTelemetryOTLPProtocol, ot.OTLP.Protocol)
		ot.OTLP.APIKey = utils.GetEnvWithDefault(EnvObservabilityOpenTelemetryOTLPAPIKey, ot.OTLP.APIKey)
		ot.OTLP.ServiceName = utils.GetEnvWithDefault(EnvOtelServiceName, ot.OTLP.ServiceName)
	}

	if v := utils.GetEnvWithDefault(EnvObservabilityOpenTelemetryFilePath); v != "" {
		if ot.File == nil {
			ot.File = &FileConfig{}
		}
		ot.File.Path = v
	}

	if v := utils.GetEnvWithDefault(EnvObservabilityOpenTelemetryStdoutEnable); v != "" {
		enable, err := strconv.ParseBool(v)
		if err == nil && enable {
			if ot.Stdout == nil {
				ot.Stdout = &StdoutConfig{}
			}
			ot.Stdout.Enable = true
		}
	}

	if v := utils.GetEnvWithDefault(EnvObservabilityEnableMetrics); v != "" {
		enable, err := strconv.ParseBool(v)
		if err == nil {
			ot.EnableMetrics = &enable
		}
	}
}

// Clone returns a deep copy so callers can apply option overrides without
// mutating the global configuration.
func (c *ObservabilityConfig) Clone() *ObservabilityConfig {
	if c == nil {
		return &ObservabilityConfig{OpenTelemetry: &OpenTelemetryConfig{}}
	}
	clone := &ObservabilityConfig{OpenTelemetry: &OpenTelemetryConfig{}}
	if c.OpenTelemetry == nil {
		return clone
	}
	ot := c.OpenTelemetry
	if ot.EnableMetrics != nil {
		v := *ot.EnableMetrics
		clone.OpenTelemetry.EnableMetrics = &v
	}
	if ot.OTLP != nil {
		v := *ot.OTLP
		clone.OpenTelemetry.OTLP = &v
	}
	if ot.File != nil {
		v := *ot.File
		clone.OpenTelemetry.File = &v
	}
	if ot.Stdout != nil {
		v := *ot.Stdout
		clone.OpenTelemetry.Stdout = &v
	}
	return clone
}
