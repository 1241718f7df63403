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
	"os"
	"testing"

	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/stretchr/testify/assert"
)

func Test_loadConfigFromProjectEnv(t *testing.T) {
	fd, _ := os.Create(".env")
	_, _ = fd.WriteString("WORKSPACE_HOST=https://adb-1234.cloud.example.com")
	_ = fd.Close()
	defer func() {
		_ = os.Remove(".env")
	}()

	_ = loadConfigFromProjectEnv()
	assert.Equal(t, "https://adb-1234.cloud.example.com", os.Getenv(common.WORKSPACE_HOST))

	_ = os.Setenv(common.WORKSPACE_HOST, "https://override.example.com")
	defer func() {
		_ = os.Unsetenv(common.WORKSPACE_HOST)
	}()
	_ = loadConfigFromProjectEnv()
	assert.Equal(t, "https://override.example.com", os.Getenv(common.WORKSPACE_HOST))
}

func Test_loadConfigFromProjectYaml(t *testing.T) {
	fd, _ := os.Create("config.yaml")
	_, _ = fd.WriteString(`model:
  embedding:
    name: "text-embedding-3-small"
    api_base: "https://api.openai.example.com/v1"`)
	_ = fd.Close()
	defer func() {
		_ = os.Remove("config.yaml")
		_ = os.Unsetenv(common.MODEL_EMBEDDING_NAME)
		_ = os.Unsetenv(common.MODEL_EMBEDDING_API_BASE)
	}()
	_ = loadConfigFromProjectYaml()
	assert.Equal(t, "text-embedding-3-small", os.Getenv(common.MODEL_EMBEDDING_NAME))
	assert.Equal(t, "https://api.openai.example.com/v1", os.Getenv(common.MODEL_EMBEDDING_API_BASE))
}

func TestSetupLakeBridgeConfig(t *testing.T) {
	t.Setenv(common.WORKSPACE_HOST, "https://adb-1234.cloud.example.com")
	t.Setenv(common.WORKSPACE_TOKEN, "dapi-test")
	t.Setenv(common.MODEL_EMBEDDING_NAME, "text-embedding-3-small")

	err := SetupLakeBridgeConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://adb-1234.cloud.example.com", globalConfig.Workspace.Host)
	assert.Equal(t, "dapi-test", globalConfig.Workspace.Token)
	assert.Equal(t, "text-embedding-3-small", globalConfig.Model.Embedding.Name)
	assert.Equal(t, common.DEFAULT_MODEL_EMBEDDING_API_BASE, globalConfig.Model.Embedding.ApiBase)
	assert.Equal(t, common.DEFAULT_LOGGING_LEVEL, globalConfig.Logging.Level)
}

func TestObservabilityConfig_MapEnvToConfig(t *testing.T) {
	t.Setenv(EnvObservabilityOpenTelemetryOTLPEndpoint, "https://otlp.example.com:4317")
	t.Setenv(EnvObservabilityOpenTelemetryOTLPProtocol, "grpc")
	t.Setenv(EnvObservabilityEnableMetrics, "true")

	cfg := &ObservabilityConfig{}
	cfg.MapEnvToConfig()
	assert.NotNil(t, cfg.OpenTelemetry.OTLP)
	assert.Equal(t, "https://otlp.example.com:4317", cfg.OpenTelemetry.OTLP.Endpoint)
	assert.Equal(t, "grpc", cfg.OpenTelemetry.OTLP.Protocol)
	assert.NotNil(t, cfg.OpenTelemetry.EnableMetrics)
	assert.True(t, *cfg.OpenTelemetry.EnableMetrics)
}

func TestObservabilityConfig_Clone(t *testing.T) {
	enabled := true
	cfg := &ObservabilityConfig{
		OpenTelemetry: &OpenTelemetryConfig{
			EnableMetrics: &enabled,
			OTLP:          &OTLPExporterConfig{Endpoint: "https://otlp.example.com"},
		},
	}
	clone := cfg.Clone()
	clone.OpenTelemetry.OTLP.Endpoint = "changed"
	*clone.OpenTelemetry.EnableMetrics = false

	assert.Equal(t, "https://otlp.example.com", cfg.OpenTelemetry.OTLP.Endpoint)
	assert.True(t, *cfg.OpenTelemetry.EnableMetrics)
}
