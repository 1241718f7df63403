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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LakeBridgeConfig is the root configuration for the SDK. Values are
// resolved from the process environment, a project-local .env file and a
// project-local config.yaml, in that order of precedence.
type LakeBridgeConfig struct {
	Workspace     *WorkspaceConfig     `yaml:"workspace"`
	Model         *ModelConfig         `yaml:"model"`
	Logging       *Logging             `yaml:"logging"`
	Observability *ObservabilityConfig `yaml:"observability"`
}

var (
	globalConfig *LakeBridgeConfig
	configOnce   sync.Once
)

func GetGlobalConfig() *LakeBridgeConfig {
	configOnce.Do(func() {
		if err := SetupLakeBridgeConfig(); err != nil {
			panic(err)
		}
	})
	return globalConfig
}

func SetupLakeBridgeConfig() error {
	if err := loadConfigFromProjectEnv(); err != nil {
		return err
	}
	if err := loadConfigFromProjectYaml(); err != nil {
		return err
	}
	globalConfig = &LakeBridgeConfig{
		Workspace: &WorkspaceConfig{},
		Model: &ModelConfig{
			Embedding: &CommonModelConfig{},
		},
		Logging: &Logging{},
		Observability: &ObservabilityConfig{
			OpenTelemetry: &OpenTelemetryConfig{},
		},
	}
	globalConfig.Workspace.MapEnvToConfig()
	globalConfig.Model.MapEnvToConfig()
	globalConfig.Logging.MapEnvToConfig()
	globalConfig.Observability.MapEnvToConfig()
	return nil
}

func loadConfigFromProjectEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	envFilePath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFilePath); err == nil {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(envFilePath); err != nil {
			return fmt.Errorf("failed to load .env file: %v", err)
		}
	}
	return nil
}

func loadConfigFromProjectYaml() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	var yamlConfig map[string]interface{}
	configYamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configYamlPath); err == nil {
		data, err := os.ReadFile(configYamlPath)
		if err != nil {
			return fmt.Errorf("failed to read config.yaml: %v", err)
		}
		if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
			return fmt.Errorf("failed to parse config.yaml: %v", err)
		}

		// Lower yaml keys into env-var form (workspace.host -> WORKSPACE_HOST)
		// without overriding variables that are already set.
		setYamlToEnv(yamlConfig, "")
	}
	return nil
}

func setYamlToEnv(data map[string]interface{}, prefix string) {
	for key, val := range data {
		fullKey := key
		if prefix != "" {
			fullKey = fmt.Sprintf("%s_%s", prefix, key)
		}
		fullKey = strings.ToUpper(fullKey)

		switch v := val.(type) {
		case map[string]interface{}:
			setYamlToEnv(v, fullKey)
		case string:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, v)
			}
		case int:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, strconv.Itoa(v))
			}
		case bool:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, strconv.FormatBool(v))
			}
		}
	}
}
