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
	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/lakebridge-ai/lakebridge-go/utils"
)

type CommonModelConfig struct {
	Name    string `yaml:"name"`
	ApiBase string `yaml:"api_base"`
	ApiKey  string `yaml:"api_key"`
}

type ModelConfig struct {
	Embedding *CommonModelConfig `yaml:"embedding"`
}

func (c *ModelConfig) MapEnvToConfig() {
	c.Embedding.Name = utils.GetEnvWithDefault(common.MODEL_EMBEDDING_NAME)
	c.Embedding.ApiBase = utils.GetEnvWithDefault(common.MODEL_EMBEDDING_API_BASE, common.DEFAULT_MODEL_EMBEDDING_API_BASE)
	c.Embedding.ApiKey = utils.GetEnvWithDefault(common.MODEL_EMBEDDING_API_KEY)
}

type Logging struct {
	Level string `yaml:"level"`
}

func (l *Logging) MapEnvToConfig() {
	l.Level = utils.GetEnvWithDefault(common.LOGGING_LEVEL, common.DEFAULT_LOGGING_LEVEL)
}
