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

// WorkspaceConfig carries credentials for the workspace REST APIs
// (Vector Search and serving endpoints). Token auth takes precedence over
// OAuth client credentials when both are configured.
type WorkspaceConfig struct {
	Host         string `yaml:"host"`
	Token        string `yaml:"token"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

func (w *WorkspaceConfig) MapEnvToConfig() {
	w.Host = utils.GetEnvWithDefault(common.WORKSPACE_HOST)
	w.Token = utils.GetEnvWithDefault(common.WORKSPACE_TOKEN)
	w.ClientID = utils.GetEnvWithDefault(common.WORKSPACE_CLIENT_ID)
	w.ClientSecret = utils.GetEnvWithDefault(common.WORKSPACE_CLIENT_SECRET)
}
