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

package common

// Workspace
const (
	WORKSPACE_HOST          = "WORKSPACE_HOST"
	WORKSPACE_TOKEN         = "WORKSPACE_TOKEN"
	WORKSPACE_CLIENT_ID     = "WORKSPACE_CLIENT_ID"
	WORKSPACE_CLIENT_SECRET = "WORKSPACE_CLIENT_SECRET"
)

// Embedding model
const (
	MODEL_EMBEDDING_NAME     = "MODEL_EMBEDDING_NAME"
	MODEL_EMBEDDING_API_BASE = "MODEL_EMBEDDING_API_BASE"
	MODEL_EMBEDDING_API_KEY  = "MODEL_EMBEDDING_API_KEY"
)

// LOGGING
const (
	LOGGING_LEVEL         = "LOGGING_LEVEL"
	DEFAULT_LOGGING_LEVEL = "info"
)

const DEFAULT_MODEL_EMBEDDING_API_BASE = "https://api.openai.com/v1"

// RetrieverTool
const (
	DEFAULT_NUM_RESULTS = 10
	DEFAULT_QUERY_TYPE  = "ANN"

	// Chat-completion tool names must match '^[a-zA-Z0-9_-]+$' and are
	// capped at 64 characters by the serving API.
	MAX_TOOL_NAME_LENGTH = 64
)
