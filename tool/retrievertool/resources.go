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

package retrievertool

// ResourceType classifies a workspace resource the tool depends on.
type ResourceType string

const (
	ResourceTypeVectorSearchIndex ResourceType = "vector_search_index"
	ResourceTypeServingEndpoint   ResourceType = "serving_endpoint"
)

// Resource is a workspace resource reference, recorded so deployment
// tooling can grant the tool access to what it calls at runtime.
type Resource struct {
	Type ResourceType `json:"type"`
	Name string       `json:"name"`
}
