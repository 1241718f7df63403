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

import (
	"fmt"

	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
)

// The RetrieverTool plugs directly into agent frameworks as a tool.
var _ tool.Tool = (*RetrieverTool)(nil)

func (t *RetrieverTool) Name() string {
	return t.name
}

func (t *RetrieverTool) Description() string {
	return t.description
}

func (t *RetrieverTool) IsLongRunning() bool {
	return false
}

// Run implements tool.Tool. It unwraps the model's function-call
// arguments and forwards them to Execute.
func (t *RetrieverTool) Run(ctx tool.Context, args any) (map[string]any, error) {
	var query string
	var opts []ExecuteOption

	switch m := args.(type) {
	case string:
		query = m
	case map[string]any:
		q, ok := m["query"].(string)
		if !ok {
			return nil, fmt.Errorf("missing query argument, got: %v", m)
		}
		query = q
		if filters, ok := m["filters"].(map[string]any); ok {
			opts = append(opts, WithFilters(filters))
		}
	default:
		return nil, fmt.Errorf("unexpected args type, got: %T", args)
	}

	docs, err := t.Execute(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"documents": docs,
	}, nil
}

// ProcessRequest processes the LLM request. The declaration already
// carries everything the model needs, so there is nothing to add.
func (t *RetrieverTool) ProcessRequest(ctx tool.Context, req *model.LLMRequest) error {
	return nil
}
