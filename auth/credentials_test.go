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

package auth

import (
	"context"
	"testing"

	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/stretchr/testify/assert"
)

func TestResolveCredentials(t *testing.T) {
	t.Run("explicit_token", func(t *testing.T) {
		cred, err := ResolveCredentials(&Credentials{
			Host:  "https://adb-1234.cloud.example.com/",
			Token: "dapi-test",
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://adb-1234.cloud.example.com", cred.Host)
		assert.Equal(t, "dapi-test", cred.Token)
	})

	t.Run("from_env", func(t *testing.T) {
		t.Setenv(common.WORKSPACE_HOST, "https://adb-5678.cloud.example.com")
		t.Setenv(common.WORKSPACE_TOKEN, "dapi-env")

		cred, err := ResolveCredentials(nil)
		assert.NoError(t, err)
		assert.Equal(t, "https://adb-5678.cloud.example.com", cred.Host)
		assert.Equal(t, "dapi-env", cred.Token)
	})

	t.Run("missing_host", func(t *testing.T) {
		t.Setenv(common.WORKSPACE_HOST, "")
		_, err := ResolveCredentials(&Credentials{Token: "dapi-test"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "workspace host is required")
	})

	t.Run("missing_credential", func(t *testing.T) {
		t.Setenv(common.WORKSPACE_TOKEN, "")
		t.Setenv(common.WORKSPACE_CLIENT_ID, "")
		t.Setenv(common.WORKSPACE_CLIENT_SECRET, "")
		_, err := ResolveCredentials(&Credentials{Host: "https://adb-1234.cloud.example.com"})
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("client_credentials", func(t *testing.T) {
		cred, err := ResolveCredentials(&Credentials{
			Host:         "https://adb-1234.cloud.example.com",
			ClientID:     "svc-principal",
			ClientSecret: "secret",
		})
		assert.NoError(t, err)
		assert.NotNil(t, cred.TokenSource(context.Background()))
	})
}

func TestCredentials_TokenSource(t *testing.T) {
	cred := &Credentials{Host: "https://adb-1234.cloud.example.com", Token: "dapi-test"}
	ts := cred.TokenSource(context.Background())
	tok, err := ts.Token()
	assert.NoError(t, err)
	assert.Equal(t, "dapi-test", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
}
