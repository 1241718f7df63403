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
	"errors"
	"strings"

	"github.com/lakebridge-ai/lakebridge-go/common"
	"github.com/lakebridge-ai/lakebridge-go/configs"
	"github.com/lakebridge-ai/lakebridge-go/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrNoCredential = errors.New("no workspace credential found, set WORKSPACE_TOKEN or WORKSPACE_CLIENT_ID/WORKSPACE_CLIENT_SECRET")

// Credentials identifies a workspace and the way to authenticate against
// its REST APIs. A personal access token takes precedence over OAuth
// machine-to-machine client credentials.
type Credentials struct {
	Host         string
	Token        string
	ClientID     string
	ClientSecret string
}

// ResolveCredentials fills missing fields from the environment and the
// global configuration.
func ResolveCredentials(cred *Credentials) (*Credentials, error) {
	if cred == nil {
		cred = &Credentials{}
	}
	ws := configs.GetGlobalConfig().Workspace
	if cred.Host == "" {
		cred.Host = utils.GetEnvWithDefault(common.WORKSPACE_HOST, ws.Host)
	}
	if cred.Token == "" {
		cred.Token = utils.GetEnvWithDefault(common.WORKSPACE_TOKEN, ws.Token)
	}
	if cred.ClientID == "" {
		cred.ClientID = utils.GetEnvWithDefault(common.WORKSPACE_CLIENT_ID, ws.ClientID)
	}
	if cred.ClientSecret == "" {
		cred.ClientSecret = utils.GetEnvWithDefault(common.WORKSPACE_CLIENT_SECRET, ws.ClientSecret)
	}

	if cred.Host == "" {
		return nil, errors.New("workspace host is required, set WORKSPACE_HOST or provide Credentials.Host")
	}
	cred.Host = strings.TrimRight(cred.Host, "/")
	if cred.Token == "" && (cred.ClientID == "" || cred.ClientSecret == "") {
		return nil, ErrNoCredential
	}
	return cred, nil
}

// TokenSource returns an oauth2.TokenSource for Authorization headers.
func (c *Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	if c.Token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token, TokenType: "Bearer"})
	}
	cfg := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.Host + "/oidc/v1/token",
		Scopes:       []string{"all-apis"},
	}
	return cfg.TokenSource(ctx)
}
