// Copyright 2024-2025 NetCracker Technology Corporation
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

package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type DatabricksClient interface {
	CheckWorkspaceAvailability(ctx context.Context, workspaceUrl string, token string) error
}

func NewDatabricksClient() DatabricksClient {
	return &databricksClientImpl{
		rateLimiter: rate.NewLimiter(50, 1), // x requests per second
	}
}

type databricksClientImpl struct {
	rateLimiter *rate.Limiter
}

func (d databricksClientImpl) CheckWorkspaceAvailability(ctx context.Context, workspaceUrl string, token string) error {
	err := d.rateLimiter.Wait(ctx)
	if err != nil {
		return err
	}
	req := d.makeRequest(token)
	resp, err := req.SetContext(ctx).Get(fmt.Sprintf("%s/api/2.0/preview/scim/v2/Me", workspaceUrl))
	if err != nil {
		return fmt.Errorf("failed to reach databricks workspace %s: %w", workspaceUrl, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to reach databricks workspace %s: response status %v != 200", workspaceUrl, resp.StatusCode())
	}
	return nil
}

func (d databricksClientImpl) makeRequest(token string) *resty.Request {
	tr := http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	cl := http.Client{Transport: &tr, Timeout: time.Second * 60}

	client := resty.NewWithClient(&cl)
	req := client.R()
	if token != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}
