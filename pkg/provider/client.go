/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package provider

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP implementation of DeviceProvider. Requests go through a
// circuit breaker so a flapping platform does not stall bulk runs.
type Client struct {
	config     Config
	httpClient HTTPClient
	logger     logger.Logger
}

// NewClient creates a Client for the configured platform endpoint.
func NewClient(config Config, log logger.Logger) *Client {
	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	//nolint:gosec // InsecureSkipVerify is operator-controlled for lab setups
	base := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.InsecureSkipVerify,
			},
		},
	}

	return &Client{
		config:     config,
		httpClient: NewCircuitBreakerHTTPClient(base, "nms-api", DefaultCircuitBreakerConfig(), log),
		logger:     log,
	}
}

// ServerKey identifies the platform instance for cache scoping.
func (c *Client) ServerKey() string {
	if c.config.ServerKey != "" {
		return c.config.ServerKey
	}

	return c.config.Endpoint
}

func (c *Client) GetDevice(ctx context.Context, deviceID int64) (*models.ExternalDevice, error) {
	reqURL := fmt.Sprintf("%s/api/v0/devices/%d", strings.TrimSuffix(c.config.Endpoint, "/"), deviceID)

	var resp DeviceResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	if len(resp.Devices) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrDeviceNotFound, deviceID)
	}

	return resp.Devices[0].toModel(), nil
}

func (c *Client) ListDevices(ctx context.Context, filters models.DeviceFilters) ([]*models.ExternalDevice, error) {
	params := url.Values{}

	if filters.Location != "" {
		params.Set("location", filters.Location)
	}

	if filters.Type != "" {
		params.Set("type", filters.Type)
	}

	if filters.OS != "" {
		params.Set("os", filters.OS)
	}

	if filters.EnabledOnly {
		params.Set("disabled", "0")
	}

	reqURL := strings.TrimSuffix(c.config.Endpoint, "/") + "/api/v0/devices"
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var resp DeviceResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	devices := make([]*models.ExternalDevice, 0, len(resp.Devices))
	for i := range resp.Devices {
		devices = append(devices, resp.Devices[i].toModel())
	}

	c.logger.Debug().
		Int("count", len(devices)).
		Msg("Fetched devices from monitoring platform")

	return devices, nil
}

func (c *Client) DetectStack(ctx context.Context, deviceID int64) (*models.VCInfo, error) {
	reqURL := fmt.Sprintf("%s/api/v0/devices/%d/stack", strings.TrimSuffix(c.config.Endpoint, "/"), deviceID)

	var resp StackResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.toModel(), nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return err
	}

	req.Header.Set("X-Auth-Token", c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer c.closeResponse(resp)

	if resp.StatusCode == http.StatusNotFound {
		return ErrDeviceNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func (c *Client) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
