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

package inventory

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultExternalIDField = "nms_device_id"
	pageLimit              = 200
	// maxPages bounds pagination so a misbehaving API cannot loop forever.
	maxPages = 100
)

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
	errTooManyPages         = errors.New("pagination exceeded page limit")
)

// NetboxStore implements Store against a NetBox-style REST API.
type NetboxStore struct {
	config     Config
	httpClient *http.Client
	logger     logger.Logger
}

// NewNetboxStore creates a NetboxStore for the configured endpoint.
func NewNetboxStore(config Config, log logger.Logger) *NetboxStore {
	if config.ExternalIDField == "" {
		config.ExternalIDField = defaultExternalIDField
	}

	timeout := time.Duration(config.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	//nolint:gosec // InsecureSkipVerify is operator-controlled for lab setups
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.InsecureSkipVerify,
			},
		},
	}

	return &NetboxStore{
		config:     config,
		httpClient: client,
		logger:     log,
	}
}

func (s *NetboxStore) Sites(ctx context.Context) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/dcim/sites/", nil)
}

func (s *NetboxStore) DeviceTypes(ctx context.Context) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/dcim/device-types/", nil)
}

func (s *NetboxStore) Platforms(ctx context.Context) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/dcim/platforms/", nil)
}

func (s *NetboxStore) Roles(ctx context.Context) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/dcim/device-roles/", nil)
}

func (s *NetboxStore) Clusters(ctx context.Context) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/virtualization/clusters/", nil)
}

func (s *NetboxStore) Racks(ctx context.Context, siteID int64) ([]models.ObjectRef, error) {
	return s.listRefs(ctx, "/api/dcim/racks/", url.Values{"site_id": {fmt.Sprintf("%d", siteID)}})
}

func (s *NetboxStore) FindByExternalID(ctx context.Context, externalID int64) (*models.ExistingMatch, error) {
	query := url.Values{"cf_" + s.config.ExternalIDField: {fmt.Sprintf("%d", externalID)}}

	return s.findEither(ctx, query, models.ExistingMatchID)
}

func (s *NetboxStore) FindByName(ctx context.Context, name string) (*models.ExistingMatch, error) {
	query := url.Values{"name": {name}}

	return s.findEither(ctx, query, models.ExistingMatchHostname)
}

// findEither checks devices first, then virtual machines.
func (s *NetboxStore) findEither(ctx context.Context, query url.Values, kind models.ExistingMatchKind) (*models.ExistingMatch, error) {
	devices, err := s.listRefs(ctx, "/api/dcim/devices/", query)
	if err != nil {
		return nil, err
	}

	if len(devices) > 0 {
		return &models.ExistingMatch{Kind: models.ObjectKindDevice, Ref: devices[0], MatchKind: kind}, nil
	}

	vms, err := s.listRefs(ctx, "/api/virtualization/virtual-machines/", query)
	if err != nil {
		return nil, err
	}

	if len(vms) > 0 {
		return &models.ExistingMatch{Kind: models.ObjectKindVM, Ref: vms[0], MatchKind: kind}, nil
	}

	return nil, nil
}

func (s *NetboxStore) FindDeviceByIP(ctx context.Context, ip string) (*models.ExistingMatch, error) {
	reqURL := s.buildURL("/api/ipam/ip-addresses/", url.Values{"address": {ip}})

	var resp struct {
		Count   int        `json:"count"`
		Results []ipResult `json:"results"`
	}

	if err := s.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	for i := range resp.Results {
		dev := resp.Results[i].AssignedObject.Device
		if dev.ID != 0 {
			return &models.ExistingMatch{
				Kind:      models.ObjectKindDevice,
				Ref:       models.ObjectRef{ID: dev.ID, Name: dev.Name},
				MatchKind: models.ExistingMatchIP,
			}, nil
		}
	}

	return nil, nil
}

func (s *NetboxStore) SerialInUse(ctx context.Context, serial string) (bool, error) {
	if serial == "" {
		return false, nil
	}

	devices, err := s.listRefs(ctx, "/api/dcim/devices/", url.Values{"serial": {serial}})
	if err != nil {
		return false, err
	}

	return len(devices) > 0, nil
}

func (s *NetboxStore) CreateDevice(ctx context.Context, req *DeviceCreate) (*models.CreatedRef, error) {
	body := map[string]interface{}{
		"name":        req.Name,
		"site":        req.SiteID,
		"device_type": req.DeviceTypeID,
		"role":        req.RoleID,
		"status":      "active",
		"custom_fields": map[string]interface{}{
			s.config.ExternalIDField: req.ExternalID,
		},
	}

	if req.Serial != "" {
		body["serial"] = req.Serial
	}

	if req.PlatformID != nil {
		body["platform"] = *req.PlatformID
	}

	if req.RackID != nil {
		body["rack"] = *req.RackID
	}

	if req.VirtualChassisID != nil {
		body["virtual_chassis"] = *req.VirtualChassisID

		if req.VCPosition != nil {
			body["vc_position"] = *req.VCPosition
		}
	}

	created, err := s.postJSON(ctx, "/api/dcim/devices/", body)
	if err != nil {
		return nil, err
	}

	return &models.CreatedRef{Kind: models.ObjectKindDevice, ID: created.ID, Name: created.Name}, nil
}

func (s *NetboxStore) CreateVM(ctx context.Context, req *VMCreate) (*models.CreatedRef, error) {
	body := map[string]interface{}{
		"name":    req.Name,
		"cluster": req.ClusterID,
		"status":  "active",
		"custom_fields": map[string]interface{}{
			s.config.ExternalIDField: req.ExternalID,
		},
	}

	if req.RoleID != nil {
		body["role"] = *req.RoleID
	}

	if req.PlatformID != nil {
		body["platform"] = *req.PlatformID
	}

	created, err := s.postJSON(ctx, "/api/virtualization/virtual-machines/", body)
	if err != nil {
		return nil, err
	}

	return &models.CreatedRef{Kind: models.ObjectKindVM, ID: created.ID, Name: created.Name}, nil
}

func (s *NetboxStore) CreateVirtualChassis(ctx context.Context, req *VCCreate) (*models.CreatedRef, error) {
	created, err := s.postJSON(ctx, "/api/dcim/virtual-chassis/", map[string]interface{}{
		"name": req.Name,
	})
	if err != nil {
		return nil, err
	}

	return &models.CreatedRef{Kind: models.ObjectKindDevice, ID: created.ID, Name: created.Name}, nil
}

// SetPrimaryIP creates the address and patches it onto the entity. Both steps
// are post-create sync; the caller treats failures as non-fatal.
func (s *NetboxStore) SetPrimaryIP(ctx context.Context, ref *models.CreatedRef, address string) error {
	ipBody := map[string]interface{}{
		"address": address,
		"status":  "active",
	}

	created, err := s.postJSON(ctx, "/api/ipam/ip-addresses/", ipBody)
	if err != nil {
		return fmt.Errorf("failed to create ip address: %w", err)
	}

	path := fmt.Sprintf("/api/dcim/devices/%d/", ref.ID)
	if ref.Kind == models.ObjectKindVM {
		path = fmt.Sprintf("/api/virtualization/virtual-machines/%d/", ref.ID)
	}

	patch := map[string]interface{}{"primary_ip4": created.ID}

	return s.patchJSON(ctx, path, patch)
}

func (s *NetboxStore) listRefs(ctx context.Context, path string, query url.Values) ([]models.ObjectRef, error) {
	if query == nil {
		query = url.Values{}
	}

	query.Set("limit", fmt.Sprintf("%d", pageLimit))

	reqURL := s.buildURL(path, query)
	refs := make([]models.ObjectRef, 0)

	for page := 0; reqURL != ""; page++ {
		if page >= maxPages {
			return nil, errTooManyPages
		}

		var resp listResponse
		if err := s.getJSON(ctx, reqURL, &resp); err != nil {
			return nil, err
		}

		for i := range resp.Results {
			refs = append(refs, resp.Results[i].ref())
		}

		reqURL = resp.Next
	}

	return refs, nil
}

func (s *NetboxStore) buildURL(path string, query url.Values) string {
	reqURL := strings.TrimSuffix(s.config.Endpoint, "/") + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	return reqURL
}

func (s *NetboxStore) getJSON(ctx context.Context, reqURL string, dst interface{}) error {
	return s.doJSON(ctx, http.MethodGet, reqURL, nil, dst)
}

func (s *NetboxStore) postJSON(ctx context.Context, path string, body interface{}) (*createResponse, error) {
	var created createResponse
	if err := s.doJSON(ctx, http.MethodPost, s.buildURL(path, nil), body, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *NetboxStore) patchJSON(ctx context.Context, path string, body interface{}) error {
	return s.doJSON(ctx, http.MethodPatch, s.buildURL(path, nil), body, nil)
}

func (s *NetboxStore) doJSON(ctx context.Context, method, reqURL string, body, dst interface{}) error {
	var reader io.Reader = http.NoBody

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Token "+s.config.APIToken)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer s.closeResponse(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode, resp.StatusCode, string(respBody))
	}

	if dst == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func (s *NetboxStore) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
