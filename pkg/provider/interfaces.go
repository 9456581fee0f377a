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

//go:generate mockgen -destination=mock_provider.go -package=provider github.com/routeops/invsync/pkg/provider DeviceProvider

// Package provider talks to the external monitoring platform's API.
package provider

import (
	"context"
	"errors"
	"net/http"

	"github.com/routeops/invsync/pkg/models"
)

var (
	// ErrDeviceNotFound is returned when the platform has no such device.
	ErrDeviceNotFound = errors.New("device not found")

	errUnexpectedStatusCode = errors.New("unexpected status code")
)

// DeviceProvider is the read-only source of discovered devices. All calls are
// idempotent and safely retryable.
type DeviceProvider interface {
	// GetDevice fetches a single device snapshot.
	GetDevice(ctx context.Context, deviceID int64) (*models.ExternalDevice, error)

	// ListDevices fetches devices matching the filters.
	ListDevices(ctx context.Context, filters models.DeviceFilters) ([]*models.ExternalDevice, error)

	// DetectStack queries stack membership for a device. Callers treat any
	// error as a soft detection failure, never a crash.
	DetectStack(ctx context.Context, deviceID int64) (*models.VCInfo, error)
}

// HTTPClient abstracts http.Client for testing and wrapping.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
