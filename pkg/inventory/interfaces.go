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

//go:generate mockgen -destination=mock_store.go -package=inventory github.com/routeops/invsync/pkg/inventory Store

// Package inventory reads and writes the asset-inventory system.
package inventory

import (
	"context"

	"github.com/routeops/invsync/pkg/models"
)

// Store is the inventory access layer. Reads serve matching and duplicate
// detection; writes are limited to atomic create operations that set the
// external-id attribute in the same request.
type Store interface {
	// Sites lists all sites.
	Sites(ctx context.Context) ([]models.ObjectRef, error)

	// DeviceTypes lists all device types; Name carries the hardware model.
	DeviceTypes(ctx context.Context) ([]models.ObjectRef, error)

	// Platforms lists all platforms.
	Platforms(ctx context.Context) ([]models.ObjectRef, error)

	// Roles lists the full device-role catalog.
	Roles(ctx context.Context) ([]models.ObjectRef, error)

	// Clusters lists the full virtualization-cluster catalog.
	Clusters(ctx context.Context) ([]models.ObjectRef, error)

	// Racks lists racks at the given site.
	Racks(ctx context.Context, siteID int64) ([]models.ObjectRef, error)

	// FindByExternalID looks for a device or VM tagged with the external
	// device id. Returns (nil, nil) when nothing matches.
	FindByExternalID(ctx context.Context, externalID int64) (*models.ExistingMatch, error)

	// FindByName looks for a device or VM with the exact name.
	FindByName(ctx context.Context, name string) (*models.ExistingMatch, error)

	// FindDeviceByIP looks for a device holding the given primary address.
	FindDeviceByIP(ctx context.Context, ip string) (*models.ExistingMatch, error)

	// SerialInUse reports whether any other device carries this serial.
	SerialInUse(ctx context.Context, serial string) (bool, error)

	// CreateDevice creates a device plus its external-id attribute as one
	// atomic unit.
	CreateDevice(ctx context.Context, req *DeviceCreate) (*models.CreatedRef, error)

	// CreateVM creates a virtual machine plus its external-id attribute as
	// one atomic unit.
	CreateVM(ctx context.Context, req *VMCreate) (*models.CreatedRef, error)

	// CreateVirtualChassis creates an empty virtual-chassis group.
	CreateVirtualChassis(ctx context.Context, req *VCCreate) (*models.CreatedRef, error)

	// SetPrimaryIP assigns the primary address after creation. Best-effort:
	// failures never roll back the parent create.
	SetPrimaryIP(ctx context.Context, ref *models.CreatedRef, address string) error
}

// DeviceCreate is the payload for an atomic device create.
type DeviceCreate struct {
	Name             string
	SiteID           int64
	DeviceTypeID     int64
	RoleID           int64
	PlatformID       *int64
	RackID           *int64
	Serial           string
	ExternalID       int64
	VirtualChassisID *int64
	VCPosition       *int
}

// VMCreate is the payload for an atomic virtual-machine create.
type VMCreate struct {
	Name       string
	ClusterID  int64
	RoleID     *int64
	PlatformID *int64
	ExternalID int64
}

// VCCreate is the payload for a virtual-chassis group create.
type VCCreate struct {
	Name string
}
