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

// Package models defines the shared data model for invsync.
package models

// ExternalDevice is an immutable snapshot of a device as reported by the
// external monitoring platform. It is fetched on demand and cached with a
// timeout, never persisted.
type ExternalDevice struct {
	ID        int64  `json:"device_id"`
	Hostname  string `json:"hostname"`
	SysName   string `json:"sysname"`
	Hardware  string `json:"hardware"`
	OS        string `json:"os"`
	Serial    string `json:"serial"`
	Location  string `json:"location"`
	PrimaryIP string `json:"primary_ip"`
	Disabled  bool   `json:"disabled"`

	// Computed fields filled in after the snapshot is taken. Exactly one
	// caller owns the record at a time, so no locking is required.
	ComputedName string            `json:"computed_name,omitempty"`
	Validation   *ValidationRecord `json:"validation,omitempty"`
}

// DeviceFilters narrows a ListDevices call. The zero value matches everything.
type DeviceFilters struct {
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	OS          string `json:"os,omitempty"`
	EnabledOnly bool   `json:"enabled_only,omitempty"`
}

// ObjectRef is a reference to an inventory entity.
type ObjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ObjectKind discriminates the two importable entity kinds.
type ObjectKind string

const (
	ObjectKindDevice ObjectKind = "device"
	ObjectKindVM     ObjectKind = "vm"
)

// CreatedRef identifies an entity created in the inventory.
type CreatedRef struct {
	Kind ObjectKind `json:"kind"`
	ID   int64      `json:"id"`
	Name string     `json:"name"`
}
