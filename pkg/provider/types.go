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
	"strings"

	"github.com/routeops/invsync/pkg/models"
)

// Config holds connection settings for the monitoring platform API.
type Config struct {
	Endpoint           string          `json:"endpoint"`
	APIToken           string          `json:"api_token"`
	ServerKey          string          `json:"server_key"`
	Timeout            models.Duration `json:"timeout"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify"`
}

// Device is a device as returned by the platform API.
type Device struct {
	DeviceID int64  `json:"device_id"`
	Hostname string `json:"hostname"`
	SysName  string `json:"sysName"`
	Hardware string `json:"hardware"`
	OS       string `json:"os"`
	Serial   string `json:"serial"`
	Location string `json:"location"`
	IP       string `json:"ip"`
	Disabled int    `json:"disabled"`
}

// DeviceResponse is the platform's device list/detail envelope.
type DeviceResponse struct {
	Status  string   `json:"status"`
	Count   int      `json:"count"`
	Devices []Device `json:"devices"`
}

// StackMember is one unit of a stacked device as reported by the platform.
type StackMember struct {
	Position int    `json:"position"`
	Serial   string `json:"serial"`
	Name     string `json:"name"`
}

// StackResponse is the platform's stack detection envelope.
type StackResponse struct {
	Status  string        `json:"status"`
	Count   int           `json:"count"`
	Members []StackMember `json:"members"`
}

func (d *Device) toModel() *models.ExternalDevice {
	return &models.ExternalDevice{
		ID:        d.DeviceID,
		Hostname:  strings.TrimSpace(d.Hostname),
		SysName:   strings.TrimSpace(d.SysName),
		Hardware:  strings.TrimSpace(d.Hardware),
		OS:        strings.TrimSpace(d.OS),
		Serial:    strings.TrimSpace(d.Serial),
		Location:  strings.TrimSpace(d.Location),
		PrimaryIP: strings.TrimSpace(d.IP),
		Disabled:  d.Disabled != 0,
	}
}

func (s *StackResponse) toModel() *models.VCInfo {
	info := &models.VCInfo{
		IsStack:     len(s.Members) > 1,
		MemberCount: len(s.Members),
	}

	for _, m := range s.Members {
		info.Members = append(info.Members, models.VCMember{
			Position:      m.Position,
			Serial:        m.Serial,
			SuggestedName: m.Name,
		})
	}

	return info
}
