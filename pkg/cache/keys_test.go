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

package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeops/invsync/pkg/models"
)

func TestDeviceKeyDeterministic(t *testing.T) {
	key := DeviceKey{
		ServerKey:   "nms-1",
		Filters:     models.DeviceFilters{Location: "NYC", EnabledOnly: true},
		DeviceID:    42,
		VCDetection: true,
	}

	same := DeviceKey{
		ServerKey:   "nms-1",
		Filters:     models.DeviceFilters{Location: "NYC", EnabledOnly: true},
		DeviceID:    42,
		VCDetection: true,
	}

	require.Equal(t, key.String(), same.String())
}

func TestDeviceKeyTupleScoped(t *testing.T) {
	base := DeviceKey{
		ServerKey:   "nms-1",
		Filters:     models.DeviceFilters{Location: "NYC"},
		DeviceID:    42,
		VCDetection: true,
	}

	tests := []struct {
		name  string
		other DeviceKey
	}{
		{name: "different server", other: DeviceKey{ServerKey: "nms-2", Filters: base.Filters, DeviceID: 42, VCDetection: true}},
		{name: "different filters", other: DeviceKey{ServerKey: "nms-1", Filters: models.DeviceFilters{Location: "SFO"}, DeviceID: 42, VCDetection: true}},
		{name: "different device", other: DeviceKey{ServerKey: "nms-1", Filters: base.Filters, DeviceID: 43, VCDetection: true}},
		{name: "different vc flag", other: DeviceKey{ServerKey: "nms-1", Filters: base.Filters, DeviceID: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEqual(t, base.String(), tt.other.String())
		})
	}
}

func TestVCKeyIgnoresContext(t *testing.T) {
	// Detection results are per device id only; filter and server context
	// must not fragment the cache.
	require.Equal(t, VCKey(7), VCKey(7))
	require.NotEqual(t, VCKey(7), VCKey(8))
}

func TestKeySanitization(t *testing.T) {
	key := DeviceKey{
		ServerKey: "host:8080",
		Filters:   models.DeviceFilters{Location: "New York"},
		DeviceID:  1,
	}

	require.NotContains(t, key.String()[len(keyPrefix):], " ")
	require.Equal(t, key.String(), DeviceKey{
		ServerKey: "host:8080",
		Filters:   models.DeviceFilters{Location: "New York"},
		DeviceID:  1,
	}.String())
}
