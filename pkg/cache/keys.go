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
	"fmt"
	"strings"

	"github.com/routeops/invsync/pkg/models"
)

const keyPrefix = "invsync"

// DeviceKey identifies a per-device payload in the shared cache. Payloads are
// keyed by the full parameter tuple, not by job id, so concurrent jobs with
// identical parameters reuse entries.
type DeviceKey struct {
	ServerKey   string
	Filters     models.DeviceFilters
	DeviceID    int64
	VCDetection bool
}

// String renders the key deterministically; filter fields are serialized in a
// fixed order so equal tuples always produce equal keys.
func (k DeviceKey) String() string {
	return fmt.Sprintf("%s:device:%s:%s:%d:vc=%t",
		keyPrefix, sanitize(k.ServerKey), filterKey(k.Filters), k.DeviceID, k.VCDetection)
}

// VCKey identifies a cached virtual-chassis detection payload. Detection is
// cached per device id regardless of the triggering filter or server context.
func VCKey(deviceID int64) string {
	return fmt.Sprintf("%s:vc:%d", keyPrefix, deviceID)
}

// JobKey identifies a persisted job record.
func JobKey(jobID string) string {
	return fmt.Sprintf("%s:job:%s", keyPrefix, jobID)
}

// DeviceListKey identifies a cached provider ListDevices response.
func DeviceListKey(serverKey string, filters models.DeviceFilters) string {
	return fmt.Sprintf("%s:devices:%s:%s", keyPrefix, sanitize(serverKey), filterKey(filters))
}

// DeviceFetchKey identifies a cached provider GetDevice response.
func DeviceFetchKey(serverKey string, deviceID int64) string {
	return fmt.Sprintf("%s:devicefetch:%s:%d", keyPrefix, sanitize(serverKey), deviceID)
}

func filterKey(f models.DeviceFilters) string {
	return fmt.Sprintf("loc=%s|type=%s|os=%s|enabled=%t",
		sanitize(f.Location), sanitize(f.Type), sanitize(f.OS), f.EnabledOnly)
}

func sanitize(s string) string {
	return strings.NewReplacer(":", "_", "|", "_", " ", "_").Replace(s)
}
