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

package validate

import "github.com/routeops/invsync/pkg/models"

// The Apply helpers take and return records by value so callers can keep the
// previous state. Each helper writes exactly one slot and then re-derives
// issues and readiness from scratch, which makes applications idempotent and
// order-independent across distinct slots.

// ApplyRole records an operator role selection.
func ApplyRole(rec models.ValidationRecord, role models.ObjectRef, asVM bool) models.ValidationRecord {
	rec.ImportAsVM = asVM
	rec.Role = manualSelection(role)
	Recompute(&rec)

	return rec
}

// ApplyCluster records an operator cluster selection on a VM record.
func ApplyCluster(rec models.ValidationRecord, cluster models.ObjectRef) models.ValidationRecord {
	rec.Cluster = manualSelection(cluster)
	Recompute(&rec)

	return rec
}

// ApplyRack records a rack selection. Rack placement never gates import, so
// readiness is left untouched.
func ApplyRack(rec models.ValidationRecord, rack models.ObjectRef) models.ValidationRecord {
	rec.Rack = &rack

	return rec
}

func manualSelection(ref models.ObjectRef) models.MatchResult {
	return models.MatchResult{Found: true, Value: &ref, MatchType: models.MatchTypeManual}
}
