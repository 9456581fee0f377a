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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeops/invsync/pkg/models"
)

func freshDeviceRecord() models.ValidationRecord {
	rec := models.ValidationRecord{
		DeviceID:   42,
		Site:       models.MatchResult{Found: true, Value: &models.ObjectRef{ID: 1, Name: "NYC"}, MatchType: models.MatchTypeExact},
		DeviceType: models.MatchResult{Found: true, Value: &models.ObjectRef{ID: 2, Name: "ISR4451"}, MatchType: models.MatchTypeExact},
		Role:       models.MatchResult{MatchType: models.MatchTypeNone},
		Cluster:    models.MatchResult{Found: true, MatchType: models.MatchTypeImplicit},
	}
	Recompute(&rec)

	return rec
}

func freshVMRecord() models.ValidationRecord {
	rec := models.ValidationRecord{
		DeviceID:   42,
		ImportAsVM: true,
		Site:       models.MatchResult{Found: true, MatchType: models.MatchTypeImplicit},
		DeviceType: models.MatchResult{Found: true, MatchType: models.MatchTypeImplicit},
		Role:       models.MatchResult{Found: true, MatchType: models.MatchTypeImplicit},
		Cluster:    models.MatchResult{MatchType: models.MatchTypeNone},
	}
	Recompute(&rec)

	return rec
}

func TestApplyRoleResolvesIssue(t *testing.T) {
	rec := freshDeviceRecord()
	require.False(t, rec.CanImport)
	require.Contains(t, rec.Issues, IssueRoleRequired)

	got := ApplyRole(rec, models.ObjectRef{ID: 4, Name: "router"}, false)

	require.True(t, got.CanImport)
	require.True(t, got.IsReady)
	require.NotContains(t, got.Issues, IssueRoleRequired)
	require.Equal(t, models.MatchTypeManual, got.Role.MatchType)

	// The input record is untouched.
	require.False(t, rec.CanImport)
}

func TestApplyClusterResolvesIssue(t *testing.T) {
	rec := freshVMRecord()
	require.Contains(t, rec.Issues, IssueClusterRequired)

	got := ApplyCluster(rec, models.ObjectRef{ID: 5, Name: "vmware"})

	require.True(t, got.CanImport)
	require.True(t, got.IsReady)
	require.Empty(t, got.Issues)
}

func TestApplyRackNeverAffectsReadiness(t *testing.T) {
	rec := freshDeviceRecord()

	got := ApplyRack(rec, models.ObjectRef{ID: 9, Name: "R1"})

	require.Equal(t, rec.CanImport, got.CanImport)
	require.Equal(t, rec.IsReady, got.IsReady)
	require.Equal(t, rec.Issues, got.Issues)
	require.NotNil(t, got.Rack)
}

func TestApplyIsIdempotent(t *testing.T) {
	rec := freshDeviceRecord()
	role := models.ObjectRef{ID: 4, Name: "router"}

	once := ApplyRole(rec, role, false)
	twice := ApplyRole(once, role, false)

	require.Equal(t, once, twice)
}

func TestApplyOrderIndependent(t *testing.T) {
	rec := freshVMRecord()
	role := models.ObjectRef{ID: 4, Name: "router"}
	cluster := models.ObjectRef{ID: 5, Name: "vmware"}

	roleFirst := ApplyCluster(ApplyRole(rec, role, true), cluster)
	clusterFirst := ApplyRole(ApplyCluster(rec, cluster), role, true)

	require.Equal(t, roleFirst, clusterFirst)
}

func TestReadyImpliesCanImport(t *testing.T) {
	role := models.ObjectRef{ID: 4, Name: "router"}
	cluster := models.ObjectRef{ID: 5, Name: "vmware"}
	rack := models.ObjectRef{ID: 9, Name: "R1"}

	// Every mutation sequence must preserve is_ready => can_import.
	sequences := []func(models.ValidationRecord) models.ValidationRecord{
		func(r models.ValidationRecord) models.ValidationRecord { return ApplyRole(r, role, r.ImportAsVM) },
		func(r models.ValidationRecord) models.ValidationRecord { return ApplyCluster(r, cluster) },
		func(r models.ValidationRecord) models.ValidationRecord { return ApplyRack(r, rack) },
	}

	for _, start := range []models.ValidationRecord{freshDeviceRecord(), freshVMRecord()} {
		for i, first := range sequences {
			for j, second := range sequences {
				rec := second(first(start))
				if rec.IsReady {
					require.True(t, rec.CanImport, "sequence %d,%d", i, j)
				}
			}
		}
	}
}

func TestKindSwitchToVMReexposesClusterRequirement(t *testing.T) {
	rec := freshDeviceRecord()

	// Flipping a device record to the VM kind must not let the implicit
	// cluster placeholder count as a selection.
	got := ApplyRole(rec, models.ObjectRef{ID: 4, Name: "router"}, true)

	require.False(t, got.CanImport)
	require.False(t, got.IsReady)
	require.Contains(t, got.Issues, IssueClusterRequired)
	require.Nil(t, got.Cluster.Value)

	// Selecting a cluster completes the switched record.
	done := ApplyCluster(got, models.ObjectRef{ID: 5, Name: "vmware"})
	require.True(t, done.IsReady)
}

func TestKindSwitchToDeviceReexposesSiteAndType(t *testing.T) {
	rec := freshVMRecord()

	got := ApplyRole(rec, models.ObjectRef{ID: 4, Name: "router"}, false)

	require.False(t, got.CanImport)
	require.False(t, got.IsReady)
	require.Contains(t, got.Issues, IssueNoSiteMatch)
	require.Contains(t, got.Issues, IssueNoTypeMatch)
	require.NotContains(t, got.Issues, IssueRoleRequired)
}

func TestRoleOptionalForVMReadiness(t *testing.T) {
	rec := freshVMRecord()

	got := ApplyCluster(rec, models.ObjectRef{ID: 5, Name: "vmware"})

	// A VM with a cluster is ready even though no role was ever selected.
	require.True(t, got.IsReady)
}
