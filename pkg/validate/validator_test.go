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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/match"
	"github.com/routeops/invsync/pkg/models"
)

var errInventoryDown = errors.New("inventory down")

type stubDetector struct {
	info *models.VCInfo
}

func (d *stubDetector) Detect(_ context.Context, _ int64) *models.VCInfo {
	return d.info
}

func newValidator(store inventory.Store) *Validator {
	log := logger.NewTestLogger()

	return NewValidator(store, match.NewMatcher(store, log), log)
}

func testDevice() *models.ExternalDevice {
	return &models.ExternalDevice{
		ID:        42,
		Hostname:  "r1.example.com",
		Hardware:  "ISR4451",
		OS:        "ios",
		Serial:    "FTX123",
		Location:  "NYC",
		PrimaryIP: "10.1.2.3",
	}
}

// expectNoExisting stubs the three lookups to find nothing.
func expectNoExisting(store *inventory.MockStore) {
	store.EXPECT().FindByExternalID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().FindDeviceByIP(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func expectCatalogs(store *inventory.MockStore) {
	store.EXPECT().Sites(gomock.Any()).
		Return([]models.ObjectRef{{ID: 1, Name: "NYC"}}, nil).AnyTimes()
	store.EXPECT().DeviceTypes(gomock.Any()).
		Return([]models.ObjectRef{{ID: 2, Name: "ISR4451"}}, nil).AnyTimes()
	store.EXPECT().Platforms(gomock.Any()).
		Return([]models.ObjectRef{{ID: 3, Name: "ios"}}, nil).AnyTimes()
	store.EXPECT().Roles(gomock.Any()).
		Return([]models.ObjectRef{{ID: 4, Name: "router"}}, nil).AnyTimes()
	store.EXPECT().Clusters(gomock.Any()).
		Return([]models.ObjectRef{{ID: 5, Name: "vmware"}}, nil).AnyTimes()
	store.EXPECT().SerialInUse(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
}

func TestValidateDevicePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	expectNoExisting(store)
	expectCatalogs(store)

	rec := newValidator(store).Validate(context.Background(), testDevice(), false, nil)

	require.False(t, rec.CanImport)
	require.False(t, rec.IsReady)
	require.True(t, rec.Site.Found)
	require.True(t, rec.DeviceType.Found)
	require.True(t, rec.Platform.Found)

	// Roles are never auto-matched; the full catalog comes back for the
	// operator to pick from.
	require.False(t, rec.Role.Found)
	require.Equal(t, []models.ObjectRef{{ID: 4, Name: "router"}}, rec.Role.Suggestions)
	require.Contains(t, rec.Issues, IssueRoleRequired)

	require.True(t, rec.VirtualChassis.Skipped)
}

func TestValidateVMPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	expectNoExisting(store)
	expectCatalogs(store)

	rec := newValidator(store).Validate(context.Background(), testDevice(), true, nil)

	require.False(t, rec.CanImport)
	require.True(t, rec.Site.Found)
	require.True(t, rec.DeviceType.Found)
	require.True(t, rec.Role.Found)
	require.False(t, rec.Cluster.Found)
	require.Equal(t, []models.ObjectRef{{ID: 5, Name: "vmware"}}, rec.Cluster.Suggestions)
	require.Contains(t, rec.Issues, IssueClusterRequired)
}

func TestValidateExistingMatchPrecedence(t *testing.T) {
	idMatch := &models.ExistingMatch{
		Kind:      models.ObjectKindDevice,
		Ref:       models.ObjectRef{ID: 100, Name: "r1"},
		MatchKind: models.ExistingMatchID,
	}
	nameMatch := &models.ExistingMatch{
		Kind:      models.ObjectKindDevice,
		Ref:       models.ObjectRef{ID: 101, Name: "r1.example.com"},
		MatchKind: models.ExistingMatchHostname,
	}
	ipMatch := &models.ExistingMatch{
		Kind:      models.ObjectKindDevice,
		Ref:       models.ObjectRef{ID: 102, Name: "other"},
		MatchKind: models.ExistingMatchIP,
	}

	tests := []struct {
		name     string
		byID     *models.ExistingMatch
		byName   *models.ExistingMatch
		byIP     *models.ExistingMatch
		expected models.ExistingMatchKind
	}{
		{name: "id wins over all", byID: idMatch, byName: nameMatch, byIP: ipMatch, expected: models.ExistingMatchID},
		{name: "name wins over ip", byName: nameMatch, byIP: ipMatch, expected: models.ExistingMatchHostname},
		{name: "ip last", byIP: ipMatch, expected: models.ExistingMatchIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := inventory.NewMockStore(ctrl)
			store.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(tt.byID, nil).AnyTimes()
			store.EXPECT().FindByName(gomock.Any(), "r1.example.com").Return(tt.byName, nil).AnyTimes()
			store.EXPECT().FindDeviceByIP(gomock.Any(), "10.1.2.3").Return(tt.byIP, nil).AnyTimes()

			rec := newValidator(store).Validate(context.Background(), testDevice(), false, nil)

			require.False(t, rec.CanImport)
			require.NotNil(t, rec.Existing)
			require.Equal(t, tt.expected, rec.Existing.MatchKind)
			require.True(t, rec.VirtualChassis.Skipped)
		})
	}
}

func TestValidateIDMatchBlocksRegardlessOfKind(t *testing.T) {
	for _, asVM := range []bool{false, true} {
		ctrl := gomock.NewController(t)
		store := inventory.NewMockStore(ctrl)
		store.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&models.ExistingMatch{
			Kind:      models.ObjectKindDevice,
			Ref:       models.ObjectRef{ID: 100, Name: "r1"},
			MatchKind: models.ExistingMatchID,
		}, nil)

		rec := newValidator(store).Validate(context.Background(), testDevice(), asVM, nil)

		require.False(t, rec.CanImport)
		require.Equal(t, models.ExistingMatchID, rec.Existing.MatchKind)
	}
}

func TestValidateLookupFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	store.EXPECT().FindByExternalID(gomock.Any(), gomock.Any()).Return(nil, errInventoryDown)
	store.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(nil, errInventoryDown)
	store.EXPECT().FindDeviceByIP(gomock.Any(), gomock.Any()).Return(nil, errInventoryDown)
	expectCatalogs(store)

	rec := newValidator(store).Validate(context.Background(), testDevice(), false, nil)

	// Lookup failures read as "not found"; validation still completes.
	require.Nil(t, rec.Existing)
	require.True(t, rec.Site.Found)
}

func TestValidateMissingHostnameBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	expectNoExisting(store)
	expectCatalogs(store)

	dev := testDevice()
	dev.Hostname = ""

	rec := newValidator(store).Validate(context.Background(), dev, false, nil)

	require.True(t, rec.MissingHostname)
	require.Contains(t, rec.Issues, IssueMissingHostname)
	require.False(t, rec.CanImport)
}

func TestValidateDuplicateSerialWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	expectNoExisting(store)
	store.EXPECT().Sites(gomock.Any()).Return([]models.ObjectRef{{ID: 1, Name: "NYC"}}, nil)
	store.EXPECT().DeviceTypes(gomock.Any()).Return([]models.ObjectRef{{ID: 2, Name: "ISR4451"}}, nil)
	store.EXPECT().Platforms(gomock.Any()).Return([]models.ObjectRef{{ID: 3, Name: "ios"}}, nil)
	store.EXPECT().Roles(gomock.Any()).Return(nil, nil)
	store.EXPECT().SerialInUse(gomock.Any(), "FTX123").Return(true, nil)

	rec := newValidator(store).Validate(context.Background(), testDevice(), false, nil)

	require.NotEmpty(t, rec.Warnings)
	// Warnings never block.
	require.NotContains(t, rec.Issues, rec.Warnings[0])
}

func TestValidateAttachesDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	expectNoExisting(store)
	expectCatalogs(store)

	det := &stubDetector{info: &models.VCInfo{IsStack: true, MemberCount: 2}}

	rec := newValidator(store).Validate(context.Background(), testDevice(), false, det)
	require.False(t, rec.VirtualChassis.Skipped)
	require.True(t, rec.VirtualChassis.IsStack)

	// VM imports never run detection.
	rec = newValidator(store).Validate(context.Background(), testDevice(), true, det)
	require.True(t, rec.VirtualChassis.Skipped)
}
