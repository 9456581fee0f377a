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

// Package validate builds and maintains per-device validation records.
package validate

import (
	"context"
	"fmt"

	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/match"
	"github.com/routeops/invsync/pkg/models"
)

// Blocking issue texts. recompute derives the issue list from slot state, so
// these are the only places issues originate.
const (
	IssueAlreadyExists   = "already exists in inventory"
	IssueMissingHostname = "device has no hostname"
	IssueNoSiteMatch     = "no matching site for location"
	IssueNoTypeMatch     = "no matching device type for hardware"
	IssueRoleRequired    = "role selection required"
	IssueClusterRequired = "cluster selection required"
	WarnNoPlatformMatch  = "no matching platform for os"
	WarnDuplicateSerial  = "serial already present on another device"
)

// Detector is the virtual-chassis detection dependency. It is a local
// interface to avoid importing pkg/vc and creating a cycle; Detect never
// fails, it reports problems inside the returned record.
type Detector interface {
	Detect(ctx context.Context, deviceID int64) *models.VCInfo
}

// Validator builds ValidationRecords for external devices.
type Validator struct {
	store   inventory.Store
	matcher *match.Matcher
	logger  logger.Logger
}

// NewValidator creates a Validator.
func NewValidator(store inventory.Store, matcher *match.Matcher, log logger.Logger) *Validator {
	return &Validator{store: store, matcher: matcher, logger: log}
}

// Validate builds the validation record for one device. When det is non-nil
// and the device is not imported as a VM, stack detection runs and its
// sub-record is attached; otherwise the skipped sentinel is attached.
func (v *Validator) Validate(ctx context.Context, dev *models.ExternalDevice, importAsVM bool, det Detector) *models.ValidationRecord {
	rec := &models.ValidationRecord{
		DeviceID:   dev.ID,
		ImportAsVM: importAsVM,
	}

	// Existing-match short-circuit. Order matters: the external-id attribute
	// is authoritative, the primary-address collision is the weakest signal
	// and must never shadow a more specific hit.
	if existing := v.findExisting(ctx, dev, importAsVM); existing != nil {
		rec.Existing = existing
		rec.VirtualChassis = models.VCSkipped()
		Recompute(rec)

		return rec
	}

	if importAsVM {
		// Site, type and role are not required for a VM; the cluster always
		// needs an operator selection.
		rec.Site = implicitMatch()
		rec.DeviceType = implicitMatch()
		rec.Role = implicitMatch()
		rec.Cluster = catalogMiss(v.catalog(ctx, v.store.Clusters))
	} else {
		rec.Site = v.matcher.MatchSite(ctx, dev.Location)
		rec.DeviceType = v.matcher.MatchDeviceType(ctx, dev.Hardware)
		// Roles are never auto-matched; return the full catalog for the
		// operator to choose from.
		rec.Role = catalogMiss(v.catalog(ctx, v.store.Roles))
		rec.Cluster = implicitMatch()
	}

	rec.Platform = v.matcher.MatchPlatform(ctx, dev.OS)
	if !rec.Platform.Found && dev.OS != "" {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("%s %q", WarnNoPlatformMatch, dev.OS))
	}

	if dev.Hostname == "" {
		rec.MissingHostname = true
	}

	v.checkSerial(ctx, dev, rec)

	if det != nil && !importAsVM {
		rec.VirtualChassis = det.Detect(ctx, dev.ID)
	} else {
		rec.VirtualChassis = models.VCSkipped()
	}

	Recompute(rec)

	return rec
}

// findExisting runs the three lookups in precedence order. Store failures are
// soft: a lookup error is treated as "not found" so a flapping inventory
// cannot fail an entire validation pass.
func (v *Validator) findExisting(ctx context.Context, dev *models.ExternalDevice, importAsVM bool) *models.ExistingMatch {
	byID, err := v.store.FindByExternalID(ctx, dev.ID)
	if err != nil {
		v.logger.Warn().Err(err).Int64("device_id", dev.ID).Msg("External-id lookup failed")
	} else if byID != nil {
		return byID
	}

	if dev.Hostname != "" {
		byName, err := v.store.FindByName(ctx, dev.Hostname)
		if err != nil {
			v.logger.Warn().Err(err).Int64("device_id", dev.ID).Msg("Name lookup failed")
		} else if byName != nil {
			return byName
		}
	}

	// Address collisions only apply to the device path.
	if !importAsVM && dev.PrimaryIP != "" {
		byIP, err := v.store.FindDeviceByIP(ctx, dev.PrimaryIP)
		if err != nil {
			v.logger.Warn().Err(err).Int64("device_id", dev.ID).Msg("Primary-address lookup failed")
		} else if byIP != nil {
			return byIP
		}
	}

	return nil
}

func (v *Validator) checkSerial(ctx context.Context, dev *models.ExternalDevice, rec *models.ValidationRecord) {
	if dev.Serial == "" {
		return
	}

	inUse, err := v.store.SerialInUse(ctx, dev.Serial)
	if err != nil {
		v.logger.Warn().Err(err).Int64("device_id", dev.ID).Msg("Serial lookup failed")
		return
	}

	if inUse {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("%s: %s", WarnDuplicateSerial, dev.Serial))
	}
}

func (v *Validator) catalog(ctx context.Context, list func(context.Context) ([]models.ObjectRef, error)) []models.ObjectRef {
	refs, err := list(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("Catalog lookup failed")
		return nil
	}

	return refs
}

// implicitMatch marks a slot that the chosen import kind does not require.
func implicitMatch() models.MatchResult {
	return models.MatchResult{Found: true, MatchType: models.MatchTypeImplicit}
}

func catalogMiss(catalog []models.ObjectRef) models.MatchResult {
	return models.MatchResult{MatchType: models.MatchTypeNone, Suggestions: catalog}
}

// Recompute rebuilds Issues, CanImport and IsReady from the slot state. It is
// the single derivation point, which keeps issues and slots in lock-step no
// matter how the record was mutated.
func Recompute(rec *models.ValidationRecord) {
	issues := make([]string, 0, 4)

	if rec.Existing != nil {
		issues = append(issues, fmt.Sprintf("%s (%s)", IssueAlreadyExists, rec.Existing.MatchKind))
	}

	if rec.MissingHostname {
		issues = append(issues, IssueMissingHostname)
	}

	if rec.ImportAsVM {
		if !satisfied(rec.Cluster) {
			issues = append(issues, IssueClusterRequired)
		}
	} else {
		if !satisfied(rec.Site) {
			issues = append(issues, IssueNoSiteMatch)
		}

		if !satisfied(rec.DeviceType) {
			issues = append(issues, IssueNoTypeMatch)
		}

		if !satisfied(rec.Role) {
			issues = append(issues, IssueRoleRequired)
		}
	}

	rec.Issues = issues
	rec.CanImport = len(issues) == 0

	if rec.ImportAsVM {
		// Role stays optional for VM readiness.
		rec.IsReady = rec.CanImport && satisfied(rec.Cluster)
	} else {
		rec.IsReady = rec.CanImport && satisfied(rec.Site) && satisfied(rec.DeviceType) && satisfied(rec.Role)
	}
}

// satisfied reports whether a slot carries a real selection. An implicit
// placeholder left over from the other import kind never satisfies a
// requirement, so switching the kind re-exposes the slots the new kind needs.
func satisfied(slot models.MatchResult) bool {
	return slot.Found && slot.MatchType != models.MatchTypeImplicit
}
