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

// Package importer executes validated device imports against the inventory.
package importer

import (
	"context"
	"fmt"

	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
	"github.com/routeops/invsync/pkg/naming"
	"github.com/routeops/invsync/pkg/provider"
	"github.com/routeops/invsync/pkg/validate"
)

// defaultCancelEvery is how many devices a bulk run processes between
// cancellation checks.
const defaultCancelEvery = 10

// Overrides carries operator-supplied selections for one device. A non-nil
// override always wins over the validation record's slot.
type Overrides struct {
	Site       *models.ObjectRef
	DeviceType *models.ObjectRef
	Role       *models.ObjectRef
	Cluster    *models.ObjectRef
	Platform   *models.ObjectRef
	Rack       *models.ObjectRef
}

// SyncOptions toggles the best-effort post-create sync steps.
type SyncOptions struct {
	// SetPrimaryIP assigns the device's primary address after creation.
	SetPrimaryIP bool `json:"set_primary_ip"`
}

// CancelCheck reports whether a bulk run should stop. It is polled at fixed
// device-count intervals, not per device.
type CancelCheck func() bool

// StackPrewarmer is implemented by detectors that can warm their cache for a
// whole candidate set ahead of the bulk loop, so the per-device validation
// path hits only the cache.
type StackPrewarmer interface {
	Prewarm(ctx context.Context, deviceIDs []int64, stop func() bool)
}

// BulkOptions configures a bulk import run.
type BulkOptions struct {
	Sync        SyncOptions
	VCDetection bool
	// CancelEvery overrides the cancellation polling interval; zero selects
	// the default.
	CancelEvery int
	Cancel      CancelCheck
	// OnDevice, when set, receives the full payload of every processed
	// device. Callers use it to populate the shared result cache.
	OnDevice func(payload models.DevicePayload)
}

// Executor performs atomic create operations against the inventory.
type Executor struct {
	provider  provider.DeviceProvider
	store     inventory.Store
	validator *validate.Validator
	resolver  *naming.Resolver
	detector  validate.Detector
	logger    logger.Logger
}

// NewExecutor creates an Executor. detector may be nil to disable stack
// detection entirely.
func NewExecutor(
	p provider.DeviceProvider,
	store inventory.Store,
	validator *validate.Validator,
	resolver *naming.Resolver,
	detector validate.Detector,
	log logger.Logger,
) *Executor {
	return &Executor{
		provider:  p,
		store:     store,
		validator: validator,
		resolver:  resolver,
		detector:  detector,
		logger:    log,
	}
}

// ImportOne imports a single device using its validation record plus operator
// overrides. An existing match classifies as skipped; a missing required
// selection fails fast with a descriptive reason. The created entity and its
// external-id attribute are written in one request, so there is no partial
// state to clean up on failure.
func (e *Executor) ImportOne(
	ctx context.Context,
	dev *models.ExternalDevice,
	rec *models.ValidationRecord,
	ov Overrides,
	opts SyncOptions,
) models.ImportResult {
	if rec.Existing != nil {
		return models.ImportResult{
			DeviceID: dev.ID,
			Status:   models.ImportSkipped,
			Reason:   fmt.Sprintf("already in inventory as %q (%s)", rec.Existing.Ref.Name, rec.Existing.MatchKind),
		}
	}

	name := e.resolver.ResolveName(dev)
	if name == "" {
		return failure(dev.ID, "device has no resolvable name")
	}

	dev.ComputedName = name

	// A cluster selection routes the device through the VM path.
	if rec.ImportAsVM || ov.Cluster != nil {
		return e.importVM(ctx, dev, rec, ov, opts, name)
	}

	return e.importDevice(ctx, dev, rec, ov, opts, name)
}

func (e *Executor) importVM(
	ctx context.Context,
	dev *models.ExternalDevice,
	rec *models.ValidationRecord,
	ov Overrides,
	opts SyncOptions,
	name string,
) models.ImportResult {
	cluster := pick(ov.Cluster, rec.Cluster)
	if cluster == nil {
		return failure(dev.ID, "no cluster selected")
	}

	req := &inventory.VMCreate{
		Name:       name,
		ClusterID:  cluster.ID,
		RoleID:     refID(pick(ov.Role, rec.Role)),
		PlatformID: refID(pick(ov.Platform, rec.Platform)),
		ExternalID: dev.ID,
	}

	created, err := e.store.CreateVM(ctx, req)
	if err != nil {
		return failure(dev.ID, fmt.Sprintf("create failed: %v", err))
	}

	e.postCreateSync(ctx, dev, created, opts)

	e.logger.Info().Int64("device_id", dev.ID).Str("name", name).Msg("Imported virtual machine")

	return models.ImportResult{DeviceID: dev.ID, Status: models.ImportSuccess, Created: created}
}

func (e *Executor) importDevice(
	ctx context.Context,
	dev *models.ExternalDevice,
	rec *models.ValidationRecord,
	ov Overrides,
	opts SyncOptions,
	name string,
) models.ImportResult {
	site := pick(ov.Site, rec.Site)
	if site == nil {
		return failure(dev.ID, fmt.Sprintf("no site matched for location %q", dev.Location))
	}

	devType := pick(ov.DeviceType, rec.DeviceType)
	if devType == nil {
		return failure(dev.ID, fmt.Sprintf("no device type matched for hardware %q", dev.Hardware))
	}

	role := pick(ov.Role, rec.Role)
	if role == nil {
		return failure(dev.ID, "no role selected")
	}

	rack := ov.Rack
	if rack == nil {
		rack = rec.Rack
	}

	platform := pick(ov.Platform, rec.Platform)

	if stack := rec.VirtualChassis; stack != nil && stack.IsStack {
		return e.importStack(ctx, dev, opts, name, stack, site, devType, role, platform, rack)
	}

	req := &inventory.DeviceCreate{
		Name:         name,
		SiteID:       site.ID,
		DeviceTypeID: devType.ID,
		RoleID:       role.ID,
		PlatformID:   refID(platform),
		RackID:       refID(rack),
		Serial:       dev.Serial,
		ExternalID:   dev.ID,
	}

	created, err := e.store.CreateDevice(ctx, req)
	if err != nil {
		return failure(dev.ID, fmt.Sprintf("create failed: %v", err))
	}

	e.postCreateSync(ctx, dev, created, opts)

	e.logger.Info().Int64("device_id", dev.ID).Str("name", name).Msg("Imported device")

	return models.ImportResult{DeviceID: dev.ID, Status: models.ImportSuccess, Created: created}
}

// importStack creates the virtual-chassis group and one device per member.
// The first member carries the external-id attribute and the primary address;
// later member failures degrade the import but do not undo created members.
func (e *Executor) importStack(
	ctx context.Context,
	dev *models.ExternalDevice,
	opts SyncOptions,
	name string,
	stack *models.VCInfo,
	site, devType, role, platform, rack *models.ObjectRef,
) models.ImportResult {
	group, err := e.store.CreateVirtualChassis(ctx, &inventory.VCCreate{Name: name})
	if err != nil {
		return failure(dev.ID, fmt.Sprintf("virtual chassis create failed: %v", err))
	}

	var first *models.CreatedRef

	for i, member := range stack.Members {
		position := member.Position
		req := &inventory.DeviceCreate{
			Name:             e.resolver.MemberName(name, member),
			SiteID:           site.ID,
			DeviceTypeID:     devType.ID,
			RoleID:           role.ID,
			PlatformID:       refID(platform),
			RackID:           refID(rack),
			Serial:           member.Serial,
			VirtualChassisID: &group.ID,
			VCPosition:       &position,
		}

		if i == 0 {
			req.ExternalID = dev.ID
		}

		created, err := e.store.CreateDevice(ctx, req)
		if err != nil {
			if first == nil {
				return models.ImportResult{
					DeviceID:       dev.ID,
					Status:         models.ImportFailed,
					Reason:         fmt.Sprintf("member create failed: %v", err),
					VCGroupCreated: true,
				}
			}

			e.logger.Warn().Err(err).Int64("device_id", dev.ID).Int("position", position).
				Msg("Stack member create failed; continuing with remaining members")

			continue
		}

		if first == nil {
			first = created
		}
	}

	e.postCreateSync(ctx, dev, first, opts)

	e.logger.Info().Int64("device_id", dev.ID).Str("name", name).
		Int("members", len(stack.Members)).Msg("Imported virtual chassis")

	return models.ImportResult{
		DeviceID:       dev.ID,
		Status:         models.ImportSuccess,
		Created:        first,
		VCGroupCreated: true,
	}
}

// BulkImport processes device ids strictly sequentially; one device's failure
// never aborts its siblings. The cancel check, when provided, is polled every
// CancelEvery devices; already-produced results stay valid after a cancel.
func (e *Executor) BulkImport(
	ctx context.Context,
	deviceIDs []int64,
	overrides map[int64]Overrides,
	opts BulkOptions,
) *models.BulkResult {
	result := &models.BulkResult{}

	cancelEvery := opts.CancelEvery
	if cancelEvery <= 0 {
		cancelEvery = defaultCancelEvery
	}

	if opts.VCDetection {
		if pre, ok := e.detector.(StackPrewarmer); ok {
			pre.Prewarm(ctx, deviceIDs, opts.Cancel)
		}
	}

	for i, id := range deviceIDs {
		if i%cancelEvery == 0 {
			if ctx.Err() != nil || (opts.Cancel != nil && opts.Cancel()) {
				e.logger.Info().Int("processed", i).Int("total", len(deviceIDs)).
					Msg("Bulk import cancelled")

				break
			}
		}

		result.Add(e.importByID(ctx, id, overrides[id], opts))
	}

	return result
}

func (e *Executor) importByID(ctx context.Context, id int64, ov Overrides, opts BulkOptions) models.ImportResult {
	dev, err := e.provider.GetDevice(ctx, id)
	if err != nil {
		return failure(id, fmt.Sprintf("device fetch failed: %v", err))
	}

	asVM := ov.Cluster != nil

	det := e.detector
	if !opts.VCDetection {
		det = nil
	}

	rec := e.validator.Validate(ctx, dev, asVM, det)
	dev.Validation = rec

	res := e.ImportOne(ctx, dev, rec, ov, opts.Sync)

	if opts.OnDevice != nil {
		opts.OnDevice(models.DevicePayload{Device: dev, Validation: rec, Result: &res})
	}

	return res
}

// postCreateSync runs the best-effort steps after a create. Failures log and
// continue; they never change the reported import outcome.
func (e *Executor) postCreateSync(ctx context.Context, dev *models.ExternalDevice, created *models.CreatedRef, opts SyncOptions) {
	if created == nil || !opts.SetPrimaryIP || dev.PrimaryIP == "" {
		return
	}

	if err := e.store.SetPrimaryIP(ctx, created, dev.PrimaryIP); err != nil {
		e.logger.Warn().Err(err).Int64("device_id", dev.ID).Msg("Primary address sync failed")
	}
}

// pick prefers the operator override, then the validation slot's value.
func pick(override *models.ObjectRef, slot models.MatchResult) *models.ObjectRef {
	if override != nil {
		return override
	}

	if slot.Found && slot.Value != nil {
		return slot.Value
	}

	return nil
}

func refID(ref *models.ObjectRef) *int64 {
	if ref == nil {
		return nil
	}

	return &ref.ID
}

func failure(deviceID int64, reason string) models.ImportResult {
	return models.ImportResult{DeviceID: deviceID, Status: models.ImportFailed, Reason: reason}
}
