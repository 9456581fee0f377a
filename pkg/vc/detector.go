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

// Package vc detects virtual-chassis (stack) membership for external devices.
package vc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/routeops/invsync/pkg/cache"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
	"github.com/routeops/invsync/pkg/provider"
)

const defaultCacheTTL = 10 * time.Minute

// Detector resolves stack membership through the platform API and caches the
// result per device id. Detection never fails hard: transport errors are
// folded into the returned record's DetectionError so an otherwise-valid
// import is never blocked by a flaky stack query.
type Detector struct {
	provider provider.DeviceProvider
	store    cache.KVStore
	ttl      time.Duration
	logger   logger.Logger
}

// NewDetector creates a Detector. A zero ttl selects the default.
func NewDetector(p provider.DeviceProvider, store cache.KVStore, ttl time.Duration, log logger.Logger) *Detector {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Detector{provider: p, store: store, ttl: ttl, logger: log}
}

// Detect returns the stack sub-record for a device. Cached and freshly
// detected payloads are identical for the same device id while the cache
// entry is unexpired.
func (d *Detector) Detect(ctx context.Context, deviceID int64) *models.VCInfo {
	key := cache.VCKey(deviceID)

	if cached := d.getCached(ctx, key); cached != nil {
		return cached
	}

	info, err := d.provider.DetectStack(ctx, deviceID)
	if err != nil {
		d.logger.Warn().Err(err).Int64("device_id", deviceID).Msg("Stack detection failed")

		// Error records are cached like successes so pre-warmed and lazy
		// lookups observe the same payload for the key.
		info = &models.VCInfo{DetectionError: err.Error()}
	}

	d.setCached(ctx, key, info)

	return info
}

// Prewarm runs detection for a whole candidate set before a validation loop,
// so the loop itself hits only the cache. Failed detections are cached too,
// as error records, keeping pre-warmed and lazy payloads identical. stop is
// checked between devices; a nil stop only observes context cancellation.
func (d *Detector) Prewarm(ctx context.Context, deviceIDs []int64, stop func() bool) {
	for _, id := range deviceIDs {
		if ctx.Err() != nil || (stop != nil && stop()) {
			return
		}

		d.Detect(ctx, id)
	}
}

func (d *Detector) getCached(ctx context.Context, key string) *models.VCInfo {
	data, found, err := d.store.Get(ctx, key)
	if err != nil {
		d.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return nil
	}

	if !found {
		return nil
	}

	var info models.VCInfo
	if err := json.Unmarshal(data, &info); err != nil {
		d.logger.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		return nil
	}

	return &info
}

func (d *Detector) setCached(ctx context.Context, key string, info *models.VCInfo) {
	data, err := json.Marshal(info)
	if err != nil {
		return
	}

	if err := d.store.Set(ctx, key, data, d.ttl); err != nil {
		d.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
