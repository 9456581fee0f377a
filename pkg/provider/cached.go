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
	"context"
	"encoding/json"
	"time"

	"github.com/routeops/invsync/pkg/cache"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
)

const defaultFetchCacheTTL = 5 * time.Minute

// CachedProvider wraps a DeviceProvider with a read-through device cache.
// Device snapshots are fetched on demand and cached with a timeout, never
// persisted. Stack detection is not cached here; the vc package owns that.
type CachedProvider struct {
	inner     DeviceProvider
	store     cache.KVStore
	serverKey string
	ttl       time.Duration
	logger    logger.Logger
}

// NewCachedProvider creates a caching wrapper around inner.
func NewCachedProvider(inner DeviceProvider, store cache.KVStore, serverKey string, ttl time.Duration, log logger.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = defaultFetchCacheTTL
	}

	return &CachedProvider{
		inner:     inner,
		store:     store,
		serverKey: serverKey,
		ttl:       ttl,
		logger:    log,
	}
}

func (p *CachedProvider) GetDevice(ctx context.Context, deviceID int64) (*models.ExternalDevice, error) {
	key := cache.DeviceFetchKey(p.serverKey, deviceID)

	var cached models.ExternalDevice
	if p.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	device, err := p.inner.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	p.setCached(ctx, key, device)

	return device, nil
}

func (p *CachedProvider) ListDevices(ctx context.Context, filters models.DeviceFilters) ([]*models.ExternalDevice, error) {
	key := cache.DeviceListKey(p.serverKey, filters)

	var cached []*models.ExternalDevice
	if p.getCached(ctx, key, &cached) {
		return cached, nil
	}

	devices, err := p.inner.ListDevices(ctx, filters)
	if err != nil {
		return nil, err
	}

	p.setCached(ctx, key, devices)

	return devices, nil
}

func (p *CachedProvider) DetectStack(ctx context.Context, deviceID int64) (*models.VCInfo, error) {
	return p.inner.DetectStack(ctx, deviceID)
}

// getCached is best-effort: a cache failure falls through to the platform.
func (p *CachedProvider) getCached(ctx context.Context, key string, dst interface{}) bool {
	data, found, err := p.store.Get(ctx, key)
	if err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("Device cache read failed")
		return false
	}

	if !found {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("Device cache entry corrupt")
		return false
	}

	return true
}

func (p *CachedProvider) setCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := p.store.Set(ctx, key, data, p.ttl); err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("Device cache write failed")
	}
}
