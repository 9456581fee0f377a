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

// Package jobs selects the execution mode for imports and defines the
// result-retrieval cache protocol for background runs.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/routeops/invsync/pkg/cache"
	"github.com/routeops/invsync/pkg/importer"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
	"github.com/routeops/invsync/pkg/provider"
)

const (
	defaultCacheTimeout = 15 * time.Minute
	// maxPersistedDeviceIDs bounds the id list stored in a job record; runs
	// beyond it keep full results in the cache but truncate the record.
	maxPersistedDeviceIDs = 10000
)

// Config holds orchestrator settings.
type Config struct {
	ServerKey    string          `json:"server_key"`
	Workers      int             `json:"workers"`
	CacheTimeout models.Duration `json:"cache_timeout"`
	// CancelEvery is the device-count interval between cancellation checks.
	CancelEvery int `json:"cancel_every"`
}

// Request describes one import run.
type Request struct {
	// DeviceIDs selects devices explicitly. When empty, Filters is resolved
	// through the provider instead.
	DeviceIDs   []int64
	Filters     models.DeviceFilters
	Overrides   map[int64]importer.Overrides
	Sync        importer.SyncOptions
	VCDetection bool
	// Background is the operator toggle; nil means "no preference", which
	// defaults to background for cancellability.
	Background *bool
}

// Result is what Start returns: either an inline ledger (synchronous) or a
// job id to poll (background).
type Result struct {
	JobID string             `json:"job_id,omitempty"`
	Bulk  *models.BulkResult `json:"bulk,omitempty"`
}

// Orchestrator runs imports synchronously or on the worker pool, persists job
// records, and serves cached results back to callers.
type Orchestrator struct {
	executor *importer.Executor
	provider provider.DeviceProvider
	store    cache.KVStore
	pool     *Pool
	config   Config
	logger   logger.Logger

	mu     sync.Mutex
	tokens map[string]*Token
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	executor *importer.Executor,
	p provider.DeviceProvider,
	store cache.KVStore,
	config Config,
	log logger.Logger,
) *Orchestrator {
	if time.Duration(config.CacheTimeout) <= 0 {
		config.CacheTimeout = models.Duration(defaultCacheTimeout)
	}

	return &Orchestrator{
		executor: executor,
		provider: p,
		store:    store,
		pool:     NewPool(config.Workers),
		config:   config,
		logger:   log,
		tokens:   make(map[string]*Token),
	}
}

// ShouldRunInBackground decides the execution mode. The operator toggle is
// authoritative when present; the default favors background for
// cancellability. A requested background run still falls back to synchronous
// when no worker is free, with a warning, rather than queuing unreachable
// work.
func (o *Orchestrator) ShouldRunInBackground(toggle *bool) bool {
	want := true
	if toggle != nil {
		want = *toggle
	}

	if want && !o.pool.Available() {
		o.logger.Warn().Msg("No worker available; falling back to synchronous execution")
		return false
	}

	return want
}

// Start runs the request in the selected mode. Synchronous runs return the
// ledger inline; background runs return a job id immediately.
func (o *Orchestrator) Start(ctx context.Context, req *Request) (*Result, error) {
	deviceIDs, err := o.resolveDeviceIDs(ctx, req)
	if err != nil {
		return nil, err
	}

	if !o.ShouldRunInBackground(req.Background) {
		bulk := o.runImport(ctx, deviceIDs, req, nil)
		return &Result{Bulk: bulk}, nil
	}

	jobID := uuid.New().String()
	token := NewToken()

	o.mu.Lock()
	o.tokens[jobID] = token
	o.mu.Unlock()

	record := o.newRecord(jobID, deviceIDs, req)
	o.persistRecord(ctx, record)

	enqueued := o.pool.TryEnqueue(func() {
		// The job outlives the triggering request, so it runs on its own
		// context; cancellation arrives through the token.
		o.run(context.Background(), record, req, token)
	})
	if !enqueued {
		// Lost the race for the last worker; run inline after all.
		o.dropToken(jobID)

		bulk := o.runImport(ctx, deviceIDs, req, nil)

		return &Result{Bulk: bulk}, nil
	}

	o.logger.Info().Str("job_id", jobID).Int("devices", len(deviceIDs)).Msg("Enqueued background import")

	return &Result{JobID: jobID}, nil
}

// Cancel requests cooperative cancellation of a running job. Unknown job ids
// are ignored.
func (o *Orchestrator) Cancel(jobID string) {
	o.mu.Lock()
	token := o.tokens[jobID]
	o.mu.Unlock()

	if token != nil {
		token.Cancel()
	}
}

// Status returns the persisted job record, or nil when the job is unknown or
// its record expired.
func (o *Orchestrator) Status(ctx context.Context, jobID string) *models.JobRecord {
	data, found, err := o.store.Get(ctx, cache.JobKey(jobID))
	if err != nil || !found {
		return nil
	}

	var record models.JobRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}

	return &record
}

// LoadJobResults retrieves the per-device payloads of a completed job. It
// fails soft throughout: an unknown or incomplete job yields an empty list,
// and an expired cache entry silently omits that device. The record is
// returned alongside so callers can tell "nothing matched" from "everything
// expired" via cached_at and cache_timeout.
func (o *Orchestrator) LoadJobResults(ctx context.Context, jobID string) ([]models.DevicePayload, *models.JobRecord) {
	record := o.Status(ctx, jobID)
	if record == nil || !record.Completed {
		return nil, record
	}

	payloads := make([]models.DevicePayload, 0, len(record.DeviceIDs))

	for _, id := range record.DeviceIDs {
		key := o.deviceKey(record.ServerKey, record.Filters, id, record.VCDetection)

		data, found, err := o.store.Get(ctx, key)
		if err != nil || !found {
			continue
		}

		var payload models.DevicePayload
		if err := json.Unmarshal(data, &payload); err != nil {
			o.logger.Warn().Err(err).Str("key", key).Msg("Discarding undecodable payload")
			continue
		}

		payloads = append(payloads, payload)
	}

	return payloads, record
}

// Wait blocks until all background jobs finish. Used at shutdown.
func (o *Orchestrator) Wait() {
	o.pool.Wait()
}

func (o *Orchestrator) run(ctx context.Context, record *models.JobRecord, req *Request, token *Token) {
	defer o.dropToken(record.ID)

	// A panic must not kill the worker silently; the job record carries the
	// failure so pollers see a terminal state instead of a stuck "running".
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		record.Status = models.JobFailed
		record.Error = fmt.Sprintf("%v", r)
		record.Completed = true
		record.CachedAt = time.Now().UTC()
		o.persistRecord(ctx, record)

		o.logger.Error().Str("job_id", record.ID).Str("panic", record.Error).
			Msg("Background import panicked")
	}()

	record.Status = models.JobRunning
	o.persistRecord(ctx, record)

	bulk := o.runImport(ctx, record.DeviceIDs, req, token)

	summary := bulk.Summary()
	record.Summary = &summary
	record.Completed = true
	record.CachedAt = time.Now().UTC()

	if token.Cancelled() {
		record.Status = models.JobCancelled
	} else {
		record.Status = models.JobCompleted
	}

	o.persistRecord(ctx, record)

	o.logger.Info().Str("job_id", record.ID).Str("status", string(record.Status)).
		Int("success", summary.Success).Int("failed", summary.Failed).Int("skipped", summary.Skipped).
		Msg("Background import finished")
}

// runImport executes the shared pipeline and caches every per-device payload
// under its parameter-scoped key.
func (o *Orchestrator) runImport(ctx context.Context, deviceIDs []int64, req *Request, token *Token) *models.BulkResult {
	opts := importer.BulkOptions{
		Sync:        req.Sync,
		VCDetection: req.VCDetection,
		CancelEvery: o.config.CancelEvery,
		OnDevice: func(payload models.DevicePayload) {
			o.cachePayload(ctx, req, payload)
		},
	}

	if token != nil {
		opts.Cancel = token.Cancelled
	}

	return o.executor.BulkImport(ctx, deviceIDs, req.Overrides, opts)
}

func (o *Orchestrator) resolveDeviceIDs(ctx context.Context, req *Request) ([]int64, error) {
	if len(req.DeviceIDs) > 0 {
		return req.DeviceIDs, nil
	}

	devices, err := o.provider.ListDevices(ctx, req.Filters)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(devices))
	for _, dev := range devices {
		ids = append(ids, dev.ID)
	}

	return ids, nil
}

func (o *Orchestrator) newRecord(jobID string, deviceIDs []int64, req *Request) *models.JobRecord {
	persisted := deviceIDs
	if len(persisted) > maxPersistedDeviceIDs {
		o.logger.Warn().Int("devices", len(persisted)).Msg("Truncating persisted device id list")
		persisted = persisted[:maxPersistedDeviceIDs]
	}

	return &models.JobRecord{
		ID:           jobID,
		Status:       models.JobQueued,
		DeviceIDs:    persisted,
		Filters:      req.Filters,
		ServerKey:    o.config.ServerKey,
		VCDetection:  req.VCDetection,
		CachedAt:     time.Now().UTC(),
		CacheTimeout: o.config.CacheTimeout,
	}
}

func (o *Orchestrator) cachePayload(ctx context.Context, req *Request, payload models.DevicePayload) {
	if payload.Device == nil {
		return
	}

	key := o.deviceKey(o.config.ServerKey, req.Filters, payload.Device.ID, req.VCDetection)

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if err := o.store.Set(ctx, key, data, time.Duration(o.config.CacheTimeout)); err != nil {
		o.logger.Warn().Err(err).Str("key", key).Msg("Payload cache write failed")
	}
}

func (o *Orchestrator) deviceKey(serverKey string, filters models.DeviceFilters, deviceID int64, vcDetection bool) string {
	return cache.DeviceKey{
		ServerKey:   serverKey,
		Filters:     filters,
		DeviceID:    deviceID,
		VCDetection: vcDetection,
	}.String()
}

func (o *Orchestrator) persistRecord(ctx context.Context, record *models.JobRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}

	// Job records live twice as long as payloads so a UI can still explain
	// expired results.
	ttl := 2 * time.Duration(record.CacheTimeout)

	if err := o.store.Set(ctx, cache.JobKey(record.ID), data, ttl); err != nil {
		o.logger.Warn().Err(err).Str("job_id", record.ID).Msg("Job record write failed")
	}
}

func (o *Orchestrator) dropToken(jobID string) {
	o.mu.Lock()
	delete(o.tokens, jobID)
	o.mu.Unlock()
}
