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

package models

import "time"

// JobStatus is the lifecycle state of a background job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// JobSummary holds the aggregate counts persisted with a completed job.
type JobSummary struct {
	Success  int `json:"success"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	VCGroups int `json:"vc_groups"`
}

// JobRecord is the persisted state of a background job. Per-device payloads
// are NOT stored here; they live in the shared cache under device-scoped keys
// so that concurrent jobs with identical parameters reuse entries.
type JobRecord struct {
	ID           string        `json:"id"`
	Status       JobStatus     `json:"status"`
	DeviceIDs    []int64       `json:"device_ids"`
	Filters      DeviceFilters `json:"filters"`
	ServerKey    string        `json:"server_key"`
	VCDetection  bool          `json:"vc_detection_enabled"`
	CachedAt     time.Time     `json:"cached_at"`
	CacheTimeout Duration      `json:"cache_timeout"`
	Completed    bool          `json:"completed"`
	Summary      *JobSummary   `json:"summary,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// DevicePayload is the per-device cache entry a UI retrieves after a job
// completes. The same shape is produced by synchronous runs.
type DevicePayload struct {
	Device     *ExternalDevice   `json:"device"`
	Validation *ValidationRecord `json:"validation,omitempty"`
	Result     *ImportResult     `json:"result,omitempty"`
}
