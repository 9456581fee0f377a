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

// ImportStatus classifies the outcome of a single device import.
type ImportStatus string

const (
	ImportSuccess ImportStatus = "success"
	ImportFailed  ImportStatus = "failed"
	ImportSkipped ImportStatus = "skipped"
)

// ImportResult is the outcome of importing one device.
type ImportResult struct {
	DeviceID int64        `json:"device_id"`
	Status   ImportStatus `json:"status"`
	Created  *CreatedRef  `json:"created,omitempty"`
	Reason   string       `json:"reason,omitempty"`
	// VCGroupCreated marks that this import created a virtual-chassis group.
	VCGroupCreated bool `json:"vc_group_created,omitempty"`
}

// BulkResult is the ledger produced by a bulk import. Every requested device
// id appears in exactly one of the three lists, in processing order.
type BulkResult struct {
	Success []ImportResult `json:"success"`
	Failed  []ImportResult `json:"failed"`
	Skipped []ImportResult `json:"skipped"`

	VCGroupsCreated int `json:"vc_groups_created"`
}

// Add files the result into the matching ledger list.
func (b *BulkResult) Add(res ImportResult) {
	if res.VCGroupCreated {
		b.VCGroupsCreated++
	}

	switch res.Status {
	case ImportSuccess:
		b.Success = append(b.Success, res)
	case ImportFailed:
		b.Failed = append(b.Failed, res)
	case ImportSkipped:
		b.Skipped = append(b.Skipped, res)
	}
}

// Summary condenses the ledger into aggregate counts.
func (b *BulkResult) Summary() JobSummary {
	return JobSummary{
		Success:  len(b.Success),
		Failed:   len(b.Failed),
		Skipped:  len(b.Skipped),
		VCGroups: b.VCGroupsCreated,
	}
}
