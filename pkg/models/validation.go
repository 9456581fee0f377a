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

// MatchType describes how a match slot was resolved.
type MatchType string

const (
	MatchTypeExact  MatchType = "exact"
	MatchTypeNone   MatchType = "none"
	MatchTypeManual MatchType = "manual"
	// MatchTypeImplicit marks a slot the chosen import kind does not require,
	// e.g. site on a VM record.
	MatchTypeImplicit MatchType = "implicit"
)

// MatchResult is one match slot of a ValidationRecord.
type MatchResult struct {
	Found       bool        `json:"found"`
	Value       *ObjectRef  `json:"value,omitempty"`
	MatchType   MatchType   `json:"match_type"`
	Suggestions []ObjectRef `json:"suggestions,omitempty"`
}

// ExistingMatchKind ranks how an already-present inventory object was found.
// ID matches are authoritative; IP matches are the weakest.
type ExistingMatchKind string

const (
	ExistingMatchID       ExistingMatchKind = "id-match"
	ExistingMatchHostname ExistingMatchKind = "hostname-match"
	ExistingMatchIP       ExistingMatchKind = "ip-match"
)

// ExistingMatch records an inventory object that already represents the
// external device. Kind is the discriminant between device and VM.
type ExistingMatch struct {
	Kind      ObjectKind        `json:"kind"`
	Ref       ObjectRef         `json:"ref"`
	MatchKind ExistingMatchKind `json:"match_kind"`
}

// ValidationRecord is the per-device reconciliation state. It is built once by
// the validator and then corrected incrementally as the operator supplies
// missing selections. Issues are always derivable from the slot state, so the
// mutation helpers recompute them from scratch instead of patching the list.
type ValidationRecord struct {
	DeviceID   int64 `json:"device_id"`
	CanImport  bool  `json:"can_import"`
	IsReady    bool  `json:"is_ready"`
	ImportAsVM bool  `json:"import_as_vm"`

	Existing *ExistingMatch `json:"existing_match,omitempty"`

	Site       MatchResult `json:"site"`
	DeviceType MatchResult `json:"device_type"`
	Role       MatchResult `json:"role"`
	Cluster    MatchResult `json:"cluster"`
	Platform   MatchResult `json:"platform"`
	Rack       *ObjectRef  `json:"rack,omitempty"`

	MissingHostname bool `json:"missing_hostname,omitempty"`

	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`

	// VirtualChassis is never nil after validation; Skipped distinguishes
	// "detection not requested" from "ran, found nothing".
	VirtualChassis *VCInfo `json:"virtual_chassis"`
}

// VCMember is one physical unit of a stacked device.
type VCMember struct {
	Position      int    `json:"position"`
	Serial        string `json:"serial"`
	SuggestedName string `json:"suggested_name"`
}

// VCInfo is the virtual-chassis sub-record attached to a ValidationRecord.
type VCInfo struct {
	Skipped        bool       `json:"skipped,omitempty"`
	IsStack        bool       `json:"is_stack"`
	MemberCount    int        `json:"member_count"`
	Members        []VCMember `json:"members,omitempty"`
	DetectionError string     `json:"detection_error,omitempty"`
}

// VCSkipped is the sentinel attached when detection was not requested.
func VCSkipped() *VCInfo {
	return &VCInfo{Skipped: true}
}
