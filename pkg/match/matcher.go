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

// Package match maps external device metadata onto inventory entities.
package match

import (
	"context"
	"strings"

	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
)

// maxSuggestions bounds the candidate list returned on a miss.
const maxSuggestions = 10

// Matcher resolves external metadata to inventory entities. Roles and
// clusters are deliberately absent: assigning either automatically has too
// much blast radius, so they always require operator selection.
type Matcher struct {
	store  inventory.Store
	logger logger.Logger
}

// NewMatcher creates a Matcher over the given inventory store.
func NewMatcher(store inventory.Store, log logger.Logger) *Matcher {
	return &Matcher{store: store, logger: log}
}

// MatchSite resolves a location string to a site by exact case-insensitive
// name match. No fuzzy scoring: a wrong site placement is expensive to undo,
// so ambiguity is pushed to the operator via suggestions.
func (m *Matcher) MatchSite(ctx context.Context, location string) models.MatchResult {
	sites, err := m.store.Sites(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Site lookup failed; treating as no match")
		return noMatch(nil)
	}

	if ref := exactMatch(sites, location); ref != nil {
		return models.MatchResult{Found: true, Value: ref, MatchType: models.MatchTypeExact}
	}

	return noMatch(suggest(sites))
}

// MatchDeviceType resolves a hardware string to a device type. Comparison is
// normalized (case-insensitive, collapsed whitespace).
func (m *Matcher) MatchDeviceType(ctx context.Context, hardware string) models.MatchResult {
	types, err := m.store.DeviceTypes(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Device type lookup failed; treating as no match")
		return noMatch(nil)
	}

	want := normalize(hardware)
	if want != "" {
		for i := range types {
			if normalize(types[i].Name) == want {
				ref := types[i]
				return models.MatchResult{Found: true, Value: &ref, MatchType: models.MatchTypeExact}
			}
		}
	}

	return noMatch(suggest(types))
}

// MatchPlatform resolves an OS string to a platform. A miss is warning-only
// for callers, so no suggestions are produced.
func (m *Matcher) MatchPlatform(ctx context.Context, osName string) models.MatchResult {
	platforms, err := m.store.Platforms(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Platform lookup failed; treating as no match")
		return noMatch(nil)
	}

	if ref := exactMatch(platforms, osName); ref != nil {
		return models.MatchResult{Found: true, Value: ref, MatchType: models.MatchTypeExact}
	}

	return noMatch(nil)
}

func exactMatch(refs []models.ObjectRef, name string) *models.ObjectRef {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil
	}

	for i := range refs {
		if strings.ToLower(strings.TrimSpace(refs[i].Name)) == want {
			ref := refs[i]
			return &ref
		}
	}

	return nil
}

func suggest(refs []models.ObjectRef) []models.ObjectRef {
	if len(refs) > maxSuggestions {
		refs = refs[:maxSuggestions]
	}

	return refs
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func noMatch(suggestions []models.ObjectRef) models.MatchResult {
	return models.MatchResult{MatchType: models.MatchTypeNone, Suggestions: suggestions}
}
