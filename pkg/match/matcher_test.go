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

package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
)

var errStoreDown = errors.New("store down")

func TestMatchSite(t *testing.T) {
	sites := []models.ObjectRef{
		{ID: 1, Name: "NYC"},
		{ID: 2, Name: "SFO"},
	}

	tests := []struct {
		name      string
		location  string
		wantFound bool
		wantID    int64
	}{
		{name: "exact", location: "NYC", wantFound: true, wantID: 1},
		{name: "case insensitive", location: "nyc", wantFound: true, wantID: 1},
		{name: "whitespace trimmed", location: " SFO ", wantFound: true, wantID: 2},
		{name: "miss", location: "LAX"},
		{name: "empty", location: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := inventory.NewMockStore(ctrl)
			store.EXPECT().Sites(gomock.Any()).Return(sites, nil)

			matcher := NewMatcher(store, logger.NewTestLogger())

			result := matcher.MatchSite(context.Background(), tt.location)
			require.Equal(t, tt.wantFound, result.Found)

			if tt.wantFound {
				require.NotNil(t, result.Value)
				require.Equal(t, tt.wantID, result.Value.ID)
				require.Equal(t, models.MatchTypeExact, result.MatchType)
			} else {
				require.Equal(t, models.MatchTypeNone, result.MatchType)
			}
		})
	}
}

func TestMatchSiteSuggestionsOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	store.EXPECT().Sites(gomock.Any()).Return([]models.ObjectRef{
		{ID: 1, Name: "NYC"},
		{ID: 2, Name: "SFO"},
	}, nil)

	matcher := NewMatcher(store, logger.NewTestLogger())

	result := matcher.MatchSite(context.Background(), "LAX")
	require.False(t, result.Found)
	require.Len(t, result.Suggestions, 2)
}

func TestMatchSiteSuggestionsBounded(t *testing.T) {
	sites := make([]models.ObjectRef, 25)
	for i := range sites {
		sites[i] = models.ObjectRef{ID: int64(i + 1), Name: "site"}
	}

	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	store.EXPECT().Sites(gomock.Any()).Return(sites, nil)

	matcher := NewMatcher(store, logger.NewTestLogger())

	result := matcher.MatchSite(context.Background(), "LAX")
	require.Len(t, result.Suggestions, maxSuggestions)
}

func TestMatchSiteStoreFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	store.EXPECT().Sites(gomock.Any()).Return(nil, errStoreDown)

	matcher := NewMatcher(store, logger.NewTestLogger())

	result := matcher.MatchSite(context.Background(), "NYC")
	require.False(t, result.Found)
	require.Empty(t, result.Suggestions)
}

func TestMatchDeviceTypeNormalized(t *testing.T) {
	types := []models.ObjectRef{
		{ID: 10, Name: "ISR 4451"},
		{ID: 11, Name: "EX4300-48T"},
	}

	tests := []struct {
		name      string
		hardware  string
		wantFound bool
		wantID    int64
	}{
		{name: "exact", hardware: "EX4300-48T", wantFound: true, wantID: 11},
		{name: "collapsed whitespace", hardware: "isr  4451", wantFound: true, wantID: 10},
		{name: "miss", hardware: "C9300"},
		{name: "empty hardware", hardware: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := inventory.NewMockStore(ctrl)
			store.EXPECT().DeviceTypes(gomock.Any()).Return(types, nil)

			matcher := NewMatcher(store, logger.NewTestLogger())

			result := matcher.MatchDeviceType(context.Background(), tt.hardware)
			require.Equal(t, tt.wantFound, result.Found)

			if tt.wantFound {
				require.Equal(t, tt.wantID, result.Value.ID)
			}
		})
	}
}

func TestMatchPlatformMissHasNoSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := inventory.NewMockStore(ctrl)
	store.EXPECT().Platforms(gomock.Any()).Return([]models.ObjectRef{{ID: 1, Name: "ios"}}, nil)

	matcher := NewMatcher(store, logger.NewTestLogger())

	result := matcher.MatchPlatform(context.Background(), "junos")
	require.False(t, result.Found)
	require.Empty(t, result.Suggestions)
}
