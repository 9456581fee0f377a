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

package vc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/routeops/invsync/pkg/cache"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/models"
	"github.com/routeops/invsync/pkg/provider"
)

var errPlatformDown = errors.New("platform down")

func stackInfo() *models.VCInfo {
	return &models.VCInfo{
		IsStack:     true,
		MemberCount: 2,
		Members: []models.VCMember{
			{Position: 1, Serial: "AAA", SuggestedName: "sw1-1"},
			{Position: 2, Serial: "BBB", SuggestedName: "sw1-2"},
		},
	}
}

func TestDetectCachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)
	// The platform is hit exactly once; the second call is served from cache.
	p.EXPECT().DetectStack(gomock.Any(), int64(7)).Return(stackInfo(), nil).Times(1)

	detector := NewDetector(p, cache.NewMemoryStore(), time.Minute, logger.NewTestLogger())

	first := detector.Detect(context.Background(), 7)
	second := detector.Detect(context.Background(), 7)

	require.Equal(t, first, second)
	require.True(t, second.IsStack)
	require.Len(t, second.Members, 2)
}

func TestDetectTransportFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)
	p.EXPECT().DetectStack(gomock.Any(), int64(7)).Return(nil, errPlatformDown).Times(1)

	detector := NewDetector(p, cache.NewMemoryStore(), time.Minute, logger.NewTestLogger())

	info := detector.Detect(context.Background(), 7)

	require.False(t, info.IsStack)
	require.NotEmpty(t, info.DetectionError)

	// The error record is cached like any other result.
	again := detector.Detect(context.Background(), 7)
	require.Equal(t, info, again)
}

func TestPrewarmMatchesLazyDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)
	p.EXPECT().DetectStack(gomock.Any(), int64(1)).Return(stackInfo(), nil).Times(1)
	p.EXPECT().DetectStack(gomock.Any(), int64(2)).Return(&models.VCInfo{MemberCount: 1}, nil).Times(1)

	detector := NewDetector(p, cache.NewMemoryStore(), time.Minute, logger.NewTestLogger())

	detector.Prewarm(context.Background(), []int64{1, 2}, nil)

	// The validation loop after pre-warming hits only the cache.
	info := detector.Detect(context.Background(), 1)
	require.True(t, info.IsStack)

	info = detector.Detect(context.Background(), 2)
	require.False(t, info.IsStack)
}

func TestPrewarmStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	detector := NewDetector(p, cache.NewMemoryStore(), time.Minute, logger.NewTestLogger())
	detector.Prewarm(ctx, []int64{1, 2, 3}, nil)
}

func TestPrewarmStopsOnSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)

	detected := 0
	p.EXPECT().DetectStack(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64) (*models.VCInfo, error) {
			detected++
			return &models.VCInfo{MemberCount: 1}, nil
		}).Times(1)

	detector := NewDetector(p, cache.NewMemoryStore(), time.Minute, logger.NewTestLogger())

	// The stop signal trips after the first detection; the rest of the set
	// is left cold.
	detector.Prewarm(context.Background(), []int64{1, 2, 3}, func() bool { return detected >= 1 })
}

func TestDetectExpiredEntryRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.NewMockDeviceProvider(ctrl)
	p.EXPECT().DetectStack(gomock.Any(), int64(7)).Return(stackInfo(), nil).Times(2)

	store := cache.NewMemoryStore()
	detector := NewDetector(p, store, time.Minute, logger.NewTestLogger())

	detector.Detect(context.Background(), 7)
	require.NoError(t, store.Delete(context.Background(), cache.VCKey(7)))
	detector.Detect(context.Background(), 7)
}
