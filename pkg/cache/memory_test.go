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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v"), value)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = store.TTL(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "forever", []byte("v"), 0))
	require.NoError(t, store.Set(ctx, "timed", []byte("v"), time.Minute))

	ttl, found, err := store.TTL(ctx, "forever")
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, ttl)

	ttl, found, err = store.TTL(ctx, "timed")
	require.NoError(t, err)
	require.True(t, found)
	require.Greater(t, ttl, 50*time.Second)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, store.Delete(ctx, "k"))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}
