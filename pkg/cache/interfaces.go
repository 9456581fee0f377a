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

//go:generate mockgen -destination=mock_cache.go -package=cache github.com/routeops/invsync/pkg/cache KVStore

// Package cache provides the shared key/value result cache.
package cache

import (
	"context"
	"time"
)

// KVStore is the key-value store backing the device payload and job record
// caches. Keys are device- or parameter-scoped and writes are idempotent, so
// implementations need no cross-key coordination.
type KVStore interface {
	// Get retrieves the value associated with the given key.
	// Returns the value, a boolean indicating if the key was found, and an
	// error if the operation fails.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under the given key with a TTL. A zero TTL means
	// the value persists until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// TTL reports the remaining lifetime of a key. The boolean is false when
	// the key does not exist.
	TTL(ctx context.Context, key string) (time.Duration, bool, error)

	// Delete removes the key and its associated value from the store.
	Delete(ctx context.Context, key string) error

	// Close shuts down the store, releasing any resources.
	Close() error
}
