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

package jobs

import "sync/atomic"

// Token is the cooperative cancellation signal handed to a background job at
// enqueue time. The running job polls Cancelled at fixed device-count
// intervals.
type Token struct {
	cancelled atomic.Bool
}

// NewToken creates an uncancelled token.
func NewToken() *Token {
	return &Token{}
}

// Cancel requests that the job stop at its next check.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether cancellation was requested.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}
