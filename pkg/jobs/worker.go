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

import "sync"

const defaultPoolSize = 2

// Pool is a fixed-size in-process worker pool. It exists to bound concurrent
// background jobs and to answer the "is anyone free" question that drives the
// synchronous fallback.
type Pool struct {
	slots chan struct{}
	wg    sync.WaitGroup
}

// NewPool creates a pool with the given number of workers; zero or negative
// selects the default.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = defaultPoolSize
	}

	return &Pool{slots: make(chan struct{}, size)}
}

// Available reports whether a worker can accept work right now. Advisory
// only: the answer can be stale by the time the caller enqueues.
func (p *Pool) Available() bool {
	return len(p.slots) < cap(p.slots)
}

// TryEnqueue starts fn on a worker if one is free. It never blocks; a false
// return means the caller should fall back to synchronous execution.
func (p *Pool) TryEnqueue(fn func()) bool {
	select {
	case p.slots <- struct{}{}:
	default:
		return false
	}

	p.wg.Add(1)

	go func() {
		defer func() {
			<-p.slots
			p.wg.Done()
		}()

		fn()
	}()

	return true
}

// Wait blocks until all running jobs finish.
func (p *Pool) Wait() {
	p.wg.Wait()
}
