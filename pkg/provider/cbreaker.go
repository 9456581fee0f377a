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

package provider

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/routeops/invsync/pkg/logger"
)

// CircuitBreakerState represents the current state of the circuit breaker
type CircuitBreakerState int

const (
	// StateClosed - requests are allowed
	StateClosed CircuitBreakerState = iota
	// StateOpen - requests are rejected
	StateOpen
	// StateHalfOpen - testing if the platform has recovered
	StateHalfOpen
)

// CircuitBreakerConfig holds configuration for the circuit breaker
type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
	ResetTimeout     time.Duration
}

// DefaultCircuitBreakerConfig returns a sensible default configuration
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		ResetTimeout:     60 * time.Second,
	}
}

// CircuitBreaker guards the platform API client against repeated failures.
type CircuitBreaker struct {
	config        CircuitBreakerConfig
	state         CircuitBreakerState
	failureCount  int
	successCount  int
	lastFailTime  time.Time
	lastResetTime time.Time
	mu            sync.Mutex
	logger        logger.Logger
	name          string
}

// NewCircuitBreaker creates a new circuit breaker with the given configuration
func NewCircuitBreaker(name string, config CircuitBreakerConfig, log logger.Logger) *CircuitBreaker {
	return &CircuitBreaker{
		config:        config,
		state:         StateClosed,
		lastResetTime: time.Now(),
		logger:        log,
		name:          name,
	}
}

// Execute runs fn if the breaker allows it and records the outcome.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allowRequest() {
		return fmt.Errorf("circuit breaker %s is open", cb.name)
	}

	err := fn()
	cb.recordResult(err)

	return err
}

func (cb *CircuitBreaker) allowRequest() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()

	switch cb.state {
	case StateClosed:
		if now.Sub(cb.lastResetTime) >= cb.config.ResetTimeout {
			cb.failureCount = 0
			cb.lastResetTime = now
		}

		return true

	case StateOpen:
		if now.Sub(cb.lastFailTime) >= cb.config.Timeout {
			cb.state = StateHalfOpen
			cb.successCount = 0
			cb.logger.Info().
				Str("circuit_breaker", cb.name).
				Msg("Circuit breaker transitioning to half-open")

			return true
		}

		return false

	case StateHalfOpen:
		return true

	default:
		return false
	}
}

func (cb *CircuitBreaker) recordResult(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.state = StateOpen
			cb.logger.Warn().
				Str("circuit_breaker", cb.name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened due to failures")
		}

	case StateHalfOpen:
		cb.state = StateOpen
		cb.logger.Warn().
			Str("circuit_breaker", cb.name).
			Msg("Circuit breaker reopened after failed attempt in half-open state")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.failureCount = 0
			cb.lastResetTime = time.Now()
			cb.logger.Info().
				Str("circuit_breaker", cb.name).
				Msg("Circuit breaker closed after successful recovery")
		}

	case StateClosed:
		cb.failureCount = 0
		cb.lastResetTime = time.Now()
	}
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// CircuitBreakerHTTPClient wraps an HTTP client with circuit breaker functionality
type CircuitBreakerHTTPClient struct {
	client         HTTPClient
	circuitBreaker *CircuitBreaker
}

// NewCircuitBreakerHTTPClient creates a new HTTP client wrapper with circuit breaker
func NewCircuitBreakerHTTPClient(client HTTPClient, name string, config CircuitBreakerConfig, log logger.Logger) *CircuitBreakerHTTPClient {
	return &CircuitBreakerHTTPClient{
		client:         client,
		circuitBreaker: NewCircuitBreaker(name, config, log),
	}
}

// Do executes an HTTP request through the circuit breaker
func (c *CircuitBreakerHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response

	var err error

	execErr := c.circuitBreaker.Execute(func() error {
		resp, err = c.client.Do(req)

		if err != nil {
			return err
		}

		// HTTP 5xx counts as a failure; 4xx is a caller problem.
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %d", resp.StatusCode)
		}

		return nil
	})

	if execErr != nil && err == nil {
		return nil, execErr
	}

	if err != nil {
		return nil, err
	}

	return resp, nil
}
