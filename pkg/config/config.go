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

// Package config loads and validates JSON service configuration.
package config

import (
	"context"
	"os"

	"github.com/routeops/invsync/pkg/logger"
	"github.com/rs/zerolog"
)

// ConfigLoader abstracts the source a configuration is read from.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Validator is implemented by configs that can check themselves. Validation
// runs at load time so bad configuration is rejected before any import runs.
type Validator interface {
	Validate() error
}

// Config holds the configuration loading dependencies.
type Config struct {
	loader ConfigLoader
	logger logger.Logger
}

// NewConfig initializes a new Config instance with a default file loader.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		// Minimal logger for config loading before the real one exists.
		zlog := zerolog.New(os.Stderr).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Logger()
		log = logger.FromZerolog(zlog)
	}

	return &Config{
		loader: &FileConfigLoader{},
		logger: log,
	}
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate loads a configuration from path and validates it.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	if err := c.loader.Load(ctx, path, cfg); err != nil {
		return err
	}

	return ValidateConfig(cfg)
}
