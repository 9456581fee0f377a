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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level      string `json:"level"`
	Debug      bool   `json:"debug"`
	Output     string `json:"output"`
	TimeFormat string `json:"time_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Output: "stdout",
	}
}

// LoggerImpl implements the Logger interface without using global state
type LoggerImpl struct {
	logger zerolog.Logger
}

// New creates a Logger from the given configuration.
func New(config *Config) (*LoggerImpl, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer = os.Stdout
	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	timeFormat := time.RFC3339
	if config.TimeFormat != "" {
		timeFormat = config.TimeFormat
	}

	zerolog.TimeFieldFormat = timeFormat

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &LoggerImpl{logger: zlog}, nil
}

// FromZerolog wraps an existing zerolog.Logger, typically one produced by
// WithComponent.
func FromZerolog(l zerolog.Logger) *LoggerImpl {
	return &LoggerImpl{logger: l}
}

func (l *LoggerImpl) Trace() *zerolog.Event { return l.logger.Trace() }
func (l *LoggerImpl) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *LoggerImpl) Info() *zerolog.Event  { return l.logger.Info() }
func (l *LoggerImpl) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *LoggerImpl) Error() *zerolog.Event { return l.logger.Error() }
func (l *LoggerImpl) Fatal() *zerolog.Event { return l.logger.Fatal() }
func (l *LoggerImpl) Panic() *zerolog.Event { return l.logger.Panic() }
func (l *LoggerImpl) With() zerolog.Context { return l.logger.With() }

func (l *LoggerImpl) WithComponent(component string) zerolog.Logger {
	return l.logger.With().Str("component", component).Logger()
}
