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

// Package naming derives final inventory names from policy knobs.
package naming

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/routeops/invsync/pkg/models"
)

const defaultMemberPattern = "-{position}"

var (
	errEmptyPattern        = errors.New("member pattern must contain at least one placeholder")
	errUnknownTag          = errors.New("member pattern contains unknown placeholder")
	errPatternRendersEmpty = errors.New("member pattern renders empty")

	placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)
)

// Config holds the naming policy.
type Config struct {
	// UseSysName prefers the device's system name over the hostname.
	UseSysName bool `json:"use_sysname"`
	// StripDomain truncates the base name at the first dot unless the name is
	// an IP literal.
	StripDomain bool `json:"strip_domain"`
	// MemberPattern is the suffix pattern appended to stack member names.
	// Placeholders: {position}, {serial}.
	MemberPattern string `json:"member_pattern"`
}

// Resolver applies the naming policy. Construct it with NewResolver so the
// member pattern is validated once, up front, instead of at import time.
type Resolver struct {
	config Config
}

// NewResolver validates the pattern and returns a Resolver. An empty pattern
// falls back to the default position suffix.
func NewResolver(config Config) (*Resolver, error) {
	if config.MemberPattern == "" {
		config.MemberPattern = defaultMemberPattern
	}

	if err := validatePattern(config.MemberPattern); err != nil {
		return nil, err
	}

	return &Resolver{config: config}, nil
}

// ResolveName derives the inventory name for a device.
func (r *Resolver) ResolveName(dev *models.ExternalDevice) string {
	base := dev.Hostname
	if r.config.UseSysName && dev.SysName != "" {
		base = dev.SysName
	}

	if r.config.StripDomain && strings.Contains(base, ".") {
		// An address like 10.0.0.5 contains dots but has no domain to strip.
		if net.ParseIP(base) == nil {
			base = base[:strings.Index(base, ".")]
		}
	}

	return base
}

// MemberName derives the name of one stack member from the logical device
// name and the member's position and serial.
func (r *Resolver) MemberName(base string, member models.VCMember) string {
	return base + renderPattern(r.config.MemberPattern, member.Position, member.Serial)
}

// validatePattern enforces the pattern contract: only {position}/{serial}
// placeholders, at least one of them so member names stay unique, and a
// non-blank test rendering.
func validatePattern(pattern string) error {
	tags := placeholderRe.FindAllStringSubmatch(pattern, -1)
	if len(tags) == 0 {
		return fmt.Errorf("%w: %q", errEmptyPattern, pattern)
	}

	for _, tag := range tags {
		if tag[1] != "position" && tag[1] != "serial" {
			return fmt.Errorf("%w: %q", errUnknownTag, tag[0])
		}
	}

	if strings.TrimSpace(renderPattern(pattern, 1, "TEST")) == "" {
		return fmt.Errorf("%w: %q", errPatternRendersEmpty, pattern)
	}

	return nil
}

func renderPattern(pattern string, position int, serial string) string {
	out := strings.ReplaceAll(pattern, "{position}", strconv.Itoa(position))

	return strings.ReplaceAll(out, "{serial}", serial)
}
