// Copyright (c) 2025, Seagate Technology LLC and/or its Affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Error types for duration parsing failures.
var (
	ErrEmptyDuration     = errors.New("duration string is empty")
	ErrMissingPrefix     = errors.New("duration must start with 'P'")
	ErrNoComponents      = errors.New("duration has no components")
	ErrInvalidComponent  = errors.New("duration component is not numeric")
	ErrUnknownDesignator = errors.New("unknown duration designator")
)

const (
	hoursPerDay  = 24
	daysPerWeek  = 7
	daysPerMonth = 30  // calendar approximation used for log windows
	daysPerYear  = 365 // calendar approximation used for log windows
)

// Parse converts an ISO-8601 duration such as "P5D", "PT30S" or "P1DT2H"
// into a time.Duration. Years and months use calendar approximations
// (365 and 30 days); this is a log-capture window, not date arithmetic.
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, ErrEmptyDuration
	}

	upper := strings.ToUpper(strings.TrimSpace(s))
	rest, ok := strings.CutPrefix(upper, "P")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingPrefix, s)
	}
	if rest == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoComponents, s)
	}

	datePart, timePart, hasTime := strings.Cut(rest, "T")
	if hasTime && timePart == "" {
		return 0, fmt.Errorf("%w: %q has 'T' but no time components", ErrNoComponents, s)
	}

	var total time.Duration

	d, err := parseComponents(datePart, map[byte]time.Duration{
		'Y': daysPerYear * hoursPerDay * time.Hour,
		'M': daysPerMonth * hoursPerDay * time.Hour,
		'W': daysPerWeek * hoursPerDay * time.Hour,
		'D': hoursPerDay * time.Hour,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	total += d

	if hasTime {
		d, err = parseComponents(timePart, map[byte]time.Duration{
			'H': time.Hour,
			'M': time.Minute,
			'S': time.Second,
		})
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += d
	}

	return total, nil
}

// MustParse parses an ISO-8601 duration and panics on failure. Only use
// this for hardcoded strings or in tests; for user input always use Parse.
func MustParse(s string) time.Duration {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return d
}

// parseComponents walks one segment (date or time) of the duration,
// accumulating number+designator pairs using the given unit table.
func parseComponents(segment string, units map[byte]time.Duration) (time.Duration, error) {
	var total time.Duration
	start := 0

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c >= '0' && c <= '9' || c == '.' {
			continue
		}

		unit, ok := units[c]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownDesignator, string(c))
		}

		num := segment[start:i]
		if num == "" {
			return 0, fmt.Errorf("%w: missing value before %q", ErrInvalidComponent, string(c))
		}
		val, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidComponent, num)
		}

		total += time.Duration(val * float64(unit))
		start = i + 1
	}

	if start != len(segment) {
		return 0, fmt.Errorf("%w: trailing %q", ErrInvalidComponent, segment[start:])
	}

	return total, nil
}
