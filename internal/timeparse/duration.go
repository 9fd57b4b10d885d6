// Package timeparse provides the duration and date parsing used by age filters.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Day is the length of the "d" unit.
	Day = 24 * time.Hour
	// Month is the length of the "M" unit. Calendar months are not modelled.
	Month = 30 * Day
	// Year is the length of the "y" unit.
	Year = 365 * Day
)

// Units are case-sensitive: "m" is minutes and "M" is months.
var units = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': Day,
	'w': 7 * Day,
	'M': Month,
	'y': Year,
}

// ParseDuration parses an unsigned whole number followed by a single unit
// letter: s (seconds), m (minutes), h (hours), d (days), w (weeks),
// M (months) or y (years). Examples: "10s", "30m", "7d", "2w", "1y".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	// Find where the unit starts (first non-digit)
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') {
		i++
	}

	if i == 0 {
		return 0, fmt.Errorf("invalid duration %q: missing number", s)
	}
	if i == len(s) {
		return 0, fmt.Errorf("invalid duration %q: missing unit", s)
	}
	if len(s)-i != 1 {
		return 0, fmt.Errorf("invalid duration %q: unit must be a single letter", s)
	}

	num, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	unit, ok := units[s[i]]
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: unknown unit %q", s, s[i:])
	}

	// num * unit must fit in time.Duration (int64)
	if num > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("invalid duration %q: value too large", s)
	}

	return time.Duration(num) * unit, nil
}
