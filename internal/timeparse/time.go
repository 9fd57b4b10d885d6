package timeparse

import (
	"fmt"
	"time"
)

// ParseTime parses an absolute date for the change-window filters.
// Supported formats:
//   - YYYY-MM-DD (midnight in loc)
//   - YYYY-MM-DD HH:MM:SS (in loc)
//   - RFC3339: 2018-10-27T10:00:00Z (carries its own zone)
//
// A nil loc means time.Local, which is what files on disk are usually
// reasoned about in.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range []string{time.DateOnly, time.DateTime} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}
