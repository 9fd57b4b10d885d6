package criteria

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jparise/ffind/internal/timeparse"
)

// EqualTolerance is the window either side of an exact age match.
const EqualTolerance = time.Second

// AgeComparison selects how a TimeSpec compares against a file's age.
type AgeComparison int

const (
	AgeEqual AgeComparison = iota
	NewerThan
	OlderThan
)

// TimeSpec compares a file's age (now minus modification time) against a limit.
// "+7d" selects files modified within the last week, "-7d" files older than a
// week and "7d" files aged seven days give or take EqualTolerance.
type TimeSpec struct {
	Op  AgeComparison
	Age time.Duration
}

var timePattern = regexp.MustCompile(`^([-+=]?)(\d+[smhdwMy])$`)

// ParseTimeSpec parses specs like "+7d", "-30m", "=10s" and "24h".
func ParseTimeSpec(s string) (TimeSpec, error) {
	s = strings.TrimSpace(s)
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeSpec{}, fmt.Errorf("%w: %q (expected [+-=]N[smhdwMy])", ErrInvalidTimeSpec, s)
	}

	age, err := timeparse.ParseDuration(m[2])
	if err != nil {
		return TimeSpec{}, fmt.Errorf("%w: %v", ErrInvalidTimeSpec, err)
	}

	op := AgeEqual
	switch m[1] {
	case "+":
		op = NewerThan
	case "-":
		op = OlderThan
	}

	return TimeSpec{Op: op, Age: age}, nil
}

// Matches reports whether age satisfies t. Equal accepts ages within
// EqualTolerance of the limit, inclusive at both ends.
func (t TimeSpec) Matches(age time.Duration) bool {
	switch t.Op {
	case NewerThan:
		return age < t.Age
	case OlderThan:
		return age > t.Age
	default:
		lo := max(t.Age-EqualTolerance, 0)
		hi := t.Age + EqualTolerance
		if hi < t.Age {
			hi = math.MaxInt64
		}
		return age >= lo && age <= hi
	}
}

func (t TimeSpec) String() string {
	switch t.Op {
	case NewerThan:
		return fmt.Sprintf("newer than %s", t.Age)
	case OlderThan:
		return fmt.Sprintf("older than %s", t.Age)
	default:
		return fmt.Sprintf("age %s (±%s)", t.Age, EqualTolerance)
	}
}

// Age returns how long ago modTime was relative to now. A zero or future
// modification time yields an age of zero.
func Age(now, modTime time.Time) time.Duration {
	if modTime.IsZero() {
		return 0
	}
	return max(now.Sub(modTime), 0)
}
