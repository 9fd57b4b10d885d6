package criteria

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Comparison selects how a spec compares against a measured value.
type Comparison int

const (
	Equal Comparison = iota
	GreaterThan
	LessThan
)

func (c Comparison) String() string {
	switch c {
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	default:
		return "="
	}
}

func parseComparison(op string) Comparison {
	switch op {
	case "+":
		return GreaterThan
	case "-":
		return LessThan
	default:
		return Equal
	}
}

// SizeSpec compares a file's exact byte length against a threshold.
type SizeSpec struct {
	Op    Comparison
	Bytes int64
}

var sizePattern = regexp.MustCompile(`^([-+=]?)(\d+)([kKmMgG]?)$`)

// ParseSizeSpec parses specs like "+1M", "-500K", "=4k" and "100".
// "+" means greater than, "-" less than, "=" or no prefix exactly equal.
// Units use binary (1024-based) multipliers.
func ParseSizeSpec(s string) (SizeSpec, error) {
	s = strings.TrimSpace(s)
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return SizeSpec{}, fmt.Errorf("%w: %q (expected [+-=]N[kKmMgG])", ErrInvalidSizeSpec, s)
	}

	num, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w: %q: %v", ErrInvalidSizeSpec, s, err)
	}

	var multiplier int64 = 1
	switch strings.ToLower(m[3]) {
	case "k":
		multiplier = 1 << 10
	case "m":
		multiplier = 1 << 20
	case "g":
		multiplier = 1 << 30
	}

	if num > math.MaxInt64/multiplier {
		return SizeSpec{}, fmt.Errorf("%w: %q: size too large", ErrInvalidSizeSpec, s)
	}

	return SizeSpec{Op: parseComparison(m[1]), Bytes: num * multiplier}, nil
}

// Matches reports whether size satisfies s.
func (s SizeSpec) Matches(size int64) bool {
	switch s.Op {
	case GreaterThan:
		return size > s.Bytes
	case LessThan:
		return size < s.Bytes
	default:
		return size == s.Bytes
	}
}

func (s SizeSpec) String() string {
	return fmt.Sprintf("size %s %d", s.Op, s.Bytes)
}
