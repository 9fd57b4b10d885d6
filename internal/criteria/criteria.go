// Package criteria defines the immutable search configuration consumed by the
// matching engine, along with the size and time expression grammars.
package criteria

import (
	"errors"
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// NoDepthLimit disables the traversal depth bound.
const NoDepthLimit = -1

// MaxDepthLimit is the largest accepted explicit depth.
const MaxDepthLimit = 255

var (
	ErrInvalidSizeSpec = errors.New("invalid size specification")
	ErrInvalidTimeSpec = errors.New("invalid time specification")
)

// Criteria contains all search parameters. It is built once by the command
// layer and only read by the matching engine.
type Criteria struct {
	Name           string // Wildcard or literal base name pattern ("" = no filter)
	Regex          string // Regular expression over the base name ("" = no filter)
	IgnoreCase     bool
	Size           *SizeSpec
	MTime          *TimeSpec
	Type           *FileType
	All            bool // Include entries whose base name starts with "."
	MaxDepth       int  // NoDepthLimit or 0..MaxDepthLimit
	FollowSymlinks bool
	PruneHidden    bool       // Do not descend into hidden directories
	Excludes       []string   // doublestar patterns
	ChangedAfter   *time.Time // Modified after this time (nil = no filter)
	ChangedBefore  *time.Time // Modified before this time (nil = no filter)
}

// New returns Criteria with no filters and an unbounded depth.
func New() *Criteria {
	return &Criteria{MaxDepth: NoDepthLimit}
}

// Validate checks the invariants that must hold before any traversal begins.
func (c *Criteria) Validate() error {
	if c.Name != "" && c.Regex != "" {
		return fmt.Errorf("name and regex patterns are mutually exclusive")
	}
	if c.IgnoreCase && !c.HasMatcher() {
		return fmt.Errorf("case-insensitive matching requires a name or regex pattern")
	}
	if c.MaxDepth != NoDepthLimit && (c.MaxDepth < 0 || c.MaxDepth > MaxDepthLimit) {
		return fmt.Errorf("depth must be between 0 and %d, got %d", MaxDepthLimit, c.MaxDepth)
	}
	for _, pattern := range c.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	if c.ChangedAfter != nil && c.ChangedBefore != nil && !c.ChangedAfter.Before(*c.ChangedBefore) {
		return fmt.Errorf("changed-after must be earlier than changed-before")
	}
	return nil
}

// HasMatcher reports whether a name or regex pattern is configured.
func (c *Criteria) HasMatcher() bool {
	return c.Name != "" || c.Regex != ""
}
