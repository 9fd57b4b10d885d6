// Package finder filters a directory walk through the configured predicate
// chain and reports the matching paths.
package finder

import (
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/ffind/internal/criteria"
	"github.com/jparise/ffind/internal/match"
	"github.com/jparise/ffind/internal/walker"
	"github.com/sirupsen/logrus"
)

// Finder applies search criteria to the entries of a walk.
type Finder struct {
	cache *match.RegexCache
	log   logrus.FieldLogger
	stat  func(string) (fs.FileInfo, error)
	now   func() time.Time
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for debug tracing of skipped entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Finder) { f.log = log }
}

// WithRegexCache shares a regex cache between finders.
func WithRegexCache(cache *match.RegexCache) Option {
	return func(f *Finder) { f.cache = cache }
}

// New creates a new Finder.
func New(opts ...Option) *Finder {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	f := &Finder{
		log:  discard,
		stat: os.Stat,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.cache == nil {
		f.cache = match.NewRegexCache()
	}
	return f
}

// WalkerConfig builds the walker configuration described by c.
func WalkerConfig(root string, c *criteria.Criteria) walker.Config {
	maxDepth := walker.Unbounded
	if c.MaxDepth != criteria.NoDepthLimit {
		maxDepth = c.MaxDepth
	}
	return walker.Configure(root, maxDepth, c.FollowSymlinks)
}

// Find returns the paths yielded by cfg that satisfy c, in traversal order.
// Configuration errors, such as an invalid regex, are returned before any
// traversal happens. The sequence walks the tree again each time it is
// ranged over.
func (f *Finder) Find(cfg walker.Config, c *criteria.Criteria) (iter.Seq[string], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Regex != "" {
		if _, err := f.cache.GetOrCompile(c.Regex, c.IgnoreCase); err != nil {
			return nil, err
		}
	}

	cfg.Prune = func(e walker.Entry) bool {
		if c.PruneHidden && !c.All && isHidden(e) {
			return true
		}
		return f.excluded(cfg.Root, e, c)
	}
	onError := cfg.OnError
	cfg.OnError = func(path string, err error) {
		f.log.WithField("path", path).Debugf("skipping: %v", err)
		if onError != nil {
			onError(path, err)
		}
	}

	return func(yield func(string) bool) {
		for entry := range cfg.Walk() {
			if f.matches(cfg.Root, entry, c) && !yield(entry.Path) {
				return
			}
		}
	}, nil
}

// matches evaluates the predicate chain for a single entry, cheapest checks
// first, stopping at the first failure.
func (f *Finder) matches(root string, e walker.Entry, c *criteria.Criteria) bool {
	if !c.All && isHidden(e) {
		return false
	}
	if f.excluded(root, e, c) {
		return false
	}
	if c.Type != nil && !c.Type.Matches(e.Type) {
		return false
	}
	if !f.matchesPattern(e, c) {
		return false
	}
	if c.Size != nil && !f.matchSize(e, *c.Size).collapse(f.log, e) {
		return false
	}
	if (c.MTime != nil || c.ChangedAfter != nil || c.ChangedBefore != nil) && !f.matchTime(e, c).collapse(f.log, e) {
		return false
	}
	return true
}

// isHidden checks the entry's own base name. The root is never hidden, so
// that searching "." or a dot-directory works.
func isHidden(e walker.Entry) bool {
	return e.Depth > 0 && strings.HasPrefix(e.Name, ".")
}

// excluded reports whether any exclude pattern matches the entry's path
// relative to root or its base name.
func (f *Finder) excluded(root string, e walker.Entry, c *criteria.Criteria) bool {
	if len(c.Excludes) == 0 || e.Depth == 0 {
		return false
	}

	rel, err := filepath.Rel(root, e.Path)
	if err != nil {
		rel = e.Path
	}
	rel = filepath.ToSlash(rel)

	name := e.Name
	if c.IgnoreCase {
		rel = strings.ToLower(rel)
		name = strings.ToLower(name)
	}

	for _, pattern := range c.Excludes {
		if c.IgnoreCase {
			pattern = strings.ToLower(pattern)
		}
		// Patterns were validated with the criteria, so errors cannot occur.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (f *Finder) matchesPattern(e walker.Entry, c *criteria.Criteria) bool {
	switch {
	case c.Name != "":
		return match.MatchName(e.Name, c.Name, c.IgnoreCase)
	case c.Regex != "":
		ok, err := f.cache.Match(e.Name, c.Regex, c.IgnoreCase)
		if err != nil {
			f.log.WithField("path", e.Path).Debugf("regex: %v", err)
		}
		return ok
	}
	return true
}
