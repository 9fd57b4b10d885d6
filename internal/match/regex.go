package match

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/puzpuzpuz/xsync/v3"
)

var ErrInvalidRegex = errors.New("invalid regex pattern")

type regexKey struct {
	pattern    string
	ignoreCase bool
}

type compiled struct {
	re  *regexp.Regexp
	err error
}

// RegexCache compiles regular expressions on first use and keeps them for its
// own lifetime, keyed by pattern text and case sensitivity. Compile failures
// are cached too so a bad pattern is only compiled once. It is safe for
// concurrent use.
type RegexCache struct {
	entries *xsync.MapOf[regexKey, compiled]
}

// NewRegexCache creates an empty RegexCache.
func NewRegexCache() *RegexCache {
	return &RegexCache{
		entries: xsync.NewMapOf[regexKey, compiled](),
	}
}

// GetOrCompile returns the compiled form of pattern. The expression is anchored
// so that it must match the whole file name.
func (c *RegexCache) GetOrCompile(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	key := regexKey{pattern: pattern, ignoreCase: ignoreCase}
	entry, _ := c.entries.LoadOrCompute(key, func() compiled {
		return compile(pattern, ignoreCase)
	})
	return entry.re, entry.err
}

// compile validates pattern on its own before wrapping it, so unbalanced
// groups cannot close the anchoring group early.
func compile(pattern string, ignoreCase bool) compiled {
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return compiled{err: fmt.Errorf("%w %q: %v", ErrInvalidRegex, pattern, err)}
	}
	re, err := regexp.Compile(anchor(pattern, ignoreCase))
	if err != nil {
		return compiled{err: fmt.Errorf("%w %q: %v", ErrInvalidRegex, pattern, err)}
	}
	return compiled{re: re}
}

// Match reports whether name matches pattern in full. An invalid pattern
// matches nothing and the compile error is returned.
func (c *RegexCache) Match(name, pattern string, ignoreCase bool) (bool, error) {
	re, err := c.GetOrCompile(pattern, ignoreCase)
	if err != nil {
		return false, err
	}
	return re.MatchString(name), nil
}

// Len returns the number of cached patterns, including failed ones.
func (c *RegexCache) Len() int {
	return c.entries.Size()
}

func anchor(pattern string, ignoreCase bool) string {
	flags := ""
	if ignoreCase {
		flags = "(?i)"
	}
	return flags + `^(?:` + pattern + `)$`
}
