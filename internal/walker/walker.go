// Package walker performs a deterministic, single-pass, pre-order traversal of
// a directory tree.
//
// Entries of each directory are visited in ascending byte order of their
// names. The root itself is not yielded unless Config.IncludeRoot is set, so
// with the default configuration a MaxDepth of 0 yields nothing. Entries that
// cannot be read are skipped and reported to Config.OnError; the walk itself
// never fails.
package walker

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Unbounded disables the depth limit.
const Unbounded = -1

// ErrSymlinkLoop is reported when a followed link leads back to an ancestor.
var ErrSymlinkLoop = errors.New("symbolic link loop")

// Entry is a single path yielded by the walk.
type Entry struct {
	Path  string      // Root joined with the path below it
	Name  string      // Base name
	Depth int         // 0 for the root, 1 for its children, and so on
	Type  fs.FileMode // Type bits of the entry itself; links are not resolved
}

// IsDir reports whether the entry itself is a directory.
func (e Entry) IsDir() bool {
	return e.Type&fs.ModeDir != 0
}

// Config describes a traversal.
type Config struct {
	Root           string
	MaxDepth       int // Unbounded, or the deepest level below Root to visit
	FollowSymlinks bool
	IncludeRoot    bool

	// Prune, if set, is asked before descending into a directory (or a
	// followed link to one). Returning true skips its contents; the
	// directory itself has already been yielded.
	Prune func(Entry) bool

	// OnError, if set, receives every error that caused a path to be skipped.
	OnError func(path string, err error)

	stat  func(string) (fs.FileInfo, error)
	lstat func(string) (fs.FileInfo, error)
}

// Configure returns a Config for root with the given depth bound and symlink
// policy. The root entry is excluded.
func Configure(root string, maxDepth int, followSymlinks bool) Config {
	return Config{
		Root:           root,
		MaxDepth:       maxDepth,
		FollowSymlinks: followSymlinks,
	}
}

// Walk returns the lazy sequence of entries. Each call starts a new traversal.
func (c Config) Walk() iter.Seq[Entry] {
	if c.stat == nil {
		c.stat = os.Stat
	}
	if c.lstat == nil {
		c.lstat = os.Lstat
	}

	return func(yield func(Entry) bool) {
		linfo, err := c.lstat(c.Root)
		if err != nil {
			c.report(c.Root, err)
			return
		}

		root := Entry{
			Path:  c.Root,
			Name:  filepath.Base(c.Root),
			Depth: 0,
			Type:  linfo.Mode().Type(),
		}
		if c.IncludeRoot && !yield(root) {
			return
		}

		// The root is always resolved, even when it is a link.
		info, err := c.stat(c.Root)
		if err != nil {
			c.report(c.Root, err)
			return
		}
		if !info.IsDir() {
			return
		}

		c.walkDir(root, []fs.FileInfo{info}, yield)
	}
}

func (c Config) report(path string, err error) {
	if c.OnError != nil {
		c.OnError(path, err)
	}
}

func (c Config) descend(depth int) bool {
	return c.MaxDepth == Unbounded || depth <= c.MaxDepth
}

// walkDir yields the contents of dir and returns false once yield has asked
// to stop. ancestors holds the resolved info of every directory on the
// current path, for loop detection.
func (c Config) walkDir(dir Entry, ancestors []fs.FileInfo, yield func(Entry) bool) bool {
	depth := dir.Depth + 1
	if !c.descend(depth) {
		return true
	}

	// os.ReadDir returns entries sorted by file name, and whatever it managed
	// to read before an error.
	dirents, err := os.ReadDir(dir.Path)
	if err != nil {
		c.report(dir.Path, err)
	}

	for _, d := range dirents {
		entry := Entry{
			Path:  filepath.Join(dir.Path, d.Name()),
			Name:  d.Name(),
			Depth: depth,
			Type:  d.Type(),
		}

		info, ok := c.resolveDir(entry, ancestors)

		if !yield(entry) {
			return false
		}

		if !ok || (c.Prune != nil && c.Prune(entry)) {
			continue
		}
		if !c.walkDir(entry, append(ancestors, info), yield) {
			return false
		}
	}

	return true
}

// resolveDir decides whether entry is a directory to descend into and
// returns its resolved info.
func (c Config) resolveDir(entry Entry, ancestors []fs.FileInfo) (fs.FileInfo, bool) {
	if !c.descend(entry.Depth + 1) {
		return nil, false
	}

	switch {
	case entry.IsDir():
		info, err := c.lstat(entry.Path)
		if err != nil {
			c.report(entry.Path, err)
			return nil, false
		}
		return info, true

	case entry.Type&fs.ModeSymlink != 0 && c.FollowSymlinks:
		info, err := c.stat(entry.Path)
		if err != nil {
			c.report(entry.Path, err)
			return nil, false
		}
		if !info.IsDir() {
			return nil, false
		}
		for _, ancestor := range ancestors {
			if os.SameFile(ancestor, info) {
				c.report(entry.Path, ErrSymlinkLoop)
				return nil, false
			}
		}
		return info, true
	}

	return nil, false
}
