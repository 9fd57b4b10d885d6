package action

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// confirmer asks whether a path may be deleted.
type confirmer struct {
	in  *bufio.Reader
	out reporter
}

func newConfirmer(in io.Reader, out reporter) *confirmer {
	return &confirmer{in: bufio.NewReader(in), out: out}
}

// confirm prompts for path and reports whether the answer was "y". End of
// input counts as "no".
func (c *confirmer) confirm(path string) bool {
	c.out.Prompt("Delete %s? (y/N): ", path)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// remove deletes path, recursively for directories. A path that is already
// gone, for example because its parent was removed, is not an error.
func remove(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
