package finder

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color and hyperlink support.
type Output struct {
	mu         sync.Mutex
	stdout     io.Writer
	stderr     io.Writer
	hyperlinks bool

	cyan   func(string) string
	white  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color and hyperlink support.
func NewOutput(stdout, stderr io.Writer, colorize, hyperlinks bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:     stdout,
		stderr:     stderr,
		hyperlinks: hyperlinks,
		cyan:       color("cyan"),
		white:      color("white+b"),
		yellow:     color("yellow"),
	}
}

func makeHyperlink(url, text string) string {
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// fileURL returns a file:// URL for path, or "" if it cannot be made absolute.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// Match writes a matched path, with the directory part and base name colored
// separately.
func (o *Output) Match(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	dir, name := filepath.Split(path)
	formatted := o.cyan(dir) + o.white(name)
	if dir == "" {
		formatted = o.white(name)
	}

	if o.hyperlinks {
		if u := fileURL(path); u != "" {
			formatted = makeHyperlink(u, formatted)
		}
	}

	fmt.Fprintf(o.stdout, "%s\n", formatted)
}

// Println writes a preformatted line to stdout.
func (o *Output) Println(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stdout, line)
}

// Prompt writes a question to stderr without a trailing newline.
func (o *Output) Prompt(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format, args...)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
