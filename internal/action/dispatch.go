// Package action applies the requested actions (print, exec, delete) to the
// paths produced by a search.
package action

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// reporter is the subset of finder.Output used by actions.
type reporter interface {
	Match(path string)
	Println(line string)
	Prompt(format string, args ...any)
	Warningf(format string, args ...any)
}

// Options selects the actions to run.
type Options struct {
	Print  string // Print template ("" = do not print, unless no other action is set)
	Exec   string // Command template ("" = none)
	Delete bool
	Force  bool // Delete without confirmation
	Jobs   int  // Maximum concurrent exec commands
}

// Dispatcher runs the configured actions over a list of matched paths.
type Dispatcher struct {
	format  *Format
	exec    string
	unlink  bool
	force   bool
	jobs    int
	out     reporter
	confirm *confirmer
	stdout  io.Writer
	stderr  io.Writer
	stat    func(string) (os.FileInfo, error)
}

// New validates opts and creates a Dispatcher. stdin is read for delete
// confirmations; stdout and stderr receive the output of exec commands.
func New(opts Options, out reporter, stdin io.Reader, stdout, stderr io.Writer) (*Dispatcher, error) {
	printFormat := opts.Print
	if printFormat == "" && opts.Exec == "" && !opts.Delete {
		printFormat = DefaultFormat
	}

	d := &Dispatcher{
		exec:   opts.Exec,
		unlink: opts.Delete,
		force:  opts.Force,
		jobs:   max(opts.Jobs, 1),
		out:    out,
		stdout: stdout,
		stderr: stderr,
		stat:   os.Stat,
	}

	if printFormat != "" {
		format, err := ParseFormat(printFormat)
		if err != nil {
			return nil, err
		}
		d.format = format
	}

	if d.unlink && !d.force {
		d.confirm = newConfirmer(stdin, out)
	}

	return d, nil
}

// Run applies every action to paths. Printing happens first, in order, then
// commands run with up to Jobs in parallel, then deletions run from the last
// path to the first so that children go before their parents. Failures are
// reported as warnings, and the combined error is returned.
func (d *Dispatcher) Run(ctx context.Context, paths []string) error {
	var result *multierror.Error

	if d.format != nil {
		for _, path := range paths {
			if err := d.print(path); err != nil {
				d.out.Warningf("%v", err)
				result = multierror.Append(result, err)
			}
		}
	}

	if d.exec != "" {
		if err := d.runAll(ctx, paths); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if d.unlink {
		for _, path := range slices.Backward(paths) {
			if err := ctx.Err(); err != nil {
				result = multierror.Append(result, err)
				break
			}
			if err := d.remove(path); err != nil {
				d.out.Warningf("%v", err)
				result = multierror.Append(result, err)
			}
		}
	}

	return result.ErrorOrNil()
}

func (d *Dispatcher) print(path string) error {
	if d.format.IsDefault() {
		d.out.Match(path)
		return nil
	}

	var info os.FileInfo
	if d.format.NeedsInfo() {
		var err error
		info, err = d.stat(path)
		if err != nil {
			return fmt.Errorf("failed to print %s: %w", path, err)
		}
	}
	d.out.Println(d.format.Render(path, info))
	return nil
}

func (d *Dispatcher) runAll(ctx context.Context, paths []string) error {
	var (
		mu     sync.Mutex
		result *multierror.Error
	)

	var g errgroup.Group
	g.SetLimit(d.jobs)
	for _, path := range paths {
		g.Go(func() error {
			if err := runCommand(ctx, d.exec, path, d.stdout, d.stderr); err != nil {
				d.out.Warningf("%v", err)
				mu.Lock()
				result = multierror.Append(result, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return result.ErrorOrNil()
}

func (d *Dispatcher) remove(path string) error {
	if d.confirm != nil && !d.confirm.confirm(path) {
		return nil
	}
	return remove(path)
}
