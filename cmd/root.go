package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/hashicorp/go-multierror"
	"github.com/jparise/ffind/internal/action"
	"github.com/jparise/ffind/internal/criteria"
	"github.com/jparise/ffind/internal/finder"
	"github.com/jparise/ffind/internal/timeparse"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "FFIND_DEBUG"

// searchFlags holds the values of the search-related flags.
type searchFlags struct {
	name          string
	regex         string
	insensitive   bool
	size          string
	mtime         string
	fileType      criteria.FileType
	all           bool
	depth         int
	depthSet      bool
	follow        bool
	pruneHidden   bool
	excludes      []string
	changedAfter  string
	changedBefore string
}

var (
	version = "dev"

	// Flags.
	search    searchFlags
	color     = colorAuto
	hyperlink bool
	debug     bool
	printFmt  string
	execCmd   string
	remove    bool
	force     bool
	jobs      int
)

var rootCmd = &cobra.Command{
	Use:   "ffind [<path>]",
	Short: "Find files in a directory tree",
	Long: `ffind is a find(1)-like utility for local directory trees.

<path> is the directory to search and defaults to ".". The directory itself is
never reported, only the entries below it. Entries are visited in byte order of
their names, one directory level at a time, so output is reproducible.

Name patterns (--name) match the base name:
  *              Match zero or more characters (e.g., "*.go")
  ?              Match exactly one character (e.g., "file?.txt")
  Without "*" or "?" the pattern must equal the name exactly.

Regular expressions (--regex) must match the whole base name.

Size specs (--size): [+|-|=]N[k|M|G], e.g. "+1M" (greater than 1 MiB),
"-500k" (less than 500 KiB), "100" (exactly 100 bytes).

Time specs (--mtime): [+|-|=]N<unit> with units s, m, h, d, w, M (30 days) and
y (365 days): "+7d" (modified within 7 days), "-30m" (more than 30 minutes
ago), "10s" (10 seconds ago, give or take a second).

Print formats (--print): %p path, %f or %n file name, %d parent directory,
%s size in bytes, %h human size, %t modification time, %T time, %D date,
%% a literal percent sign.

Examples:
  ffind -n "*.go"
  ffind -r "test_.*\.py" -i src
  ffind -t d -d 2
  ffind -s +10M -m -30d --print "%h %p" ~/Downloads
  ffind -n "*.tmp" --delete
  ffind -n "*.log" -E "**/node_modules/**" -x "gzip {}" -j 4
  ffind --changed-after 2024-01-01 -n "*.md"`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if force && !remove {
			return fmt.Errorf("--force requires --delete")
		}
		search.depthSet = cmd.Flags().Changed("depth")
		return nil
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&search.name, "name", "n", "",
		"match base names against a wildcard pattern (e.g., \"*.txt\")")
	flags.StringVarP(&search.regex, "regex", "r", "",
		"match base names against a regular expression")
	flags.BoolVarP(&search.insensitive, "insensitive", "i", false,
		"case-insensitive name or regex matching")
	flags.StringVarP(&search.size, "size", "s", "",
		"filter by file size (e.g., +1M, -500K, 100)")
	flags.StringVarP(&search.mtime, "mtime", "m", "",
		"filter by modification age (e.g., +7d, -30m, 24h)")
	flags.VarP(&search.fileType, "type", "t",
		"filter by type: f (file), d (directory), l (symlink), b, c, p, s")
	flags.BoolVarP(&search.all, "all", "a", false,
		"include hidden files and directories")
	flags.IntVarP(&search.depth, "depth", "d", 0,
		"maximum search depth (1 = only entries of <path>)")
	flags.BoolVarP(&search.follow, "follow", "L", false,
		"follow symbolic links")
	flags.BoolVar(&search.pruneHidden, "prune-hidden", false,
		"do not descend into hidden directories")
	flags.StringSliceVarP(&search.excludes, "exclude", "E", []string{},
		"exclude patterns (can be specified multiple times)")
	flags.StringVar(&search.changedAfter, "changed-after", "",
		"only files modified after this date (YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)")
	flags.StringVar(&search.changedBefore, "changed-before", "",
		"only files modified before this date")

	flags.StringVarP(&printFmt, "print", "p", "",
		"print matches with a format string (default \"%p\" when no other action is given)")
	flags.StringVarP(&execCmd, "exec", "x", "",
		"execute a shell command for each match ({} is replaced by the path)")
	flags.BoolVar(&remove, "delete", false,
		"delete matches (asks for confirmation unless --force is used)")
	flags.BoolVar(&force, "force", false,
		"delete without confirmation")
	flags.IntVarP(&jobs, "jobs", "j", 1,
		"maximum concurrent --exec commands")

	flags.Var(&color, "color",
		"colorize output: auto, always, never")
	flags.BoolVar(&hyperlink, "hyperlink", false,
		"emit file:// hyperlinks for printed paths")
	flags.BoolVar(&debug, "debug", false,
		"log debug information to stderr (or set "+debugEnv+")")

	rootCmd.MarkFlagsMutuallyExclusive("name", "regex")
}

func Execute() error {
	return rootCmd.Execute()
}

// buildCriteria parses and validates the search flags.
func buildCriteria(f searchFlags) (*criteria.Criteria, error) {
	c := criteria.New()
	c.Name = f.name
	c.Regex = f.regex
	c.IgnoreCase = f.insensitive
	c.All = f.all
	c.FollowSymlinks = f.follow
	c.PruneHidden = f.pruneHidden
	c.Excludes = f.excludes

	if f.depthSet {
		c.MaxDepth = f.depth
	}

	if f.size != "" {
		spec, err := criteria.ParseSizeSpec(f.size)
		if err != nil {
			return nil, fmt.Errorf("invalid --size: %w", err)
		}
		c.Size = &spec
	}

	if f.mtime != "" {
		spec, err := criteria.ParseTimeSpec(f.mtime)
		if err != nil {
			return nil, fmt.Errorf("invalid --mtime: %w", err)
		}
		c.MTime = &spec
	}

	if f.fileType != "" {
		ft := f.fileType
		c.Type = &ft
	}

	if f.changedAfter != "" {
		t, err := timeparse.ParseTime(f.changedAfter, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid --changed-after: %w", err)
		}
		c.ChangedAfter = &t
	}

	if f.changedBefore != "" {
		t, err := timeparse.ParseTime(f.changedBefore, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid --changed-before: %w", err)
		}
		c.ChangedBefore = &t
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseRoot returns the search root, which must be an existing directory.
func parseRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %s is not a directory", root)
	}
	return root, nil
}

// newLogger returns the debug logger. It only emits warnings and above unless
// debugging is enabled.
func newLogger(w io.Writer, enabled bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if enabled {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger(cmd.ErrOrStderr(), debug || os.Getenv(debugEnv) != "")

	root, err := parseRoot(args)
	if err != nil {
		return err
	}

	c, err := buildCriteria(search)
	if err != nil {
		return err
	}

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	output := finder.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize, hyperlink)

	dispatcher, err := action.New(action.Options{
		Print:  printFmt,
		Exec:   execCmd,
		Delete: remove,
		Force:  force,
		Jobs:   jobs,
	}, output, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"root":    root,
		"name":    c.Name,
		"regex":   c.Regex,
		"size":    c.Size,
		"mtime":   c.MTime,
		"type":    c.Type,
		"depth":   c.MaxDepth,
		"all":     c.All,
		"follow":  c.FollowSymlinks,
		"exclude": c.Excludes,
	}).Debug("parsed criteria")

	f := finder.New(finder.WithLogger(log))
	matches, err := f.Find(finder.WalkerConfig(root, c), c)
	if err != nil {
		return err
	}

	log.Debug("walker created, starting search")
	paths := slices.Collect(matches)

	if len(paths) == 0 {
		output.Infof("No files found matching the given criteria")
		log.Debug("consider using --all to include hidden files")
		log.Debugf("consider checking the search path: %s", root)
		log.Debug("consider using a simpler pattern")
	} else {
		output.Infof("Found %d matching file(s)", len(paths))
		err = actionError(dispatcher.Run(ctx, paths))
	}

	log.Debugf("execution completed in %v", time.Since(start))
	return err
}

// actionError summarizes per-path failures, which have already been reported
// individually as warnings.
func actionError(err error) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return fmt.Errorf("%d action(s) failed", merr.Len())
	}
	return err
}
