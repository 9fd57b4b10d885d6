package action

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// Placeholder is replaced by the quoted path in exec templates.
const Placeholder = "{}"

// Command builds the shell invocation for template and path.
func Command(ctx context.Context, template, path string) *exec.Cmd {
	line := strings.ReplaceAll(template, Placeholder, shellQuote(path))
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", line)
	}
	return exec.CommandContext(ctx, "sh", "-c", line)
}

// shellQuote makes path a single shell word.
func shellQuote(path string) string {
	if runtime.GOOS == "windows" {
		return `"` + path + `"`
	}
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// runCommand executes template for path with the given output streams.
func runCommand(ctx context.Context, template, path string, stdout, stderr io.Writer) error {
	cmd := Command(ctx, template, path)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, path, err)
	}
	return nil
}
