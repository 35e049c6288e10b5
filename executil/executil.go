// Package executil wraps some functions in the exec package to ease testing
// and common subprocess use cases.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandContext is initialized to exec.CommandContext. It is intended to be
// overridden in tests.
var CommandContext = exec.CommandContext

func SetCommand(fn func(context.Context, string, ...string) *exec.Cmd) {
	CommandContext = fn
}

func ResetCommand() { CommandContext = exec.CommandContext }

// Output runs name with args and returns its stdout. A non-zero exit is
// returned as an error that includes the command's stderr.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := CommandContext(ctx, name, args...)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}
