package testenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// FakeCommand returns a replacement for exec.CommandContext that re-runs the
// test binary as a helper process instead of the requested command. The
// helper, which must be a test calling HelperProcess, writes stdout and exits
// with code.
func FakeCommand(helperTest, stdout string, code int) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, command string, args ...string) *exec.Cmd {
		arg := []string{"-test.run=" + helperTest, "--", command}
		arg = append(arg, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], arg...)

		cmd.Env = []string{
			"_TEST_WANT_HELPER_PROCESS=1",
			"_TEST_STDOUT=" + stdout,
			fmt.Sprintf("_TEST_EXITCODE=%d", code),
		}
		return cmd
	}
}

// HelperProcess is the other half of FakeCommand. Call it from a test named
// by FakeCommand's helperTest; it does nothing during normal test runs.
func HelperProcess() {
	if os.Getenv("_TEST_WANT_HELPER_PROCESS") != "1" {
		return
	}

	code := 0
	if codes := os.Getenv("_TEST_EXITCODE"); codes != "" {
		n, err := strconv.ParseInt(codes, 10, 8)
		if err != nil {
			panic(err)
		}
		code = int(n)
	}

	fmt.Fprint(os.Stdout, os.Getenv("_TEST_STDOUT"))
	os.Exit(code)
}
