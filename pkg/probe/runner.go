package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single probe command. Probes that need a
// tighter limit (curl --max-time) pass it as a command argument.
const DefaultTimeout = 30 * time.Second

// Outcome is the result of running one probe command.
type Outcome struct {
	Succeeded bool   // true when the command ran and exited zero
	Output    string // trimmed stdout, or a sentinel message on timeout/launch failure
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Outcome
}

// ExecRunner implements Runner using actual OS commands.
type ExecRunner struct {
	Timeout time.Duration // per-command limit, DefaultTimeout when zero
}

// Run executes a command and reports whether it exited zero along with
// its trimmed stdout. A command that exits non-zero still yields its
// stdout, so probes can surface whatever the tool printed. Timeouts and
// launch failures yield sentinel messages instead; stderr is never part
// of the outcome, only of the debug log.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) Outcome {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := trim(outBuf.String())

	switch {
	case err == nil:
		return Outcome{Succeeded: true, Output: stdout}
	case ctx.Err() == context.DeadlineExceeded:
		slog.Debug("probe timed out", "cmd", name, "timeout", timeout)
		return Outcome{Output: "命令执行超时"}
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("probe exited non-zero",
				"cmd", name, "code", exitErr.ExitCode(), "stderr", trim(errBuf.String()))
			return Outcome{Output: stdout}
		}
		slog.Debug("probe failed to launch", "cmd", name, "err", err)
		return Outcome{Output: fmt.Sprintf("执行错误: %v", err)}
	}
}

func trim(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(ctx context.Context, name string, args ...string) Outcome
}

// Run calls the mock function.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) Outcome {
	return m.RunFunc(ctx, name, args...)
}
