package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result carries the exit code and raw error of a finished command.
type Result struct {
	Code int
	Err  error
}

// ProcessError reports a child process that exited non-zero or failed to
// launch. The caller is expected to mirror Code as its own exit status.
type ProcessError struct {
	Name string
	Code int
	Err  error
}

func (e *ProcessError) Error() string {
	if e.Err != nil && e.Code == 1 {
		if _, ok := e.Err.(*exec.ExitError); !ok {
			return fmt.Sprintf("%s: %v", e.Name, e.Err)
		}
	}
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

func (e *ProcessError) Unwrap() error { return e.Err }

func Run(name string, args ...string) Result {
	return RunCtx(context.Background(), name, args...)
}

// RunCtx executes the command with inherited stdio and returns its exit code.
// A command that cannot be started reports code 1; a context deadline reports
// the conventional 124.
func RunCtx(ctx context.Context, name string, args ...string) Result {
	return RunCtxWithEnv(ctx, nil, name, args...)
}

// RunCtxWithEnv mirrors RunCtx but overlays extra variables on the inherited
// environment before launching the child.
func RunCtxWithEnv(ctx context.Context, extraEnv map[string]string, name string, args ...string) Result {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		env := os.Environ()
		for k, v := range extraEnv {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	err := cmd.Run()
	return Result{Code: exitCode(ctx, err), Err: err}
}

// Capture runs a command and returns stdout as string plus the result.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), Result{Code: exitCode(ctx, err), Err: err}
}

func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	// A deadline kill surfaces as an ExitError with code -1; report the
	// conventional timeout status instead.
	if ctx.Err() == context.DeadlineExceeded {
		return 124
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return 1
}

func debugEcho(name string, args []string) {
	if os.Getenv("SPECRUN_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}
