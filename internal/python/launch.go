package python

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"pylaunch/internal/model"
)

// Runner launches the application entry point through a located
// interpreter. The child process inherits the configured stdio streams,
// so the application's own output appears exactly where pylaunch's
// status lines did.
type Runner struct {
	// Stdin, Stdout, and Stderr are connected to the launched process.
	// NewRunner wires them to the calling process's streams; tests
	// substitute buffers.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner connected to the current process's
// standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Launch runs `<interpreter> <entry> [args...]` with env applied on top
// of the inherited environment and blocks until the application exits.
//
// The returned int is the application's exit status. The error result is
// non-nil only when the process could not be started at all (for
// example, the interpreter binary disappeared between locate and
// launch) — an application that starts and then exits non-zero yields
// (code, nil), because from the bootstrap's point of view the launch
// step itself succeeded.
func (r *Runner) Launch(ctx context.Context, interp *model.Interpreter, entry string, args []string, env map[string]string) (int, error) {
	argv := append([]string{entry}, args...)

	// #nosec G204 — argv comes from the resolved launch plan, not raw user input
	cmd := exec.CommandContext(ctx, interp.Path, argv...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = mergedEnviron(env)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// A non-zero application exit is a normal outcome for the launch
	// step; extract the status so the CLI can propagate it.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("failed to launch %s via %s: %w", entry, interp.Path, err)
}

// mergedEnviron builds the child environment: the parent environment
// with the configured overrides appended. Appending is sufficient
// because the last occurrence of a variable wins for child processes.
// Overrides are sorted for deterministic ordering.
func mergedEnviron(env map[string]string) []string {
	environ := os.Environ()
	if len(env) == 0 {
		return environ
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		environ = append(environ, k+"="+env[k])
	}
	return environ
}
