package python

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"pylaunch/internal/model"
)

// Locator finds a runnable Python interpreter matching a minimum
// version. It probes candidate binary names on the search path in
// order and returns the first one whose reported version satisfies
// the requirement.
//
// Usage:
//
//	loc := python.NewLocator([]string{"python3", "python"}, min)
//	interp, err := loc.Locate(ctx)  // *model.PrerequisiteError when absent
type Locator struct {
	candidates []string
	minVersion model.InterpreterVersion

	// lookPath resolves a binary name on the search path.
	// Defaults to exec.LookPath; replaced in tests.
	lookPath func(name string) (string, error)

	// versionOutput runs the interpreter's version query and returns
	// its raw output. Defaults to running `<path> --version`; replaced
	// in tests.
	versionOutput func(ctx context.Context, path string) (string, error)
}

// NewLocator creates a Locator for the given candidate binary names and
// minimum version requirement.
func NewLocator(candidates []string, minVersion model.InterpreterVersion) *Locator {
	return &Locator{
		candidates:    candidates,
		minVersion:    minVersion,
		lookPath:      exec.LookPath,
		versionOutput: runVersionQuery,
	}
}

// Locate probes the candidate binaries in order and returns the first
// interpreter that exists on the search path, reports a parseable
// version, and satisfies the minimum version.
//
// Candidates that are missing, fail the version query, or report a
// version below the minimum are skipped — a too-old `python` must not
// shadow a suitable candidate later in the list. When no candidate
// qualifies, a *model.PrerequisiteError is returned.
func (l *Locator) Locate(ctx context.Context) (*model.Interpreter, error) {
	for _, name := range l.candidates {
		path, err := l.lookPath(name)
		if err != nil {
			// Not on the search path — try the next candidate.
			continue
		}

		out, err := l.versionOutput(ctx, path)
		if err != nil {
			// The binary exists but does not answer a version query.
			// Treat it as unusable rather than failing the whole probe.
			continue
		}

		version, err := parseVersionOutput(out)
		if err != nil {
			continue
		}

		if !version.AtLeast(l.minVersion) {
			continue
		}

		return &model.Interpreter{Path: path, Version: version}, nil
	}

	return nil, &model.PrerequisiteError{
		Candidates: l.candidates,
		MinVersion: l.minVersion,
	}
}

// runVersionQuery executes `<path> --version` and returns its combined
// output. Older Python releases print the version banner on stderr
// rather than stdout, so both streams are captured together.
func runVersionQuery(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", path, err)
	}
	return string(out), nil
}

// parseVersionOutput extracts the version number from an interpreter
// version banner such as "Python 3.11.2\n".
//
// The parser takes the first whitespace-separated token that parses as
// a version number, so vendor-decorated banners (e.g., "Python 3.11.2
// (main, ...)") work as well.
func parseVersionOutput(out string) (model.InterpreterVersion, error) {
	for _, field := range strings.Fields(out) {
		if v, err := model.ParseInterpreterVersion(field); err == nil {
			return v, nil
		}
	}
	return model.InterpreterVersion{}, fmt.Errorf("no version number in interpreter output %q", strings.TrimSpace(out))
}
