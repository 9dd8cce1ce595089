// Package pip invokes the pip package installer through a located
// Python interpreter.
//
// pip runs as `<python> -m pip ...` rather than as a standalone pip
// binary, which guarantees packages land in the same interpreter that
// later runs the application. The manifest file is handed to pip
// opaquely — pylaunch never interprets its contents.
package pip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"pylaunch/internal/model"
)

// Installer runs dependency installation from a manifest file.
type Installer struct {
	// Out receives pip's stdout and stderr combined, interleaved with
	// the sequencer's own status lines on the same stream.
	Out io.Writer

	// ExtraArgs are appended to the pip install invocation
	// (e.g., ["--no-cache-dir"]).
	ExtraArgs []string
}

// NewInstaller creates an Installer writing pip output to out.
func NewInstaller(out io.Writer, extraArgs []string) *Installer {
	return &Installer{Out: out, ExtraArgs: extraArgs}
}

// Install runs `<interpreter> -m pip install -r <manifest>` and blocks
// until pip exits. The exit status is inspected exactly once, here:
// zero returns nil, anything else returns a *model.InstallError
// carrying pip's status code. There are no retries and no cleanup of a
// partially completed installation.
func (i *Installer) Install(ctx context.Context, interp *model.Interpreter, manifest string) error {
	args := installArgs(manifest, i.ExtraArgs)

	// #nosec G204 — args come from the resolved launch plan, not raw user input
	cmd := exec.CommandContext(ctx, interp.Path, args...)
	cmd.Stdout = i.Out
	cmd.Stderr = i.Out

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &model.InstallError{Code: exitErr.ExitCode(), Manifest: manifest}
	}

	return fmt.Errorf("failed to run pip via %s: %w", interp.Path, err)
}

// Version returns pip's version banner for the given interpreter,
// e.g. "pip 24.0 from ... (python 3.11)". Used by the doctor command
// to verify pip is importable at all.
func Version(ctx context.Context, interp *model.Interpreter) (string, error) {
	cmd := exec.CommandContext(ctx, interp.Path, "-m", "pip", "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("pip is not available for %s: %w", interp.Path, err)
	}
	return string(out), nil
}

// installArgs builds the argv (after the interpreter path) for the
// pip install invocation.
func installArgs(manifest string, extra []string) []string {
	args := []string{"-m", "pip", "install", "-r", manifest}
	return append(args, extra...)
}
