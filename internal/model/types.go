package model

import (
	"fmt"
	"strconv"
	"strings"
)

// InterpreterVersion is a parsed interpreter version number.
//
// Versions are compared component-wise (major, then minor, then patch).
// A minimum-version requirement like "3" parses to {3, 0, 0}, so any
// Python 3.x.y interpreter satisfies it.
type InterpreterVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// ParseInterpreterVersion converts a version string to an InterpreterVersion.
//
// Accepted forms are "major", "major.minor", and "major.minor.patch",
// e.g. "3", "3.8", "3.11.2". Omitted components default to zero.
// Returns an error for empty strings, non-numeric components, negative
// components, or more than three components.
func ParseInterpreterVersion(s string) (InterpreterVersion, error) {
	var v InterpreterVersion

	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid version %q: at most three components (major.minor.patch) allowed", s)
	}

	// Parse each present component into the corresponding field.
	// dst maps component index → destination field.
	dst := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return InterpreterVersion{}, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", s, part)
		}
		*dst[i] = n
	}

	return v, nil
}

// String returns the dotted string representation, e.g. "3.11.2".
// This method satisfies the fmt.Stringer interface for use in
// status messages and error text.
func (v InterpreterVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v satisfies the minimum version min.
// Comparison is lexicographic over (major, minor, patch).
func (v InterpreterVersion) AtLeast(min InterpreterVersion) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	if v.Minor != min.Minor {
		return v.Minor > min.Minor
	}
	return v.Patch >= min.Patch
}

// Interpreter describes a runnable interpreter located on the search path.
// It is produced by the interpreter locator and consumed by the package
// installer and the application launcher.
type Interpreter struct {
	// Path is the absolute path to the interpreter binary as resolved
	// from the search path (e.g., "/usr/bin/python3").
	Path string `json:"path"`

	// Version is the interpreter's reported version, parsed from the
	// output of `<path> --version`.
	Version InterpreterVersion `json:"version"`
}

// String returns a human-readable summary like
// "Python 3.11.2 (/usr/bin/python3)".
func (i *Interpreter) String() string {
	return fmt.Sprintf("Python %s (%s)", i.Version, i.Path)
}

// LaunchPlan holds the fully resolved inputs for one bootstrap run.
// It is built by the config package (file values merged with defaults)
// and handed to the bootstrap sequencer. The plan is read-only during
// a run — nothing mutates it after construction.
type LaunchPlan struct {
	// Name is the application display name shown in the banner.
	Name string `json:"name"`

	// Candidates lists interpreter binary names to probe on the search
	// path, in preference order (e.g., ["python3", "python"]).
	Candidates []string `json:"candidates"`

	// MinVersion is the minimum acceptable interpreter version.
	MinVersion InterpreterVersion `json:"minVersion"`

	// Manifest is the path to the dependency declaration file handed to
	// the package installer. The file's contents are never interpreted
	// by pylaunch itself.
	Manifest string `json:"manifest"`

	// EntryPoint is the path to the application launch file handed to
	// the interpreter. Opaque to pylaunch, like Manifest.
	EntryPoint string `json:"entryPoint"`

	// Args are extra arguments appended after the entry point when
	// launching the application.
	Args []string `json:"args,omitempty"`

	// Env holds environment variables applied to the launched
	// application, on top of the inherited environment.
	Env map[string]string `json:"env,omitempty"`

	// PipArgs are extra flags appended to the pip install invocation.
	PipArgs []string `json:"pipArgs,omitempty"`
}

// Validate checks that the plan has the minimum viable shape:
// at least one interpreter candidate, a manifest path, and an
// entry-point path. Path existence is not checked here — missing
// files surface as installer or launcher failures, matching the
// behavior of handing them straight to the external tools.
func (p *LaunchPlan) Validate() error {
	if len(p.Candidates) == 0 {
		return fmt.Errorf("launch plan: at least one interpreter candidate is required")
	}
	for _, c := range p.Candidates {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("launch plan: interpreter candidate must not be blank")
		}
	}
	if p.Manifest == "" {
		return fmt.Errorf("launch plan: manifest path must not be empty")
	}
	if p.EntryPoint == "" {
		return fmt.Errorf("launch plan: entry point path must not be empty")
	}
	return nil
}

// PrerequisiteError indicates that no runnable interpreter matching the
// minimum version was found on the search path. This is one of the two
// fatal bootstrap failure kinds; it always maps to ExitBootstrapFailed.
type PrerequisiteError struct {
	// Candidates lists the binary names that were probed.
	Candidates []string

	// MinVersion is the minimum version that was required.
	MinVersion InterpreterVersion
}

// Error satisfies the error interface.
func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("no Python interpreter >= %s found (tried: %s)",
		e.MinVersion, strings.Join(e.Candidates, ", "))
}

// InstallError indicates that the package installer exited with a
// non-zero status. The installer's exit code is carried for diagnostics
// but the process exit status is always the generic ExitBootstrapFailed.
// The launch script pylaunch replaces did not distinguish the two
// failure kinds, and pylaunch keeps that contract.
type InstallError struct {
	// Code is the package installer's exit status.
	Code int

	// Manifest is the dependency file that was being installed.
	Manifest string
}

// Error satisfies the error interface.
func (e *InstallError) Error() string {
	return fmt.Sprintf("dependency installation from %s failed (pip exit status %d)", e.Manifest, e.Code)
}

// ExitCode defines the CLI process exit statuses.
//
// Both fatal bootstrap conditions (interpreter missing, installation
// failed) share the single generic failure code. Once the application
// is launched, pylaunch's exit status becomes whatever the application
// returned, so arbitrary ExitCode values also occur at that point.
type ExitCode int

const (
	// ExitSuccess indicates the bootstrap sequence completed and the
	// launched application exited cleanly.
	ExitSuccess ExitCode = 0

	// ExitBootstrapFailed indicates the interpreter was missing or the
	// dependency installation failed.
	ExitBootstrapFailed ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
//
// A CLIError with an empty Message is "silent": the CLI exits with the
// code without printing anything further. The sequencer uses silent
// errors when it has already reported the failure on its own output
// stream, and when propagating a launched application's non-zero exit
// status. A silent error may still wrap an underlying typed error
// (PrerequisiteError, InstallError) for errors.As inspection.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", int(e.Code))
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Silent reports whether this error should terminate the process
// without any additional output from the CLI layer.
func (e *CLIError) Silent() bool {
	return e.Message == ""
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// NewSilentExit creates a CLIError that carries only an exit code.
func NewSilentExit(code ExitCode) *CLIError {
	return &CLIError{Code: code}
}

// WrapSilentExit creates a silent CLIError that wraps an underlying
// error. The wrapped error is not printed by the CLI layer but remains
// available to errors.As callers.
func WrapSilentExit(code ExitCode, err error) *CLIError {
	return &CLIError{Code: code, Err: err}
}
