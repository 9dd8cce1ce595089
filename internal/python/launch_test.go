package python

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylaunch/internal/model"
)

// fakeInterpreter writes an executable shell script into a temp dir and
// returns it wrapped as a located interpreter. The script stands in for
// a real Python binary so launch behavior can be exercised without an
// interpreter installed.
func fakeInterpreter(t *testing.T, script string) *model.Interpreter {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-python")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755)
	require.NoError(t, err, "failed to write fake interpreter")

	return &model.Interpreter{Path: path, Version: model.InterpreterVersion{Major: 3}}
}

// TestLaunchCleanExit verifies that a clean application exit yields
// code 0 and no error, with the entry point passed as the first
// argument.
func TestLaunchCleanExit(t *testing.T) {
	interp := fakeInterpreter(t, `echo "running $1"`)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.Launch(context.Background(), interp, "app.py", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "running app.py")
}

// TestLaunchPropagatesExitCode verifies that a non-zero application
// exit is reported as (code, nil) — the launch step itself succeeded.
func TestLaunchPropagatesExitCode(t *testing.T) {
	interp := fakeInterpreter(t, `exit 5`)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.Launch(context.Background(), interp, "app.py", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, code)
}

// TestLaunchAppliesEnvAndArgs verifies that configured environment
// variables and extra arguments reach the launched process.
func TestLaunchAppliesEnvAndArgs(t *testing.T) {
	interp := fakeInterpreter(t, `echo "entry=$1 arg=$2 port=$APP_PORT"`)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.Launch(context.Background(), interp, "server.py",
		[]string{"--debug"}, map[string]string{"APP_PORT": "5000"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "entry=server.py arg=--debug port=5000")
}

// TestLaunchMissingInterpreter verifies that an unstartable interpreter
// binary is a launch error, not an application exit status.
func TestLaunchMissingInterpreter(t *testing.T) {
	interp := &model.Interpreter{
		Path:    filepath.Join(t.TempDir(), "gone"),
		Version: model.InterpreterVersion{Major: 3},
	}

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	_, err := r.Launch(context.Background(), interp, "app.py", nil, nil)
	assert.Error(t, err)
}
