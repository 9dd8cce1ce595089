package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylaunch/internal/model"
)

// writeConfig is a test helper that writes a config file with the given
// name into dir and returns its full path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err, "failed to write test config %s", name)
	return path
}

// TestLoadOrDefaultWithoutFile verifies that an empty directory yields
// the built-in defaults: python3/python candidates, Python 3 minimum,
// requirements.txt, app.py.
func TestLoadOrDefaultWithoutFile(t *testing.T) {
	plan, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "application", plan.Name)
	assert.Equal(t, []string{"python3", "python"}, plan.Candidates)
	assert.Equal(t, model.InterpreterVersion{Major: 3}, plan.MinVersion)
	assert.Equal(t, "requirements.txt", plan.Manifest)
	assert.Equal(t, "app.py", plan.EntryPoint)
	assert.Empty(t, plan.Args)
	assert.Empty(t, plan.Env)
	assert.Empty(t, plan.PipArgs)
}

// TestLoadJSONCWithComments verifies that JSONC configs parse with
// comments and trailing commas, like devcontainer.json files do.
func TestLoadJSONCWithComments(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "pylaunch.jsonc", `{
	// Display name for the banner.
	"name": "chenex-dashboard",
	"minVersion": "3.8",
	"requirements": "deps/requirements.txt",
	"entryPoint": "server.py",
	"args": ["--debug"],
	"env": {
		"PORT": "5000",
		"REDIS_URL": "redis://localhost:6379", // trailing comma below
	},
	"pipArgs": ["--no-cache-dir"],
}`)

	plan, err := LoadOrDefault(dir)
	require.NoError(t, err)

	assert.Equal(t, "chenex-dashboard", plan.Name)
	assert.Equal(t, model.InterpreterVersion{Major: 3, Minor: 8}, plan.MinVersion)
	assert.Equal(t, "deps/requirements.txt", plan.Manifest)
	assert.Equal(t, "server.py", plan.EntryPoint)
	assert.Equal(t, []string{"--debug"}, plan.Args)
	assert.Equal(t, "5000", plan.Env["PORT"])
	assert.Equal(t, "redis://localhost:6379", plan.Env["REDIS_URL"])
	assert.Equal(t, []string{"--no-cache-dir"}, plan.PipArgs)
}

// TestLoadYAML verifies the YAML config variant.
func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "pylaunch.yaml", `
name: worker
interpreter: python3.12
minVersion: "3.12"
entryPoint: worker.py
env:
  QUEUE: jobs
`)

	plan, err := LoadOrDefault(dir)
	require.NoError(t, err)

	assert.Equal(t, "worker", plan.Name)
	// An explicit interpreter replaces the default candidate list.
	assert.Equal(t, []string{"python3.12"}, plan.Candidates)
	assert.Equal(t, model.InterpreterVersion{Major: 3, Minor: 12}, plan.MinVersion)
	assert.Equal(t, "worker.py", plan.EntryPoint)
	// Omitted fields keep their defaults.
	assert.Equal(t, "requirements.txt", plan.Manifest)
	assert.Equal(t, "jobs", plan.Env["QUEUE"])
}

// TestFindPriorityOrder verifies that pylaunch.jsonc wins over the
// other well-known names when several config files coexist.
func TestFindPriorityOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "pylaunch.yaml", `name: from-yaml`)
	jsoncPath := writeConfig(t, dir, "pylaunch.jsonc", `{"name": "from-jsonc"}`)

	found, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, jsoncPath, found)

	plan, err := LoadOrDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-jsonc", plan.Name)
}

// TestFindNoFile verifies that Find reports absence without error.
func TestFindNoFile(t *testing.T) {
	_, ok := Find(t.TempDir())
	assert.False(t, ok)
}

// TestLoadInvalidMinVersion verifies that a malformed minVersion is
// rejected at load time, before any step runs.
func TestLoadInvalidMinVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pylaunch.json", `{"minVersion": "three"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minVersion")
}

// TestLoadMalformedJSON verifies that unparseable config content
// surfaces as a load error naming the file.
func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "pylaunch.json", `{"name": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

// TestLoadMissingFile verifies the error for an explicit --config path
// that does not exist.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"))
	assert.Error(t, err)
}
