// Package cli — doctor_test.go contains unit tests for the pure
// formatting and filesystem helpers used by the doctor command.
//
// These tests verify report construction without requiring a Python
// interpreter or any external dependencies.
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatCheckLine verifies the pass/fail markers and column
// alignment of doctor report lines.
func TestFormatCheckLine(t *testing.T) {
	tests := []struct {
		name   string
		result checkResult
		want   string
	}{
		{
			name:   "passing check",
			result: checkResult{Name: "manifest", OK: true, Detail: "requirements.txt"},
			want:   "✅ manifest     requirements.txt",
		},
		{
			name:   "failing check",
			result: checkResult{Name: "interpreter", Detail: "no Python interpreter >= 3.0.0 found (tried: python3, python)"},
			want:   "❌ interpreter  no Python interpreter >= 3.0.0 found (tried: python3, python)",
		},
		{
			name:   "short name is padded",
			result: checkResult{Name: "pip", OK: true, Detail: "pip 24.0"},
			want:   "✅ pip          pip 24.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCheckLine(tt.result))
		})
	}
}

// TestFileCheck verifies the filesystem input checks for the manifest
// and entry-point files.
func TestFileCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing file passes", func(t *testing.T) {
		path := filepath.Join(dir, "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("flask\n"), 0644))

		r := fileCheck("manifest", path)
		assert.True(t, r.OK)
		assert.Equal(t, path, r.Detail)
	})

	t.Run("missing file fails", func(t *testing.T) {
		r := fileCheck("manifest", filepath.Join(dir, "absent.txt"))
		assert.False(t, r.OK)
		assert.Contains(t, r.Detail, "not found")
	})

	t.Run("directory fails", func(t *testing.T) {
		sub := filepath.Join(dir, "appdir")
		require.NoError(t, os.Mkdir(sub, 0755))

		r := fileCheck("entry point", sub)
		assert.False(t, r.OK)
		assert.Contains(t, r.Detail, "is a directory")
	})
}
