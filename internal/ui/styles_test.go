package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The styled helpers must keep their text content intact regardless of
// the terminal's color capabilities — lipgloss only adds escape
// sequences around the text, never inside it. These tests assert on
// content, not on styling.

func TestBanner(t *testing.T) {
	got := Banner("chenex-dashboard", "1.0.0")
	assert.Contains(t, got, "🚀")
	assert.Contains(t, got, "chenex-dashboard")
	assert.Contains(t, got, "pylaunch v1.0.0")
}

func TestSuccessf(t *testing.T) {
	got := Successf("Dependencies installed in %s", "1.2s")
	assert.Contains(t, got, "✅ Dependencies installed in 1.2s")
}

func TestFailuref(t *testing.T) {
	got := Failuref("pip exited with status %d", 2)
	assert.Contains(t, got, "❌ pip exited with status 2")
}

func TestStepf(t *testing.T) {
	got := Stepf("📦 Installing dependencies from %s...", "requirements.txt")
	assert.Contains(t, got, "Installing dependencies from requirements.txt...")
}
