// Package ui provides the styled status lines printed by the bootstrap
// sequence: the launch banner, per-step progress lines, and the
// success/failure confirmations.
//
// Styling uses github.com/charmbracelet/lipgloss, which automatically
// degrades to plain text when the output is not a color-capable
// terminal, so piped output stays machine-greppable.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors for status lines. Chosen to read well on both light
// and dark terminal backgrounds.
var (
	bannerColor  = lipgloss.Color("#2196F3") // blue
	successColor = lipgloss.Color("#8BC34A") // green
	failureColor = lipgloss.Color("#E53935") // red
	stepColor    = lipgloss.Color("#FFC107") // amber
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(bannerColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(failureColor)
	stepStyle    = lipgloss.NewStyle().Foreground(stepColor)
)

// Banner renders the launch banner identifying the application and the
// pylaunch version, e.g. "🚀 chenex-dashboard (pylaunch v1.0.0)".
func Banner(appName, toolVersion string) string {
	return bannerStyle.Render(fmt.Sprintf("🚀 %s (pylaunch v%s)", appName, toolVersion))
}

// Successf renders a green confirmation line prefixed with a check mark.
func Successf(format string, args ...interface{}) string {
	return successStyle.Render("✅ " + fmt.Sprintf(format, args...))
}

// Failuref renders a red failure line prefixed with a cross mark.
func Failuref(format string, args ...interface{}) string {
	return failureStyle.Render("❌ " + fmt.Sprintf(format, args...))
}

// Stepf renders an in-progress step line, e.g. the dependency
// installation announcement.
func Stepf(format string, args ...interface{}) string {
	return stepStyle.Render(fmt.Sprintf(format, args...))
}
