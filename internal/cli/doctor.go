// Package cli — doctor.go implements the "pylaunch doctor" command.
//
// doctor is a non-mutating environment report: it checks the
// interpreter, pip, the requirements manifest, and the entry point, and
// prints one line per check. Nothing is installed or launched. The
// command exits 1 when any check fails, so it can gate CI pipelines.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pylaunch/internal/model"
	"pylaunch/internal/pip"
	"pylaunch/internal/python"
)

// checkResult is the outcome of a single doctor check.
type checkResult struct {
	// Name identifies the check (e.g., "interpreter", "manifest").
	Name string `json:"name"`

	// OK reports whether the check passed.
	OK bool `json:"ok"`

	// Detail is a one-line human-readable explanation: what was found,
	// or why the check failed.
	Detail string `json:"detail"`
}

// NewDoctorCommand creates the "doctor" cobra command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment without installing or launching anything",
		Long: `Report whether the environment satisfies the bootstrap prerequisites:
a suitable Python interpreter on the PATH, a working pip module, and
the presence of the requirements manifest and entry-point files.

Exits with code 1 if any check fails.

Examples:
  pylaunch doctor
  pylaunch doctor --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

// runDoctor is the main logic function for the doctor command.
func runDoctor(ctx context.Context) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	results := collectChecks(ctx, plan)

	if IsJSONOutput() {
		printDoctorJSON(plan, results)
	} else {
		printDoctorText(plan, results)
	}

	for _, r := range results {
		if !r.OK {
			// The report above already explains the failure.
			return model.NewSilentExit(model.ExitBootstrapFailed)
		}
	}
	return nil
}

// collectChecks runs all doctor checks against the plan and returns
// their results in display order.
func collectChecks(ctx context.Context, plan *model.LaunchPlan) []checkResult {
	results := make([]checkResult, 0, 4)

	// Check 1: interpreter presence and version.
	locator := python.NewLocator(plan.Candidates, plan.MinVersion)
	interp, err := locator.Locate(ctx)
	if err != nil {
		results = append(results, checkResult{
			Name:   "interpreter",
			Detail: err.Error(),
		})
	} else {
		results = append(results, checkResult{
			Name:   "interpreter",
			OK:     true,
			Detail: interp.String(),
		})
	}

	// Check 2: pip availability. Only meaningful when an interpreter
	// was found — without one there is nothing to import pip into.
	if interp != nil {
		banner, err := pip.Version(ctx, interp)
		if err != nil {
			results = append(results, checkResult{
				Name:   "pip",
				Detail: err.Error(),
			})
		} else {
			results = append(results, checkResult{
				Name:   "pip",
				OK:     true,
				Detail: strings.TrimSpace(banner),
			})
		}
	} else {
		results = append(results, checkResult{
			Name:   "pip",
			Detail: "skipped: no interpreter",
		})
	}

	// Checks 3 and 4: the two filesystem inputs the sequence consumes.
	results = append(results, fileCheck("manifest", plan.Manifest))
	results = append(results, fileCheck("entry point", plan.EntryPoint))

	return results
}

// fileCheck verifies that a regular file exists at path.
func fileCheck(name, path string) checkResult {
	info, err := os.Stat(path)
	if err != nil {
		return checkResult{Name: name, Detail: fmt.Sprintf("%s not found", path)}
	}
	if info.IsDir() {
		return checkResult{Name: name, Detail: fmt.Sprintf("%s is a directory", path)}
	}
	return checkResult{Name: name, OK: true, Detail: path}
}

// printDoctorText outputs the report as aligned human-readable lines.
func printDoctorText(plan *model.LaunchPlan, results []checkResult) {
	fmt.Printf("Environment report for %q\n\n", plan.Name)
	for _, r := range results {
		fmt.Println("  " + FormatCheckLine(r))
	}
}

// printDoctorJSON outputs the report as structured JSON.
func printDoctorJSON(plan *model.LaunchPlan, results []checkResult) {
	report := struct {
		Name   string        `json:"name"`
		Checks []checkResult `json:"checks"`
	}{
		Name:   plan.Name,
		Checks: results,
	}

	data, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(data))
}

// FormatCheckLine renders a single check as "✅ name  detail" or
// "❌ name  detail" with the name column padded for alignment.
func FormatCheckLine(r checkResult) string {
	mark := "❌"
	if r.OK {
		mark = "✅"
	}
	return fmt.Sprintf("%s %-12s %s", mark, r.Name, r.Detail)
}
