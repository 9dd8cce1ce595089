// Package cli implements the cobra-based CLI commands for pylaunch.
//
// The root command runs the full bootstrap sequence (announce → verify
// interpreter → install dependencies → launch), so a bare `pylaunch`
// invocation behaves like the launch script it replaces. Subcommands
// (run, install, doctor) are defined in their own files within this
// package. This file defines the root command, global flags, and the
// error-to-exit-code translation.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pylaunch/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// Only the doctor command has structured output; the bootstrap
	// sequence itself always prints its human-readable status lines.
	jsonOutput bool

	// verbose enables detailed diagnostic output on stderr.
	verbose bool

	// configPath overrides the config file discovery with an explicit
	// path. Empty means: search the working directory for the
	// well-known names.
	configPath string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pylaunch",
		Short: "Bootstrap and launch a Python application",
		Long: `pylaunch bootstraps a Python application in four steps: it prints a
banner, verifies that a suitable Python interpreter is on the PATH,
installs dependencies from the requirements manifest, and launches the
application entry point.

Without arguments, pylaunch runs the full sequence using pylaunch.jsonc
(or .json/.yaml/.yml) from the working directory, falling back to the
defaults: python3, requirements.txt, app.py.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them (or stays quiet for silent exit errors).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// A bare invocation runs the bootstrap sequence unconditionally,
		// preserving the original script's zero-argument contract.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd.Context(), true)
		},
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (doctor only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the pylaunch config file")

	// Register subcommands. Each subcommand is defined in its own file
	// (run.go, install.go, doctor.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewInstallCommand())
	rootCmd.AddCommand(NewDoctorCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit codes; silent CLIErrors (the
// sequencer already printed the failure, or a launched application's
// exit status is being propagated) terminate without further output.
// Other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			if !cliErr.Silent() {
				printError(cliErr.Message, cliErr.Err)
			}
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitBootstrapFailed))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Diagnostics go to stderr so the bootstrap status stream on
// stdout stays exactly the fixed line sequence.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
