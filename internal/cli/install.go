// Package cli — install.go implements the "pylaunch install" command.
//
// install runs the bootstrap prefix only: banner, interpreter check,
// dependency installation. The application is not launched. This is
// useful in image builds and CI, where dependency installation and
// application startup happen at different times.
package cli

import (
	"github.com/spf13/cobra"
)

// NewInstallCommand creates the "install" cobra command.
func NewInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Verify the interpreter and install dependencies without launching",
		Long: `Verify that a suitable Python interpreter is available and install
dependencies from the requirements manifest, then stop without
launching the application.

Installation is always re-attempted, even if dependencies are already
present — pip decides what is up to date, pylaunch does not.

Examples:
  pylaunch install
  pylaunch install --config deploy/pylaunch.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd.Context(), false)
		},
	}
}
