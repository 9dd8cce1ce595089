// Package cli — run.go implements the "pylaunch run" command and the
// shared sequence wiring used by the bare root invocation.
//
// run executes the full bootstrap sequence. The process exit status is
// 1 if the interpreter is missing or installation fails; otherwise it
// is whatever the launched application returns.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"pylaunch/internal/bootstrap"
	"pylaunch/internal/config"
	"pylaunch/internal/model"
	"pylaunch/internal/pip"
	"pylaunch/internal/python"
)

// NewRunCommand creates the "run" cobra command, an explicit alias of
// the bare root invocation.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full bootstrap sequence and launch the application",
		Long: `Run the four bootstrap steps: announce, verify the Python interpreter,
install dependencies from the requirements manifest, and launch the
application entry point.

Examples:
  pylaunch run
  pylaunch run --config deploy/pylaunch.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd.Context(), true)
		},
	}
}

// runSequence loads the launch plan, wires the real collaborators into
// a Sequencer, and runs either the full sequence or the install-only
// prefix.
func runSequence(ctx context.Context, launch bool) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	VerboseLog("Launch plan: interpreter candidates %v (min %s), manifest %s, entry point %s",
		plan.Candidates, plan.MinVersion, plan.Manifest, plan.EntryPoint)

	seq := bootstrap.New(
		plan,
		python.NewLocator(plan.Candidates, plan.MinVersion),
		pip.NewInstaller(os.Stdout, plan.PipArgs),
		python.NewRunner(),
		os.Stdout,
		Version,
	)

	if launch {
		return seq.Run(ctx)
	}
	return seq.RunInstall(ctx)
}

// loadPlan resolves the effective LaunchPlan: the --config file when
// given, otherwise discovery in the working directory with fallback to
// the built-in defaults.
func loadPlan() (*model.LaunchPlan, error) {
	if configPath != "" {
		plan, err := config.Load(configPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitBootstrapFailed, "invalid configuration", err)
		}
		return plan, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitBootstrapFailed, "cannot determine working directory", err)
	}

	plan, err := config.LoadOrDefault(cwd)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitBootstrapFailed, "invalid configuration", err)
	}
	return plan, nil
}
