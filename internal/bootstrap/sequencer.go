package bootstrap

import (
	"context"
	"fmt"
	"io"

	"pylaunch/internal/model"
	"pylaunch/internal/ui"
)

// InterpreterLocator answers whether a runnable interpreter matching the
// plan's requirements exists on the search path.
type InterpreterLocator interface {
	// Locate returns the first suitable interpreter, or a
	// *model.PrerequisiteError when none qualifies.
	Locate(ctx context.Context) (*model.Interpreter, error)
}

// PackageInstaller installs the packages declared in a manifest file
// into the given interpreter's environment.
type PackageInstaller interface {
	// Install returns nil on success or a *model.InstallError carrying
	// the installer's non-zero exit status.
	Install(ctx context.Context, interp *model.Interpreter, manifest string) error
}

// AppLauncher invokes the application entry point via the located
// interpreter and reports the application's exit status.
type AppLauncher interface {
	Launch(ctx context.Context, interp *model.Interpreter, entry string, args []string, env map[string]string) (int, error)
}

// Sequencer executes the bootstrap steps in strict order, writing all
// status lines to a single output stream. It holds no state across
// runs — calling Run twice re-executes the full sequence, including
// dependency installation.
type Sequencer struct {
	plan      *model.LaunchPlan
	locator   InterpreterLocator
	installer PackageInstaller
	launcher  AppLauncher

	// out receives every status line (banner, confirmations, errors).
	// Standard error is deliberately not used: the sequence emits one
	// ordered stream of human-readable lines.
	out io.Writer

	// toolVersion is the pylaunch version shown in the banner.
	toolVersion string
}

// New creates a Sequencer for the given plan and collaborators.
func New(plan *model.LaunchPlan, locator InterpreterLocator, installer PackageInstaller, launcher AppLauncher, out io.Writer, toolVersion string) *Sequencer {
	return &Sequencer{
		plan:        plan,
		locator:     locator,
		installer:   installer,
		launcher:    launcher,
		out:         out,
		toolVersion: toolVersion,
	}
}

// Run executes the full four-step sequence.
//
// The returned error is always a *model.CLIError (or nil). Both fatal
// bootstrap conditions return a silent error with ExitBootstrapFailed —
// the failure line has already been printed to the output stream. After
// a successful launch, the error is nil when the application exited
// cleanly, or a silent error carrying the application's own exit status.
func (s *Sequencer) Run(ctx context.Context) error {
	// Steps 1-3: announce, locate, install.
	interp, err := s.prepare(ctx)
	if err != nil {
		return err
	}

	// Step 4: launch. From here on, the outcome belongs to the
	// application — the sequencer reports nothing after control
	// transfers.
	fmt.Fprintln(s.out, ui.Stepf("🚀 Launching %s...", s.plan.EntryPoint))

	code, err := s.launcher.Launch(ctx, interp, s.plan.EntryPoint, s.plan.Args, s.plan.Env)
	if err != nil {
		fmt.Fprintln(s.out, ui.Failuref("Failed to launch %s: %v", s.plan.EntryPoint, err))
		return model.WrapSilentExit(model.ExitBootstrapFailed, err)
	}
	if code != 0 {
		return model.NewSilentExit(model.ExitCode(code))
	}
	return nil
}

// RunInstall executes steps 1-3 only (announce, locate, install),
// without launching the application. This backs the `pylaunch install`
// command.
func (s *Sequencer) RunInstall(ctx context.Context) error {
	_, err := s.prepare(ctx)
	return err
}

// prepare runs the shared prefix of the sequence: banner, interpreter
// check, dependency installation. On success it returns the located
// interpreter for the launch step.
func (s *Sequencer) prepare(ctx context.Context) (*model.Interpreter, error) {
	// Step 1: Announce. Pure side effect, never fails, always first.
	fmt.Fprintln(s.out, ui.Banner(s.plan.Name, s.toolVersion))

	// Step 2: Locate the interpreter. Missing interpreter is fatal —
	// no retry, and installation is never attempted.
	interp, err := s.locator.Locate(ctx)
	if err != nil {
		fmt.Fprintln(s.out, ui.Failuref("Python %d or newer is required but was not found. Please install it and try again.", s.plan.MinVersion.Major))
		return nil, model.WrapSilentExit(model.ExitBootstrapFailed, err)
	}
	fmt.Fprintln(s.out, ui.Successf("%s found", interp))

	// Step 3: Install dependencies. The installer's status is checked
	// exactly once, immediately after it returns. Non-zero is fatal —
	// no retry, no partial-install cleanup.
	fmt.Fprintln(s.out, ui.Stepf("📦 Installing dependencies from %s...", s.plan.Manifest))
	if err := s.installer.Install(ctx, interp, s.plan.Manifest); err != nil {
		fmt.Fprintln(s.out, ui.Failuref("Dependency installation failed: %v", err))
		return nil, model.WrapSilentExit(model.ExitBootstrapFailed, err)
	}
	fmt.Fprintln(s.out, ui.Successf("Dependencies installed"))

	return interp, nil
}
