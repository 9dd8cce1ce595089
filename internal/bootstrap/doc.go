// Package bootstrap implements the four-step launch sequence:
// announce, locate interpreter, install dependencies, launch
// application.
//
// The sequence is strictly linear with two fatal short-circuits:
//
//	Announced → InterpreterChecked → DependenciesInstalled → Launched
//	                 ↓ (missing)            ↓ (pip non-zero)
//	              exit 1                  exit 1
//
// The Sequencer does not talk to the outside world directly — the
// interpreter locator, package installer, and application launcher are
// injected as capabilities, so the whole state machine is testable with
// in-memory fakes and no environment mutation.
package bootstrap
