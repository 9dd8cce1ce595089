// Package model defines the domain types and value objects for the
// pylaunch CLI.
//
// This package contains pure data structures with no external dependencies:
// the resolved launch plan, the located interpreter and its parsed version,
// the two bootstrap failure kinds (PrerequisiteError, InstallError), and
// the exit-code machinery (ExitCode, CLIError) that translates domain
// failures into OS process exit statuses.
package model
