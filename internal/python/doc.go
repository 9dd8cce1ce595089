// Package python locates a runnable Python interpreter on the search
// path and launches the application entry point through it.
//
// This package handles:
//   - Probing candidate binary names (python3, python, or a pinned
//     binary) via the search path
//   - Querying and parsing the interpreter's reported version
//   - Enforcing the minimum-version requirement
//   - Launching the entry point with passthrough stdio and a merged
//     environment, propagating the application's exit status
//
// All external interaction goes through os/exec; the Locator's probe
// functions are injectable so tests run without a real interpreter.
package python
