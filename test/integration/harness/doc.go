// Package harness provides utilities for integration testing the arlon CLI.
// It handles binary compilation, environment isolation, repository fixtures
// and command execution.
//
// Environment variables managed:
//   - ARLON_HOME: Isolated per test (temp directory)
//   - ARLON_*: Cleared so the caller's shell does not leak into tests
//   - TZ: Pinned to UTC so rendered commit dates are stable
package harness
