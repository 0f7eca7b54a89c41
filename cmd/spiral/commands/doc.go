// Package commands defines the spiral CLI and wires dependencies for subcommands.
//
// Commands
//
//   - setup   First-run setup: store configuration, sign in anonymously
//   - status  Show configuration and session state
//   - add     Capture a journal entry (mood tags + text)
//   - list    Print recent entries
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides, and builds the dependency graph (stores, auth client, services)
// before any subcommand runs, so handlers share one app context.
package commands
