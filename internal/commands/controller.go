// Package commands contains the CLI commands for the application.
package commands

// Flags carries the global and per-command flag values parsed by the CLI.
type Flags struct {
	LogLevel string
	Dir      string
	Patterns []string
	DryRun   bool
	// Source is a single file to inspect without module context.
	Source string
}

// Controller implements the CLI commands.
type Controller struct {
	Flags *Flags
}
