// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskctl/internal/config"
)

// Requirement is what a command needs from the dispatcher before it runs.
type Requirement int

const (
	// NoSession commands get a nil Env.
	NoSession Requirement = iota

	// Session commands get an Env whether or not a token is stored.
	Session

	// Authenticated commands only run when a token is stored.
	Authenticated
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Requires is consulted after flag parsing, so it may depend on flags.
	Requires() Requirement

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// env is nil if Requires() returns NoSession.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int
}
