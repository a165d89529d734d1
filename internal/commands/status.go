package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskctl/internal/config"
	"taskctl/internal/exitcode"
	"taskctl/internal/service"
)

func init() {
	Register(&StatusCmd{})
	Register(&DoneCmd{})
}

// StatusCmd changes the status of a task.
type StatusCmd struct{}

func (c *StatusCmd) Name() string          { return "status" }
func (c *StatusCmd) Aliases() []string     { return []string{"mv"} }
func (c *StatusCmd) Synopsis() string      { return "Change the status of a task" }
func (c *StatusCmd) Usage() string         { return "taskctl status <id> <status>" }
func (c *StatusCmd) Requires() Requirement { return Authenticated }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: status required")
		return exitcode.UserError
	}
	status, err := service.ParseStatus(args[1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return runStatus(ctx, cfg, env, id, status, out, errOut)
}

// DoneCmd is shorthand for `status <id> DONE`.
type DoneCmd struct{}

func (c *DoneCmd) Name() string          { return "done" }
func (c *DoneCmd) Aliases() []string     { return nil }
func (c *DoneCmd) Synopsis() string      { return "Mark a task done" }
func (c *DoneCmd) Usage() string         { return "taskctl done <id>" }
func (c *DoneCmd) Requires() Requirement { return Authenticated }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return runStatus(ctx, cfg, env, id, service.StatusDone, out, errOut)
}

func runStatus(ctx context.Context, cfg *config.Config, env *Env, id int64, status service.Status, out, errOut io.Writer) int {
	if err := env.Store.UpdateStatus(ctx, id, status); err != nil {
		return reportError(errOut, err)
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
