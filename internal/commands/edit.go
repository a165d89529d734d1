package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskctl/internal/config"
	"taskctl/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd replaces a task with the current server copy plus the given changes.
type EditCmd struct {
	fields taskFlags
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change a task" }
func (c *EditCmd) Usage() string {
	return "taskctl edit <id> [--description <d>] [--priority <p>] [--status <s>] [--due <date>] [--assignee <id> | --unassign] [title...]"
}
func (c *EditCmd) Requires() Requirement { return Authenticated }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fields.register(fs)
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	title := joinTitle(args[1:])
	if title == "" && !c.fields.given() {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	if err := env.Store.FetchByID(ctx, id); err != nil {
		return reportError(errOut, err)
	}
	sel := env.Store.State().Tasks.Selected
	if sel == nil {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	task := *sel
	if title != "" {
		task.Title = title
	}
	if err := c.fields.apply(&task); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := env.Store.Update(ctx, id, task); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
