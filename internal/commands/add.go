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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	fields taskFlags
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskctl add [--description <d>] [--priority <p>] [--status <s>] [--due <date>] [--assignee <id>] <title...>"
}
func (c *AddCmd) Requires() Requirement { return Authenticated }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.fields.register(fs)
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	title := joinTitle(args)
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	task := service.Task{
		Title:    title,
		Priority: service.PriorityMedium,
		Status:   service.StatusTodo,
	}
	if err := c.fields.apply(&task); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	before := len(env.Store.State().Tasks.Tasks)
	if err := env.Store.Create(ctx, task); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		tasks := env.Store.State().Tasks.Tasks
		if len(tasks) > before && tasks[len(tasks)-1].ID != nil {
			fmt.Fprintf(out, "created task %d\n", *tasks[len(tasks)-1].ID)
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}
