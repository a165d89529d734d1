package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskctl/internal/config"
	"taskctl/internal/exitcode"
	"taskctl/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints one task in full.
type ShowCmd struct{}

func (c *ShowCmd) Name() string          { return "show" }
func (c *ShowCmd) Aliases() []string     { return []string{"get"} }
func (c *ShowCmd) Synopsis() string      { return "Show a task" }
func (c *ShowCmd) Usage() string         { return "taskctl show <id>" }
func (c *ShowCmd) Requires() Requirement { return Authenticated }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
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
	output.FormatTaskDetail(out, *sel, env.Now())
	return exitcode.Success
}
