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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string          { return "help" }
func (c *HelpCmd) Aliases() []string     { return nil }
func (c *HelpCmd) Synopsis() string      { return "Print usage" }
func (c *HelpCmd) Usage() string         { return "taskctl help" }
func (c *HelpCmd) Requires() Requirement { return NoSession }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskctl                                       List all tasks
  taskctl list [common flags] [--status <s>] [--priority <p>] [--search <text>] [--offline]
  taskctl show [common flags] <id>
  taskctl add [common flags] [task flags] <title...>
  taskctl edit [common flags] <id> [task flags] [--unassign] [title...]
  taskctl status [common flags] <id> <status>
  taskctl done [common flags] <id>
  taskctl rm [common flags] <id>
  taskctl login [common flags] --user <name|email> [--password <p>]
  taskctl signup [common flags] --username <u> --email <e> [--name <n>] [--password <p>]
  taskctl logout [common flags]
  taskctl whoami [common flags]
  taskctl help
  taskctl version

Task flags:
  --description <text>   Task description
  --priority <p>         LOW, MEDIUM, HIGH or URGENT
  --status <s>           PENDING, TODO, IN_PROGRESS, DONE, BLOCKED or CANCELLED
  --due <date>           Due date, YYYY-MM-DD
  --assignee <id>        Assigned user id

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override backend URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKCTL_CONFIG_DIR   Config directory
  TASKCTL_API_URL      Backend URL
  TASKCTL_PASSWORD     Password for login and signup
`
