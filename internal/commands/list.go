package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"taskctl/internal/config"
	"taskctl/internal/exitcode"
	"taskctl/internal/output"
	"taskctl/internal/service"
	"taskctl/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskctl` (no args) and `taskctl list [filters]`.
type ListCmd struct {
	status   string
	priority string
	search   string
	offline  bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "taskctl list [--status <s>] [--priority <p>] [--search <text>] [--offline]"
}

func (c *ListCmd) Requires() Requirement {
	if c.offline {
		return Session
	}
	return Authenticated
}

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
	fs.BoolVar(&c.offline, "offline", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	filter, err := c.filter(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var tasks []service.Task
	if c.offline {
		var code int
		tasks, code = c.loadSnapshot(ctx, cfg, env, errOut)
		if code != exitcode.Success {
			return code
		}
	} else {
		if err := env.Store.FetchAll(ctx); err != nil {
			return reportError(errOut, err)
		}
		tasks = env.Store.State().Tasks.Tasks
	}

	tasks = store.FilterTasks(tasks, filter)
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTaskHeader(out)
	for _, t := range tasks {
		output.FormatTask(out, t)
	}
	return exitcode.Success
}

// filter builds the filter from flags. A bare positional argument is a search.
func (c *ListCmd) filter(args []string) (store.Filter, error) {
	f := store.Filter{Search: c.search}
	if f.Search == "" && len(args) > 0 {
		f.Search = args[0]
	}
	if c.status != "" {
		s, err := service.ParseStatus(c.status)
		if err != nil {
			return f, err
		}
		f.Status = s
	}
	if c.priority != "" {
		p, err := service.ParsePriority(c.priority)
		if err != nil {
			return f, err
		}
		f.Priority = p
	}
	return f, nil
}

func (c *ListCmd) loadSnapshot(ctx context.Context, cfg *config.Config, env *Env, errOut io.Writer) ([]service.Task, int) {
	if env.Cache == nil {
		fmt.Fprintln(errOut, "error: offline snapshot unavailable")
		return nil, exitcode.BackendError
	}
	tasks, savedAt, err := env.Cache.Load(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.BackendError
	}
	if savedAt.IsZero() {
		fmt.Fprintln(errOut, "error: no snapshot yet (run: taskctl list)")
		return nil, exitcode.UserError
	}
	if !cfg.Quiet {
		fmt.Fprintf(errOut, "snapshot from %s\n", humanize.RelTime(savedAt, env.Now(), "ago", "from now"))
	}
	return tasks, exitcode.Success
}
