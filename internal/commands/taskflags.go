package commands

import (
	"flag"
	"fmt"
	"strings"

	"taskctl/internal/output"
	"taskctl/internal/service"
)

// taskFlags are the task fields settable from the command line.
// Empty strings and a negative assignee mean "not given".
type taskFlags struct {
	description string
	priority    string
	status      string
	due         string
	assignee    int64
	unassign    bool
}

func (f *taskFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.description, "description", "", "")
	fs.StringVar(&f.description, "d", "", "")
	fs.StringVar(&f.priority, "priority", "", "")
	fs.StringVar(&f.priority, "p", "", "")
	fs.StringVar(&f.status, "status", "", "")
	fs.StringVar(&f.due, "due", "", "")
	fs.Int64Var(&f.assignee, "assignee", -1, "")
	fs.BoolVar(&f.unassign, "unassign", false, "")
}

// given reports whether any field flag was set.
func (f *taskFlags) given() bool {
	return f.description != "" || f.priority != "" || f.status != "" ||
		f.due != "" || f.assignee >= 0 || f.unassign
}

// apply writes the given flags onto t.
func (f *taskFlags) apply(t *service.Task) error {
	if f.description != "" {
		t.Description = f.description
	}
	if f.priority != "" {
		p, err := service.ParsePriority(f.priority)
		if err != nil {
			return err
		}
		t.Priority = p
	}
	if f.status != "" {
		s, err := service.ParseStatus(f.status)
		if err != nil {
			return err
		}
		t.Status = s
	}
	if f.due != "" {
		d, err := output.ParseDate(f.due)
		if err != nil {
			return err
		}
		t.DueDate = d.Format("2006-01-02")
	}
	switch {
	case f.unassign && f.assignee >= 0:
		return fmt.Errorf("cannot use both --assignee and --unassign")
	case f.unassign:
		t.AssignedUser = nil
	case f.assignee >= 0:
		t.AssignedUser = service.Int64(f.assignee)
	}
	return nil
}

func joinTitle(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
