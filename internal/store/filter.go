package store

import (
	"strings"

	"taskctl/internal/service"
)

// Filter selects tasks for display. Zero fields match everything.
type Filter struct {
	Status   service.Status
	Priority service.Priority
	// Search matches title or description, case-insensitively.
	Search string
}

// FilterTasks returns the tasks matching f, in their original order.
func FilterTasks(tasks []service.Task, f Filter) []service.Task {
	search := strings.ToLower(f.Search)

	var out []service.Task
	for _, t := range tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FindTask returns the task with the given id.
func FindTask(tasks []service.Task, id int64) (service.Task, bool) {
	if i := indexOf(tasks, id); i >= 0 {
		return tasks[i], true
	}
	return service.Task{}, false
}
