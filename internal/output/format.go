// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"taskctl/internal/service"
)

// dateLayouts are the due date formats the backend is known to send.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// taskRow is the layout shared by the table header and rows.
const taskRow = "%4s  %-11s  %-8s  %-10s  %s\n"

// FormatTaskHeader prints the task table header.
func FormatTaskHeader(w io.Writer) {
	fmt.Fprintf(w, taskRow, "ID", "STATUS", "PRIORITY", "DUE", "TITLE")
}

// FormatTask formats a task table row.
// Format: "{ID:>4}  {STATUS:<11}  {PRIORITY:<8}  {DUE:<10}  {TITLE}\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, taskRow,
		formatID(task.ID),
		task.Status,
		task.Priority,
		shortDate(task.DueDate),
		normalizeTitle(task.Title),
	)
}

// FormatTaskDetail prints every field of a task, one per line.
// now anchors the relative due date.
func FormatTaskDetail(w io.Writer, task service.Task, now time.Time) {
	fmt.Fprintf(w, "ID:          %s\n", formatID(task.ID))
	fmt.Fprintf(w, "Title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "Status:      %s\n", StatusLabel(task.Status))
	fmt.Fprintf(w, "Priority:    %s\n", task.Priority)
	fmt.Fprintf(w, "Due:         %s\n", formatDue(task.DueDate, now))
	if task.AssignedUser != nil {
		fmt.Fprintf(w, "Assigned to: %d\n", *task.AssignedUser)
	}
	if desc := strings.TrimSpace(task.Description); desc != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, desc)
	}
}

// StatusLabel returns the display name of a status.
func StatusLabel(s service.Status) string {
	switch s {
	case service.StatusPending:
		return "Pending"
	case service.StatusTodo:
		return "To do"
	case service.StatusInProgress:
		return "In progress"
	case service.StatusDone:
		return "Done"
	case service.StatusBlocked:
		return "Blocked"
	case service.StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// ParseDate parses a due date in any known layout.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %s", s)
}

func formatID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

// shortDate reduces a due date to YYYY-MM-DD for tables.
func shortDate(s string) string {
	if s == "" {
		return "-"
	}
	if t, err := ParseDate(s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

// formatDue renders a due date with a relative hint, e.g. "2026-11-01 (3 days from now)".
func formatDue(s string, now time.Time) string {
	if s == "" {
		return "-"
	}
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.RelTime(t, now, "ago", "from now"))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
