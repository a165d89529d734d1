// Package service defines the backend-agnostic types and interfaces for auth
// and task operations.
package service

import (
	"fmt"
	"strings"
)

// Priority is a task priority.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities lists all priorities, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Status is a task workflow status.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusBlocked    Status = "BLOCKED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists all statuses in workflow order.
var Statuses = []Status{StatusPending, StatusTodo, StatusInProgress, StatusDone, StatusBlocked, StatusCancelled}

// ParsePriority parses a priority name (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Priorities {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}

// ParseStatus parses a status name (case-insensitive, '-' accepted for '_').
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	for _, known := range Statuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status: %s", s)
}

// Task represents a single task.
// A nil ID marks a draft the server has not saved yet.
type Task struct {
	ID           *int64   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Priority     Priority `json:"priority"`
	DueDate      string   `json:"dueDate"`
	Status       Status   `json:"status"`
	AssignedUser *int64   `json:"assignedUser,omitempty"`
}

// HasID reports whether t carries the server id id.
func (t Task) HasID(id int64) bool {
	return t.ID != nil && *t.ID == id
}

// Int64 returns a pointer to v, for optional task fields.
func Int64(v int64) *int64 {
	return &v
}

// LoginRequest is the signin payload.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the signin response.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Username    string `json:"username"`
}
