package store

import (
	"strings"

	"taskctl/internal/service"
)

// Action is a described intent to change state. Reducers switch on the
// concrete type.
type Action interface {
	Type() string
}

// Op names an asynchronous operation. Its prefix is the slice that owns it.
type Op string

const (
	OpLogin        Op = "auth/login"
	OpSignup       Op = "auth/signup"
	OpFetchAll     Op = "tasks/fetchAll"
	OpFetchByID    Op = "tasks/fetchById"
	OpCreate       Op = "tasks/create"
	OpUpdate       Op = "tasks/update"
	OpUpdateStatus Op = "tasks/updateStatus"
	OpDelete       Op = "tasks/delete"
)

func (o Op) auth() bool  { return strings.HasPrefix(string(o), "auth/") }
func (o Op) tasks() bool { return strings.HasPrefix(string(o), "tasks/") }

// Pending is dispatched when an operation starts.
// Seq orders fetches so that superseded responses can be dropped.
type Pending struct {
	Op  Op
	Seq uint64
}

func (a Pending) Type() string { return string(a.Op) + "/pending" }

// Rejected is dispatched when an operation fails.
type Rejected struct {
	Op      Op
	Seq     uint64
	Message string
}

func (a Rejected) Type() string { return string(a.Op) + "/rejected" }

// LoginFulfilled carries a successful signin.
type LoginFulfilled struct {
	Response service.AuthResponse
}

func (LoginFulfilled) Type() string { return string(OpLogin) + "/fulfilled" }

// SignupFulfilled marks a successful registration.
type SignupFulfilled struct{}

func (SignupFulfilled) Type() string { return string(OpSignup) + "/fulfilled" }

// LoggedOut resets the session.
type LoggedOut struct{}

func (LoggedOut) Type() string { return "auth/logout" }

// SessionExpired resets the session after the backend rejected the token.
type SessionExpired struct{}

func (SessionExpired) Type() string { return "auth/sessionExpired" }

// AuthErrorCleared resets the auth error.
type AuthErrorCleared struct{}

func (AuthErrorCleared) Type() string { return "auth/clearError" }

// TasksFetched carries the full task list.
type TasksFetched struct {
	Seq   uint64
	Tasks []service.Task
}

func (TasksFetched) Type() string { return string(OpFetchAll) + "/fulfilled" }

// TasksHydrated seeds the collection from a local snapshot.
// It does not count as a fetch.
type TasksHydrated struct {
	Tasks []service.Task
}

func (TasksHydrated) Type() string { return "tasks/hydrate" }

// TaskFetched carries a single task for the selection.
type TaskFetched struct {
	Seq  uint64
	Task service.Task
}

func (TaskFetched) Type() string { return string(OpFetchByID) + "/fulfilled" }

// TaskCreated carries a created task with its server id.
type TaskCreated struct {
	Task service.Task
}

func (TaskCreated) Type() string { return string(OpCreate) + "/fulfilled" }

// TaskUpdated carries a replaced task.
type TaskUpdated struct {
	Task service.Task
}

func (TaskUpdated) Type() string { return string(OpUpdate) + "/fulfilled" }

// TaskStatusUpdated carries the task returned by a status change.
// Only its status is applied.
type TaskStatusUpdated struct {
	Task service.Task
}

func (TaskStatusUpdated) Type() string { return string(OpUpdateStatus) + "/fulfilled" }

// TaskDeleted carries the id of a deleted task.
type TaskDeleted struct {
	ID int64
}

func (TaskDeleted) Type() string { return string(OpDelete) + "/fulfilled" }

// SelectedTaskSet replaces the selection; nil clears it.
type SelectedTaskSet struct {
	Task *service.Task
}

func (SelectedTaskSet) Type() string { return "tasks/setSelectedTask" }

// TaskErrorCleared resets the task error.
type TaskErrorCleared struct{}

func (TaskErrorCleared) Type() string { return "tasks/clearError" }
