package service

import "context"

// Auth defines authentication operations.
// Commands and the store never talk HTTP directly.
type Auth interface {
	// Login signs in and persists the returned access token.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Signup registers a new account. It does not sign in.
	Signup(ctx context.Context, req SignupRequest) error

	// Logout forgets the persisted access token. No network call is made.
	Logout() error

	// IsAuthenticated reports whether an access token is persisted.
	IsAuthenticated() bool
}

// Tasks defines task operations, one per backend endpoint.
type Tasks interface {
	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns a task by id.
	GetTask(ctx context.Context, id int64) (Task, error)

	// CreateTask creates a task and returns it with its assigned id.
	CreateTask(ctx context.Context, task Task) (Task, error)

	// UpdateTask replaces a task and returns the stored version.
	UpdateTask(ctx context.Context, id int64, task Task) (Task, error)

	// UpdateTaskStatus changes only the status of a task.
	UpdateTaskStatus(ctx context.Context, id int64, status Status) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id int64) error
}
