// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"taskctl/internal/service"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Auth and
// service.Tasks for testing.
type FakeService struct {
	mu       sync.RWMutex
	tasks    []service.Task
	nextID   int64
	token    string
	users    map[string]string // username -> password
	signups  []service.SignupRequest
	requests []string

	// Error injection for testing
	LoginErr        error
	SignupErr       error
	ListTasksErr    error
	GetTaskErr      error
	CreateTaskErr   error
	UpdateTaskErr   error
	UpdateStatusErr error
	DeleteTaskErr   error

	// Hooks run before the operation returns, for interleaving tests.
	BeforeListReturn func()
}

var (
	_ service.Auth  = (*FakeService)(nil)
	_ service.Tasks = (*FakeService)(nil)
)

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID: 1,
		users:  make(map[string]string),
	}
}

// AddUser registers credentials accepted by Login.
func (f *FakeService) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// SetToken marks the fake as holding a persisted token.
func (f *FakeService) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

// AddTask stores a task and assigns it the next id. Returns the id.
func (f *FakeService) AddTask(task service.Task) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	task.ID = service.Int64(id)
	f.tasks = append(f.tasks, task)
	return id
}

// Signups returns the recorded signup requests.
func (f *FakeService) Signups() []service.SignupRequest {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.SignupRequest(nil), f.signups...)
}

// Requests returns the operations called, in order.
func (f *FakeService) Requests() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeService) record(op string) {
	f.requests = append(f.requests, op)
}

// Login implements service.Auth.
func (f *FakeService) Login(ctx context.Context, req service.LoginRequest) (service.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("login")

	if f.LoginErr != nil {
		return service.AuthResponse{}, f.LoginErr
	}
	if pw, ok := f.users[req.UsernameOrEmail]; !ok || pw != req.Password {
		return service.AuthResponse{}, errors.New("bad credentials")
	}
	f.token = "token-" + req.UsernameOrEmail
	return service.AuthResponse{
		AccessToken: f.token,
		TokenType:   "Bearer",
		Username:    req.UsernameOrEmail,
	}, nil
}

// Signup implements service.Auth.
func (f *FakeService) Signup(ctx context.Context, req service.SignupRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("signup")

	if f.SignupErr != nil {
		return f.SignupErr
	}
	f.signups = append(f.signups, req)
	f.users[req.Username] = req.Password
	return nil
}

// Logout implements service.Auth.
func (f *FakeService) Logout() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	return nil
}

// IsAuthenticated implements service.Auth.
func (f *FakeService) IsAuthenticated() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.token != ""
}

// ListTasks implements service.Tasks.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.record("list")
	err := f.ListTasksErr
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	hook := f.BeforeListReturn
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTask implements service.Tasks.
func (f *FakeService) GetTask(ctx context.Context, id int64) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get")

	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	for _, t := range f.tasks {
		if t.HasID(id) {
			return t, nil
		}
	}
	return service.Task{}, ErrNotFound
}

// CreateTask implements service.Tasks.
func (f *FakeService) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create")

	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	task.ID = service.Int64(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Tasks.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, task service.Task) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")

	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	for i, t := range f.tasks {
		if t.HasID(id) {
			task.ID = service.Int64(id)
			f.tasks[i] = task
			return task, nil
		}
	}
	return service.Task{}, ErrNotFound
}

// UpdateTaskStatus implements service.Tasks.
func (f *FakeService) UpdateTaskStatus(ctx context.Context, id int64, status service.Status) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("status")

	if f.UpdateStatusErr != nil {
		return service.Task{}, f.UpdateStatusErr
	}
	for i, t := range f.tasks {
		if t.HasID(id) {
			f.tasks[i].Status = status
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Tasks.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")

	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	for i, t := range f.tasks {
		if t.HasID(id) {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
