// Package restapi implements the service.Auth and service.Tasks interfaces
// against the task backend's REST API.
package restapi

import (
	"context"
	"fmt"
	"net/http"

	"taskctl/internal/credentials"
	"taskctl/internal/service"
)

// Sender performs one backend request. Implemented by *gateway.Gateway.
type Sender interface {
	Send(ctx context.Context, method, path string, body, out any) error
}

// Client implements service.Auth and service.Tasks.
type Client struct {
	api    Sender
	tokens credentials.Store
}

var (
	_ service.Auth  = (*Client)(nil)
	_ service.Tasks = (*Client)(nil)
)

// New creates a client that sends through api and persists tokens in tokens.
func New(api Sender, tokens credentials.Store) *Client {
	return &Client{api: api, tokens: tokens}
}

// Login signs in and persists the returned access token.
func (c *Client) Login(ctx context.Context, req service.LoginRequest) (service.AuthResponse, error) {
	var resp service.AuthResponse
	if err := c.api.Send(ctx, http.MethodPost, "/auth/signin", req, &resp); err != nil {
		return service.AuthResponse{}, err
	}
	if resp.AccessToken == "" {
		return service.AuthResponse{}, fmt.Errorf("signin response has no access token")
	}

	tok := credentials.BearerToken(resp.AccessToken)
	if resp.TokenType != "" {
		tok.TokenType = resp.TokenType
	}
	if err := c.tokens.Save(tok); err != nil {
		return service.AuthResponse{}, fmt.Errorf("failed to save token: %w", err)
	}
	return resp, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req service.SignupRequest) error {
	return c.api.Send(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// Logout forgets the persisted token.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// IsAuthenticated reports whether a token is persisted.
func (c *Client) IsAuthenticated() bool {
	return credentials.Has(c.tokens)
}

// ListTasks returns all tasks in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.api.Send(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a task by id.
func (c *Client) GetTask(ctx context.Context, id int64) (service.Task, error) {
	var task service.Task
	if err := c.api.Send(ctx, http.MethodGet, taskPath(id), nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	var created service.Task
	if err := c.api.Send(ctx, http.MethodPost, "/tasks", task, &created); err != nil {
		return service.Task{}, err
	}
	return created, nil
}

// UpdateTask replaces a task.
func (c *Client) UpdateTask(ctx context.Context, id int64, task service.Task) (service.Task, error) {
	var updated service.Task
	if err := c.api.Send(ctx, http.MethodPut, taskPath(id), task, &updated); err != nil {
		return service.Task{}, err
	}
	return updated, nil
}

// UpdateTaskStatus patches the status of a task.
func (c *Client) UpdateTaskStatus(ctx context.Context, id int64, status service.Status) (service.Task, error) {
	body := struct {
		Status service.Status `json:"status"`
	}{Status: status}

	var updated service.Task
	if err := c.api.Send(ctx, http.MethodPatch, taskPath(id)+"/status", body, &updated); err != nil {
		return service.Task{}, err
	}
	return updated, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.api.Send(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return fmt.Sprintf("/tasks/%d", id)
}
