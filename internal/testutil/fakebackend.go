package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"taskctl/internal/service"
)

// jwtSecret signs tokens issued by FakeBackend.
var jwtSecret = []byte("fake-backend-secret")

// FakeBackend is an in-memory task backend served over HTTP.
// It speaks the same REST API as the real server.
type FakeBackend struct {
	Server *httptest.Server

	mu     sync.Mutex
	users  map[string]string // username -> password
	valid  map[string]bool   // issued tokens still accepted
	tasks  []service.Task
	nextID int64
	seen   []*http.Request
}

// NewFakeBackend starts a FakeBackend; it is closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		users:  make(map[string]string),
		valid:  make(map[string]bool),
		nextID: 1,
	}

	r := chi.NewRouter()
	r.Use(b.recordRequests)
	r.Post("/auth/signin", b.signin)
	r.Post("/auth/signup", b.signup)
	r.Route("/tasks", func(r chi.Router) {
		r.Use(b.requireToken)
		r.Get("/", b.listTasks)
		r.Post("/", b.createTask)
		r.Get("/{id}", b.getTask)
		r.Put("/{id}", b.updateTask)
		r.Patch("/{id}/status", b.updateStatus)
		r.Delete("/{id}", b.deleteTask)
	})

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the base URL of the backend.
func (b *FakeBackend) URL() string {
	return b.Server.URL
}

// AddUser registers credentials.
func (b *FakeBackend) AddUser(username, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[username] = password
}

// IssueToken returns a token the backend accepts, as if username had signed in.
func (b *FakeBackend) IssueToken(username string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issueLocked(username)
}

// RevokeAll makes every issued token invalid.
func (b *FakeBackend) RevokeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valid = make(map[string]bool)
}

// AddTask stores a task and returns its id.
func (b *FakeBackend) AddTask(task service.Task) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	task.ID = service.Int64(b.nextID)
	b.nextID++
	b.tasks = append(b.tasks, task)
	return *task.ID
}

// Tasks returns the stored tasks in order.
func (b *FakeBackend) Tasks() []service.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]service.Task(nil), b.tasks...)
}

// Requests returns the requests received, in order.
func (b *FakeBackend) Requests() []*http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*http.Request(nil), b.seen...)
}

func (b *FakeBackend) issueLocked(username string) string {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ID:        strconv.Itoa(len(b.valid) + 1),
	}).SignedString(jwtSecret)
	if err != nil {
		panic(err)
	}
	b.valid[raw] = true
	return raw
}

func (b *FakeBackend) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.seen = append(b.seen, r.Clone(r.Context()))
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *FakeBackend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		b.mu.Lock()
		ok := b.valid[raw]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *FakeBackend) signin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pw, ok := b.users[req.UsernameOrEmail]; !ok || pw != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}
	writeJSON(w, http.StatusOK, service.AuthResponse{
		AccessToken: b.issueLocked(req.UsernameOrEmail),
		TokenType:   "Bearer",
		Username:    req.UsernameOrEmail,
	})
}

func (b *FakeBackend) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Username]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Username is already taken!"})
		return
	}
	b.users[req.Username] = req.Password
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "User registered successfully"})
}

func (b *FakeBackend) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, b.Tasks())
}

func (b *FakeBackend) createTask(w http.ResponseWriter, r *http.Request) {
	var task service.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}
	if strings.TrimSpace(task.Title) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "title is required"})
		return
	}
	task.ID = service.Int64(b.AddTask(task))
	writeJSON(w, http.StatusCreated, task)
}

func (b *FakeBackend) getTask(w http.ResponseWriter, r *http.Request) {
	b.withTask(w, r, func(t *service.Task) {
		writeJSON(w, http.StatusOK, *t)
	})
}

func (b *FakeBackend) updateTask(w http.ResponseWriter, r *http.Request) {
	var in service.Task
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}
	b.withTask(w, r, func(t *service.Task) {
		in.ID = t.ID
		*t = in
		writeJSON(w, http.StatusOK, *t)
	})
}

func (b *FakeBackend) updateStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status service.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}
	b.withTask(w, r, func(t *service.Task) {
		t.Status = in.Status
		writeJSON(w, http.StatusOK, *t)
	})
}

func (b *FakeBackend) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, t := range b.tasks {
		if t.HasID(id) {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found"})
}

// withTask runs fn on the task named by the {id} URL param while holding the lock.
func (b *FakeBackend) withTask(w http.ResponseWriter, r *http.Request, fn func(t *service.Task)) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].HasID(id) {
			fn(&b.tasks[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
