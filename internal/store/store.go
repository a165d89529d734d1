// Package store holds the client's authoritative session and task state.
//
// State changes only through Dispatch, which runs the pure Reduce function
// under a lock. Thunks (Login, FetchAll, Create, ...) wrap one service call in
// a pending action followed by a fulfilled or rejected action. Nothing spans
// the gap between pending and fulfilled, so two overlapping mutations apply
// in the order their responses arrive.
package store

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"taskctl/internal/service"
)

// Listener receives the new state and the action that produced it.
type Listener func(State, Action)

// Store is the client state container.
type Store struct {
	auth   service.Auth
	tasks  service.Tasks
	logger *zap.Logger
	seq    atomic.Uint64

	mu    sync.Mutex
	state State

	lmu          sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store. The session starts authenticated when auth reports a
// persisted token.
func New(auth service.Auth, tasks service.Tasks, opts ...Option) *Store {
	s := &Store{
		auth:      auth,
		tasks:     tasks,
		logger:    zap.NewNop(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = InitialState(auth.IsAuthenticated())
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.state)
}

// Dispatch applies a to the state and notifies listeners.
// Returns the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := snapshot(s.state)
	s.mu.Unlock()

	s.logger.Debug("dispatch", zap.String("action", a.Type()))

	s.lmu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.lmu.Unlock()

	for _, l := range listeners {
		l(next, a)
	}
	return next
}

// Subscribe registers l to run after every dispatch.
// The returned function removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		delete(s.listeners, id)
	}
}

// nextSeq returns a fresh, increasing sequence number for a fetch.
func (s *Store) nextSeq() uint64 {
	return s.seq.Add(1)
}

func snapshot(st State) State {
	st.Tasks.Tasks = cloneTasks(st.Tasks.Tasks)
	if st.Tasks.Selected != nil {
		sel := *st.Tasks.Selected
		st.Tasks.Selected = &sel
	}
	return st
}
