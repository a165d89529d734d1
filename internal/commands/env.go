package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskctl/internal/cache"
	"taskctl/internal/credentials"
	"taskctl/internal/store"
)

// Env carries the collaborators a command works with.
type Env struct {
	Store  *store.Store
	Tokens credentials.Store

	// Cache is nil when the snapshot database could not be opened.
	Cache *cache.Cache

	// Now is the clock used for relative dates.
	Now func() time.Time

	logger  *zap.Logger
	closers []func()
}

// NewEnv creates an Env without a snapshot cache.
func NewEnv(st *store.Store, tokens credentials.Store, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Env{
		Store:  st,
		Tokens: tokens,
		Now:    time.Now,
		logger: logger,
	}
}

// AttachCache seeds an authenticated store from the snapshot and keeps the
// snapshot in step with the store from then on.
func (e *Env) AttachCache(ctx context.Context, c *cache.Cache) {
	if e.Store.State().Auth.IsAuthenticated {
		tasks, savedAt, err := c.Load(ctx)
		switch {
		case err != nil:
			e.logger.Warn("failed to load task snapshot", zap.Error(err))
		case !savedAt.IsZero():
			e.Store.Hydrate(tasks)
		}
	}
	e.Cache = c
	e.OnClose(c.Track(ctx, e.Store))
	e.OnClose(func() {
		if err := c.Close(); err != nil {
			e.logger.Warn("failed to close task snapshot", zap.Error(err))
		}
	})
}

// OnClose registers fn to run on Close.
func (e *Env) OnClose(fn func()) {
	e.closers = append(e.closers, fn)
}

// Close releases everything registered with OnClose, newest first.
func (e *Env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}
