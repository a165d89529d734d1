package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskctl/internal/backend/restapi"
	"taskctl/internal/cache"
	"taskctl/internal/commands"
	"taskctl/internal/config"
	"taskctl/internal/credentials"
	"taskctl/internal/gateway"
	"taskctl/internal/store"
)

// DefaultFactory wires the file token store, the HTTP gateway, the REST
// client, the store and the task snapshot. A 401 from the backend expires
// the session.
func DefaultFactory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*commands.Env, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	tokens := credentials.NewFileStore(cfg.TokenPath())
	logger.Debug("session files", zap.String("token", tokens.Path()), zap.String("api", cfg.APIURL))
	gw := gateway.New(cfg.APIURL, tokens, gateway.WithLogger(logger))
	client := restapi.New(gw, tokens)
	st := store.New(client, client, store.WithLogger(logger))

	env := commands.NewEnv(st, tokens, logger)
	env.OnClose(gw.OnUnauthorized(func(ev gateway.UnauthorizedEvent) {
		logger.Debug("backend rejected token", zap.String("method", ev.Method), zap.String("path", ev.Path))
		st.ExpireSession()
	}))

	c, err := cache.Open(cfg.CachePath(), logger)
	if err != nil {
		logger.Warn("task snapshot unavailable", zap.Error(err))
		return env, nil
	}
	env.AttachCache(ctx, c)
	return env, nil
}
