// Package gateway sends JSON requests to the task backend.
// It attaches the stored bearer token to every call and reports
// authentication failures to subscribers instead of handling them itself.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"taskctl/internal/credentials"
)

// RequestIDHeader carries a per-call id so backend logs can be matched.
const RequestIDHeader = "X-Request-ID"

// UnauthorizedEvent is published after the backend answers 401.
// The stored token has already been cleared when subscribers run.
type UnauthorizedEvent struct {
	Method string
	Path   string
}

// Gateway performs single-attempt HTTP calls against the backend.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	tokens     credentials.Store
	logger     *zap.Logger

	mu      sync.Mutex
	subs    map[int]func(UnauthorizedEvent)
	nextSub int
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// New creates a Gateway for baseURL. tokens supplies the bearer token and is
// cleared on 401.
func New(baseURL string, tokens credentials.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		tokens:     tokens,
		logger:     zap.NewNop(),
		subs:       make(map[int]func(UnauthorizedEvent)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OnUnauthorized registers fn to run after every 401 response.
// The returned function removes the subscription.
func (g *Gateway) OnUnauthorized(fn func(UnauthorizedEvent)) (unsubscribe func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subs, id)
	}
}

// Send performs one request. body, if non-nil, is sent as JSON. out, if
// non-nil, receives the decoded JSON response.
//
// Non-2xx responses are returned as *googleapi.Error with Message set to the
// server-supplied message when there is one.
func (g *Gateway) Send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	tok, err := g.tokens.Token()
	switch {
	case err == nil:
		tok.SetAuthHeader(req)
	case !errors.Is(err, credentials.ErrNoToken):
		g.logger.Warn("ignoring unreadable token", zap.Error(err))
	}

	log := g.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer googleapi.CloseBody(resp)

	log.Debug("response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := googleapi.CheckResponse(resp); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Message == "" {
			gerr.Message = serverMessage([]byte(gerr.Body))
		}
		if resp.StatusCode == http.StatusUnauthorized {
			g.handleUnauthorized(method, path)
		}
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleUnauthorized drops the stored token and notifies subscribers.
func (g *Gateway) handleUnauthorized(method, path string) {
	if err := g.tokens.Clear(); err != nil {
		g.logger.Warn("failed to clear token after 401", zap.Error(err))
	}

	g.mu.Lock()
	subs := make([]func(UnauthorizedEvent), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	ev := UnauthorizedEvent{Method: method, Path: path}
	for _, fn := range subs {
		fn(ev)
	}
}
