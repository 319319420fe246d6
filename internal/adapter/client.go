// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/store"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/MKhiriev/go-recovery-companion/models"
	"golang.org/x/time/rate"
)

const (
	userAgent = "recovery-companion"

	defaultRequestTimeout = 15 * time.Second
	defaultRefreshTimeout = 10 * time.Second
)

// Client is the authenticated API client. It attaches the stored access
// token to every request, and when the server rejects it, renews the token
// pair once for all concurrently failing requests and retries each of them
// once.
//
// A Client is safe for concurrent use. Construct one per application with
// [NewClient] and share it.
type Client struct {
	http     *utils.HTTPClient
	sessions store.SessionRepository
	notifier Notifier
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
	now      func() time.Time

	requestTimeout time.Duration
	refresher      *refreshCoordinator

	// sessionMu serialises session writes.
	sessionMu sync.Mutex

	pipelineMu  sync.RWMutex
	transforms  []RequestTransform
	middlewares []Middleware
}

// ClientOption customises a Client built by [NewClient].
type ClientOption func(*Client)

// WithNotifier routes server-sent warnings and error entries to n instead of
// the log.
func WithNotifier(n Notifier) ClientOption {
	return func(c *Client) { c.notifier = n }
}

// WithClock replaces the time source used by token validation.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

// NewClient constructs a Client for the API at cfg.HTTPAddress that keeps its
// session in sessions.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewClient(cfg config.ClientAdapter, sessions store.SessionRepository, log *logger.Logger, opts ...ClientOption) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	refreshTimeout := cfg.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = defaultRefreshTimeout
	}

	c := &Client{
		http:           utils.NewHTTPClient(baseURL, userAgent),
		sessions:       sessions,
		notifier:       &logNotifier{logger: log},
		ids:            utils.NewUUIDGenerator(),
		logger:         log,
		now:            time.Now,
		requestTimeout: requestTimeout,
	}
	c.refresher = newRefreshCoordinator(c.coordinatedRefresh, refreshTimeout)

	if cfg.RateLimit > 0 {
		burst := max(cfg.RateBurst, 1)
		c.transforms = append(c.transforms, withRateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
	}
	c.transforms = append(c.transforms, c.withRequestID, c.withBearer)

	for _, opt := range opts {
		opt(c)
	}

	log.Info().Str("base_url", baseURL).Msg("api client created")
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request builds a call from its arguments and runs it through the pipeline.
// body, when non-nil, is sent as JSON.
func (c *Client) Request(ctx context.Context, method, path string, body any, opts ...CallOption) (*Response, error) {
	call := Call{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&call)
	}

	return c.Do(ctx, call)
}

// Do runs a prepared call through the pipeline.
func (c *Client) Do(ctx context.Context, call Call) (*Response, error) {
	return c.handler()(ctx, call)
}

// Refresh renews the token pair with the stored refresh token. Overlapping
// callers share a single refresh request and receive the same outcome.
func (c *Client) Refresh(ctx context.Context) (models.RefreshResult, error) {
	return c.refresher.join(ctx, c.refresher.generation())
}

// Session returns the stored token pair. An empty store yields an empty
// session and no error.
func (c *Client) Session(ctx context.Context) (models.Session, error) {
	session, err := c.sessions.LoadTokens(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	return session, nil
}

// SetSession stores session when both tokens are present and clears the
// stored pair otherwise.
func (c *Client) SetSession(ctx context.Context, session models.Session) error {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	if session.IsComplete() {
		return c.sessions.SaveTokens(ctx, session)
	}

	return c.sessions.ClearTokens(ctx)
}

// IsValidToken reports whether token carries an expiry claim that lies in
// the future of the client's clock.
func (c *Client) IsValidToken(token string) bool {
	return isValidTokenAt(token, c.now())
}

// Use wraps the pipeline in additional middlewares. The first middleware
// given is the outermost.
func (c *Client) Use(mw ...Middleware) {
	c.pipelineMu.Lock()
	defer c.pipelineMu.Unlock()

	c.middlewares = append(c.middlewares, mw...)
}

// UseRequest appends transforms applied to every outgoing request after
// the built-in ones.
func (c *Client) UseRequest(t ...RequestTransform) {
	c.pipelineMu.Lock()
	defer c.pipelineMu.Unlock()

	c.transforms = append(c.transforms, t...)
}

// handler assembles the pipeline, outermost first: custom middlewares,
// error notifications, warning notifications, refresh-and-retry, transport.
func (c *Client) handler() Handler {
	c.pipelineMu.RLock()
	custom := c.middlewares
	c.pipelineMu.RUnlock()

	chain := make([]Middleware, 0, len(custom)+3)
	chain = append(chain, custom...)
	chain = append(chain, c.notifyErrors, c.notifyWarnings, c.refreshOnUnauthorized)

	h := Handler(c.transport)
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	return h
}

func (c *Client) requestTransforms() []RequestTransform {
	c.pipelineMu.RLock()
	defer c.pipelineMu.RUnlock()

	return c.transforms
}

// transport sends call over HTTP and maps the status code. HTTP-level
// failures return both the response and the mapped error.
func (c *Client) transport(ctx context.Context, call Call) (*Response, error) {
	timeout := call.Timeout
	if timeout <= 0 {
		timeout = c.requestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.http.R().SetContext(ctx)
	for key, values := range call.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if len(call.Query) > 0 {
		req.SetQueryParamsFromValues(call.Query)
	}
	if call.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(call.Body)
	}

	// read before the token so a refresh landing in between is detected
	generation := c.refresher.generation()
	for _, transform := range c.requestTransforms() {
		if err := transform(ctx, call, req); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	raw, err := req.Execute(call.Method, call.Path)
	if err != nil {
		c.logger.Err(err).
			Str("func", "Client.transport").
			Str("call", call.String()).
			Int("attempt", call.Attempt).
			Msg("request failed")
		return nil, &NetworkError{Op: call.String(), Err: err}
	}

	token, _ := utils.ParseBearerToken(req.Header.Get(authorizationHeader))
	resp := &Response{
		StatusCode: raw.StatusCode(),
		Header:     raw.Header(),
		Body:       raw.Body(),
		Token:      token,
		generation: generation,
	}

	c.logger.Debug().
		Str("func", "Client.transport").
		Str("call", call.String()).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Int("attempt", call.Attempt).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return resp, mapHTTPError(resp)
}
