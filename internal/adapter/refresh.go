// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-recovery-companion/models"
)

const refreshPath = "/auth/refresh"

type refreshOutcome struct {
	result models.RefreshResult
	err    error
}

// refreshCoordinator runs at most one token refresh at a time. Callers that
// arrive while a refresh is in flight wait for its outcome; waiters are
// released in arrival order.
type refreshCoordinator struct {
	refresh func(ctx context.Context) (models.RefreshResult, error)
	timeout time.Duration

	mu       sync.Mutex
	inFlight bool
	pending  []chan refreshOutcome
	// gen counts successful refreshes.
	gen  uint64
	last models.RefreshResult
}

func newRefreshCoordinator(refresh func(ctx context.Context) (models.RefreshResult, error), timeout time.Duration) *refreshCoordinator {
	return &refreshCoordinator{refresh: refresh, timeout: timeout}
}

func (r *refreshCoordinator) generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.gen
}

// join waits for a refresh newer than seen. If one already completed, its
// result is returned at once; otherwise the caller joins the in-flight
// refresh or starts one.
//
// The refresh itself ignores ctx cancellation so that a caller giving up
// never fails the refresh for the other waiters. It is bounded by the
// coordinator timeout instead.
func (r *refreshCoordinator) join(ctx context.Context, seen uint64) (models.RefreshResult, error) {
	r.mu.Lock()
	if r.gen != seen {
		result := r.last
		r.mu.Unlock()
		return result, nil
	}

	wait := make(chan refreshOutcome, 1)
	r.pending = append(r.pending, wait)
	start := !r.inFlight
	r.inFlight = true
	r.mu.Unlock()

	if start {
		go r.run(context.WithoutCancel(ctx))
	}

	select {
	case out := <-wait:
		return out.result, out.err
	case <-ctx.Done():
		return models.RefreshResult{}, &NetworkError{Op: "POST " + refreshPath, Err: ctx.Err()}
	}
}

func (r *refreshCoordinator) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.refresh(ctx)

	r.mu.Lock()
	waiters := r.pending
	r.pending = nil
	r.inFlight = false
	if err == nil {
		r.gen++
		r.last = result
	}
	r.mu.Unlock()

	// buffered: a waiter that gave up never blocks the others
	for _, wait := range waiters {
		wait <- refreshOutcome{result: result, err: err}
	}
}

// refreshOnUnauthorized retries a call rejected with 401/403 once, after
// the token pair has been renewed.
func (c *Client) refreshOnUnauthorized(next Handler) Handler {
	return func(ctx context.Context, call Call) (*Response, error) {
		resp, err := next(ctx, call)

		var authErr *AuthorizationError
		if err == nil || resp == nil || !call.canRefresh() || !errors.As(err, &authErr) {
			return resp, err
		}

		session, sessionErr := c.Session(ctx)
		if sessionErr != nil {
			return resp, errors.Join(err, sessionErr)
		}
		if session.RefreshToken == "" {
			return resp, err
		}

		// the stored token changed since this request was sent and is still
		// usable. Otherwise join: it returns at once when a refresh completed
		// after the request was sent, and refreshes when none did.
		if session.AccessToken != "" && session.AccessToken != resp.Token && c.IsValidToken(session.AccessToken) {
			return next(ctx, call.retry())
		}

		if _, err = c.refresher.join(ctx, resp.generation); err != nil {
			return nil, err
		}

		return next(ctx, call.retry())
	}
}

// coordinatedRefresh runs refreshSession for the coordinator. A failure is
// handed to every waiter, so it is marked to keep notifyErrors from
// reporting its entries once per waiter.
func (c *Client) coordinatedRefresh(ctx context.Context) (models.RefreshResult, error) {
	result, err := c.refreshSession(ctx)

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		authErr.fromRefresh = true
	}
	return result, err
}

// refreshSession exchanges the stored refresh token for a new pair and
// stores it.
//
// Every failure is reported as an [AuthorizationError]. When the server
// rejected the refresh token or answered without an access token, the
// stored session is cleared. Network failures and 5xx answers keep it, so
// a later attempt may still succeed; their cause stays reachable through
// errors.Is.
func (c *Client) refreshSession(ctx context.Context) (models.RefreshResult, error) {
	log := c.logger

	session, err := c.Session(ctx)
	if err != nil {
		return models.RefreshResult{}, &AuthorizationError{Message: "token refresh failed", Err: err}
	}
	if session.RefreshToken == "" {
		return models.RefreshResult{}, &AuthorizationError{Message: "session expired", Err: ErrNoRefreshToken}
	}

	log.Info().Str("func", "Client.refreshSession").Msg("refreshing access token")

	resp, err := c.transport(ctx, Call{
		Method:    http.MethodPost,
		Path:      refreshPath,
		Body:      models.RefreshRequest{RefreshToken: session.RefreshToken},
		Header:    http.Header{authorizationHeader: {"Bearer " + session.RefreshToken}},
		NoRefresh: true,
		Timeout:   c.refresher.timeout,
	})
	if err != nil {
		var authErr *AuthorizationError
		var srvErr *ServerError
		switch {
		case errors.As(err, &authErr):
			c.dropSession(ctx)
			log.Err(err).Str("func", "Client.refreshSession").Msg("refresh token rejected")
			return models.RefreshResult{}, authErr
		case errors.As(err, &srvErr) && srvErr.StatusCode < http.StatusInternalServerError:
			c.dropSession(ctx)
			log.Err(err).Str("func", "Client.refreshSession").Msg("refresh token rejected")
			return models.RefreshResult{}, &AuthorizationError{
				StatusCode: srvErr.StatusCode,
				Message:    srvErr.Message,
				Errors:     srvErr.Errors,
				Err:        err,
			}
		default:
			log.Err(err).Str("func", "Client.refreshSession").Msg("token refresh failed")
			return models.RefreshResult{}, &AuthorizationError{Message: "token refresh failed", Err: err}
		}
	}

	var result models.RefreshResult
	if decodeErr := resp.Decode(&result); decodeErr != nil || result.AccessToken == "" {
		c.dropSession(ctx)
		log.Error().Str("func", "Client.refreshSession").Int("status", resp.StatusCode).Msg("malformed refresh response")
		return models.RefreshResult{}, &AuthorizationError{
			StatusCode: resp.StatusCode,
			Message:    "token refresh failed",
			Err:        ErrMalformedRefreshResponse,
		}
	}
	// the server may keep the refresh token unchanged
	if result.RefreshToken == "" {
		result.RefreshToken = session.RefreshToken
	}

	if err = c.SetSession(ctx, result.Session()); err != nil {
		log.Err(err).Str("func", "Client.refreshSession").Msg("failed to store refreshed session")
		return models.RefreshResult{}, &AuthorizationError{Message: "token refresh failed", Err: err}
	}

	log.Info().Str("func", "Client.refreshSession").Msg("access token refreshed")
	return result, nil
}

func (c *Client) dropSession(ctx context.Context) {
	if err := c.SetSession(ctx, models.Session{}); err != nil {
		c.logger.Err(err).Str("func", "Client.dropSession").Msg("failed to clear session")
	}
}
