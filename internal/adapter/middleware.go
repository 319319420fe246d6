package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Trace-ID"
)

// Handler executes a call and returns its response. For HTTP-level failures
// both the response and the error are returned.
type Handler func(ctx context.Context, call Call) (*Response, error)

// Middleware decorates a Handler. A middleware may inspect the result and
// re-invoke next with a derived call.
type Middleware func(next Handler) Handler

// RequestTransform adjusts the outgoing request before it is sent. A
// returned error aborts the call.
type RequestTransform func(ctx context.Context, call Call, req *resty.Request) error

// withRateLimit delays requests beyond the limiter's budget. A wait aborted
// by the call's context surfaces as a [NetworkError].
func withRateLimit(limiter *rate.Limiter) RequestTransform {
	return func(ctx context.Context, call Call, _ *resty.Request) error {
		if err := limiter.Wait(ctx); err != nil {
			return &NetworkError{Op: call.String(), Err: err}
		}
		return nil
	}
}

func (c *Client) withRequestID(_ context.Context, _ Call, req *resty.Request) error {
	if req.Header.Get(requestIDHeader) == "" {
		req.SetHeader(requestIDHeader, c.ids.Generate())
	}
	return nil
}

// withBearer attaches the stored access token. An Authorization header set
// on the call itself wins.
func (c *Client) withBearer(ctx context.Context, _ Call, req *resty.Request) error {
	if req.Header.Get(authorizationHeader) != "" {
		return nil
	}

	session, err := c.Session(ctx)
	if err != nil {
		return fmt.Errorf("attach bearer token: %w", err)
	}
	if session.AccessToken != "" {
		req.SetHeader(authorizationHeader, "Bearer "+session.AccessToken)
	}

	return nil
}

// notifyErrors reports every entry of a failed response's "errors" array.
// Failed token refreshes are not reported.
func (c *Client) notifyErrors(next Handler) Handler {
	return func(ctx context.Context, call Call) (*Response, error) {
		resp, err := next(ctx, call)

		var authErr *AuthorizationError
		if errors.As(err, &authErr) && authErr.fromRefresh {
			return resp, err
		}
		for _, message := range errorMessages(err) {
			c.notifier.Error(ctx, message)
		}
		return resp, err
	}
}

// notifyWarnings reports every entry of a successful response's "warnings"
// array.
func (c *Client) notifyWarnings(next Handler) Handler {
	return func(ctx context.Context, call Call) (*Response, error) {
		resp, err := next(ctx, call)
		if err == nil && resp != nil {
			for _, warning := range parseMessages(resp.Body).Warnings {
				c.notifier.Warning(ctx, warning)
			}
		}
		return resp, err
	}
}
