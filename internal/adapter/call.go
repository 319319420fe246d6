package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// maxAttempt caps how many times a call is re-issued after a refresh.
const maxAttempt = 1

// Call describes one API request. A Call is a value: middlewares derive new
// calls instead of mutating the one they received.
type Call struct {
	Method string
	Path   string
	Body   any
	Query  url.Values
	Header http.Header

	// NoRefresh marks calls whose authorization failure must surface
	// directly, without a token refresh (login, the refresh call itself).
	NoRefresh bool

	// Timeout overrides the client's default per-call timeout when positive.
	Timeout time.Duration

	// Attempt is zero for the original request and one for its retry.
	Attempt int
}

// retry returns a copy of c marked as the next attempt.
func (c Call) retry() Call {
	c.Attempt++
	return c
}

// canRefresh reports whether an authorization failure of c may trigger a
// token refresh.
func (c Call) canRefresh() bool {
	return !c.NoRefresh && c.Attempt < maxAttempt
}

func (c Call) String() string {
	return c.Method + " " + c.Path
}

// CallOption customises a Call built by [Client.Request].
type CallOption func(*Call)

// WithoutRefresh disables the refresh-and-retry behaviour for the call.
func WithoutRefresh() CallOption {
	return func(c *Call) { c.NoRefresh = true }
}

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) CallOption {
	return func(c *Call) { c.Timeout = d }
}

// WithQuery adds query parameters.
func WithQuery(v url.Values) CallOption {
	return func(c *Call) {
		if c.Query == nil {
			c.Query = url.Values{}
		}
		for key, values := range v {
			for _, value := range values {
				c.Query.Add(key, value)
			}
		}
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) CallOption {
	return func(c *Call) {
		if c.Header == nil {
			c.Header = http.Header{}
		}
		c.Header.Add(key, value)
	}
}

// Response is a successful or failed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Token is the access token the request was sent with, empty when the
	// request carried none.
	Token string

	// generation is the refresh generation observed when the request was
	// sent.
	generation uint64
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
