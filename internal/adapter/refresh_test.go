// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/store"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Refresh and retry ───────────────────────────────────────────────────────

func TestRefresh_RetriesOnceWithNewToken(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, sessions := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	require.NoError(t, getHome(context.Background(), c))

	assert.EqualValues(t, 1, stub.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer access-1", "Bearer access-2"}, stub.tokensSeen())

	session, err := sessions.LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccessToken: "access-2", RefreshToken: "refresh-2"}, session)
}

func TestRefresh_OldTokenNeverReused(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	for range 5 {
		require.NoError(t, getHome(context.Background(), c))
	}

	seen := stub.tokensSeen()
	require.NotEmpty(t, seen)
	assert.Equal(t, "Bearer access-1", seen[0])
	for _, token := range seen[1:] {
		assert.Equal(t, "Bearer access-2", token)
	}
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
}

func TestRefresh_RetryRejectedAgain(t *testing.T) {
	stub := newAPIStub()
	// the refreshed token is not accepted either
	stub.validAccess = "never"
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	err := getHome(context.Background(), c)
	require.Error(t, err)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
	assert.EqualValues(t, 2, stub.homeCalls.Load())
}

func TestRefresh_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	const n = 10

	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshGate = make(chan struct{})
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = getHome(context.Background(), c)
		}()
	}

	require.Eventually(t, func() bool { return stub.unauthorized.Load() == n }, 3*time.Second, 5*time.Millisecond)
	close(stub.refreshGate)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
	assert.EqualValues(t, 2*n, stub.homeCalls.Load())

	seen := stub.tokensSeen()
	var retried int
	for _, token := range seen {
		if token == "Bearer access-2" {
			retried++
		}
	}
	assert.Equal(t, n, retried)
}

func TestRefresh_TwoCallsOneRefresh(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshGate = make(chan struct{})

	mux := http.NewServeMux()
	mux.Handle("/", stub.handler(t))
	mux.HandleFunc("GET /patients/medications/", func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		valid := "Bearer " + stub.validAccess
		stub.mu.Unlock()
		if r.Header.Get("Authorization") != valid {
			stub.unauthorized.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() {
		defer wg.Done()
		errA = getHome(context.Background(), c)
	}()
	go func() {
		defer wg.Done()
		_, errB = c.Request(context.Background(), http.MethodGet, medicationsPath, nil)
	}()

	require.Eventually(t, func() bool { return stub.unauthorized.Load() == 2 }, 3*time.Second, 5*time.Millisecond)
	close(stub.refreshGate)
	wg.Wait()

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
}

func TestRefresh_NoRefreshCallNeverRefreshes(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	_, err := c.Request(context.Background(), http.MethodGet, homePath, nil, WithoutRefresh())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, stub.refreshCalls.Load())

	c.refresher.mu.Lock()
	assert.Empty(t, c.refresher.pending)
	assert.False(t, c.refresher.inFlight)
	c.refresher.mu.Unlock()
}

func TestRefresh_NoRefreshTokenFailsWithOriginalError(t *testing.T) {
	stub := newAPIStub()
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	err := getHome(context.Background(), c)
	require.Error(t, err)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "token expired", authErr.Message)
	assert.Zero(t, stub.refreshCalls.Load())
	assert.EqualValues(t, 1, stub.homeCalls.Load())
}

// ── Refresh failures ────────────────────────────────────────────────────────

func TestRefresh_RejectedClearsSessionForAllWaiters(t *testing.T) {
	const n = 5

	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshStatus = http.StatusUnauthorized
	stub.refreshBody = `{"detail":"refresh token revoked"}`
	stub.refreshGate = make(chan struct{})
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, sessions := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = getHome(context.Background(), c)
		}()
	}

	require.Eventually(t, func() bool { return stub.unauthorized.Load() == n }, 3*time.Second, 5*time.Millisecond)
	close(stub.refreshGate)
	wg.Wait()

	for i, err := range errs {
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr, "request %d", i)
	}
	assert.EqualValues(t, 1, stub.refreshCalls.Load())

	_, err := sessions.LoadTokens(context.Background())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// the next request goes out without a token and fails fast
	err = getHome(context.Background(), c)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
	assert.EqualValues(t, n+1, stub.homeCalls.Load())
}

func TestRefresh_RejectedFailsCallerAndOriginalRequest(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshStatus = http.StatusUnauthorized
	stub.refreshBody = `{"detail":"refresh token revoked"}`
	stub.refreshGate = make(chan struct{})
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	var wg sync.WaitGroup
	var requestErr, refreshErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		requestErr = getHome(context.Background(), c)
	}()

	// the original request has started the refresh; join it explicitly
	<-stub.refreshEntered
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, refreshErr = c.Refresh(context.Background())
	}()

	require.Eventually(t, func() bool {
		c.refresher.mu.Lock()
		defer c.refresher.mu.Unlock()
		return len(c.refresher.pending) == 2
	}, 3*time.Second, 5*time.Millisecond)
	close(stub.refreshGate)
	wg.Wait()

	var authErr *AuthorizationError
	require.ErrorAs(t, requestErr, &authErr)
	require.ErrorAs(t, refreshErr, &authErr)
	assert.Equal(t, "refresh token revoked", authErr.Message)
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
}

func TestRefresh_ServerErrorKeepsSession(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshStatus = http.StatusInternalServerError
	stub.refreshBody = `{"detail":"database down"}`
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, sessions := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	err := getHome(context.Background(), c)
	require.Error(t, err)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, err, ErrInternalServerError)

	session, loadErr := sessions.LoadTokens(context.Background())
	require.NoError(t, loadErr)
	assert.Equal(t, "refresh-1", session.RefreshToken)
}

func TestRefresh_BadRequestClearsSession(t *testing.T) {
	stub := newAPIStub()
	stub.refreshStatus = http.StatusBadRequest
	stub.refreshBody = `{"detail":"refresh token malformed"}`
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, sessions := newTestClient(t, srv.URL)
	seedSession(t, c, "access-0", "refresh-1")

	_, err := c.Refresh(context.Background())
	require.Error(t, err)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, loadErr := sessions.LoadTokens(context.Background())
	assert.ErrorIs(t, loadErr, store.ErrSessionNotFound)
}

func TestRefresh_MalformedResponseClearsSession(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare string", body: `"access-2"`},
		{name: "missing access token", body: `{"refreshToken":"refresh-2"}`},
		{name: "not json", body: `ok`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newAPIStub()
			stub.refreshBody = tt.body
			srv := httptest.NewServer(stub.handler(t))
			defer srv.Close()

			c, sessions := newTestClient(t, srv.URL)
			seedSession(t, c, "access-0", "refresh-1")

			_, err := c.Refresh(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.ErrorIs(t, err, ErrMalformedRefreshResponse)

			_, loadErr := sessions.LoadTokens(context.Background())
			assert.ErrorIs(t, loadErr, store.ErrSessionNotFound)
		})
	}
}

func TestRefresh_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	stub := newAPIStub()
	stub.refreshBody = `{"accessToken":"access-2"}`
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, sessions := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	result, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", result.AccessToken)
	assert.Equal(t, "refresh-1", result.RefreshToken)

	session, err := sessions.LoadTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccessToken: "access-2", RefreshToken: "refresh-1"}, session)
}

func TestRefresh_NoSession(t *testing.T) {
	stub := newAPIStub()
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrNoRefreshToken)
	assert.Zero(t, stub.refreshCalls.Load())
}

func TestRefresh_NetworkFailureKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, sessions := newTestClient(t, addr)
	seedSession(t, c, "access-1", "refresh-1")

	_, err := c.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrNetwork)

	session, loadErr := sessions.LoadTokens(context.Background())
	require.NoError(t, loadErr)
	assert.Equal(t, "refresh-1", session.RefreshToken)
}

// ── Waiter cancellation ─────────────────────────────────────────────────────

func TestRefresh_CancelledWaiterDoesNotAbortRefresh(t *testing.T) {
	stub := newAPIStub()
	stub.validAccess = "access-2"
	stub.refreshGate = make(chan struct{})
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	seedSession(t, c, "access-1", "refresh-1")

	// A starts the refresh and then gives up
	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	errA := make(chan error, 1)
	go func() { errA <- getHome(ctxA, c) }()
	<-stub.refreshEntered

	errB := make(chan error, 1)
	go func() { errB <- getHome(context.Background(), c) }()
	require.Eventually(t, func() bool { return stub.unauthorized.Load() == 2 }, 3*time.Second, 5*time.Millisecond)

	cancelA()
	err := <-errA
	require.Error(t, err)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, errors.Is(err, context.Canceled))

	close(stub.refreshGate)
	assert.NoError(t, <-errB)
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
}

// swapTokenOnFirstHome stores access as the current token while the first
// home request is in flight, the way a concurrent sign-in would.
func swapTokenOnFirstHome(t *testing.T, stub *apiStub, access string) (*httptest.Server, **Client) {
	t.Helper()

	var c *Client
	var swapped atomic.Bool
	inner := stub.handler(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == homePath && swapped.CompareAndSwap(false, true) {
			assert.NoError(t, c.SetSession(r.Context(), models.Session{AccessToken: access, RefreshToken: "refresh-1"}))
		}
		inner.ServeHTTP(w, r)
	}))
	return srv, &c
}

func TestRefresh_ChangedTokenStillValidRetriesWithoutRefresh(t *testing.T) {
	fresh := tokenExpiringAt(t, time.Now().Add(time.Hour))

	stub := newAPIStub()
	stub.validAccess = fresh
	srv, client := swapTokenOnFirstHome(t, stub, fresh)
	defer srv.Close()

	*client, _ = newTestClient(t, srv.URL)
	seedSession(t, *client, "access-1", "refresh-1")

	require.NoError(t, getHome(context.Background(), *client))
	assert.Zero(t, stub.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer access-1", "Bearer " + fresh}, stub.tokensSeen())
}

func TestRefresh_ChangedTokenAlreadyExpiredRefreshes(t *testing.T) {
	expired := tokenExpiringAt(t, time.Now().Add(-time.Hour))

	stub := newAPIStub()
	stub.validAccess = "access-2"
	srv, client := swapTokenOnFirstHome(t, stub, expired)
	defer srv.Close()

	*client, _ = newTestClient(t, srv.URL)
	seedSession(t, *client, "access-1", "refresh-1")

	require.NoError(t, getHome(context.Background(), *client))
	assert.EqualValues(t, 1, stub.refreshCalls.Load())
	assert.Equal(t, []string{"Bearer access-1", "Bearer access-2"}, stub.tokensSeen())
}

// ── Coordinator ─────────────────────────────────────────────────────────────

func TestRefreshCoordinator_FIFOAndSharedOutcome(t *testing.T) {
	release := make(chan struct{})
	var calls int
	coordinator := newRefreshCoordinator(func(ctx context.Context) (models.RefreshResult, error) {
		calls++
		<-release
		return models.RefreshResult{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil
	}, time.Second)

	const n = 4
	results := make(chan models.RefreshResult, n)
	for range n {
		go func() {
			result, err := coordinator.join(context.Background(), 0)
			assert.NoError(t, err)
			results <- result
		}()
	}

	require.Eventually(t, func() bool {
		coordinator.mu.Lock()
		defer coordinator.mu.Unlock()
		return len(coordinator.pending) == n
	}, time.Second, time.Millisecond)
	close(release)

	for range n {
		assert.Equal(t, "access-2", (<-results).AccessToken)
	}
	assert.Equal(t, 1, calls)
	assert.EqualValues(t, 1, coordinator.generation())

	// a caller that saw generation 0 after the refresh gets the result at once
	result, err := coordinator.join(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "access-2", result.AccessToken)
	assert.Equal(t, 1, calls)
}

func TestRefreshCoordinator_FailureKeepsGeneration(t *testing.T) {
	boom := errors.New("boom")
	coordinator := newRefreshCoordinator(func(ctx context.Context) (models.RefreshResult, error) {
		return models.RefreshResult{}, boom
	}, time.Second)

	_, err := coordinator.join(context.Background(), 0)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, coordinator.generation())
}

func TestRefreshCoordinator_TimeoutBoundsRefresh(t *testing.T) {
	coordinator := newRefreshCoordinator(func(ctx context.Context) (models.RefreshResult, error) {
		<-ctx.Done()
		return models.RefreshResult{}, ctx.Err()
	}, 20*time.Millisecond)

	_, err := coordinator.join(context.Background(), 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
