package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
)

const defaultTokenCheckInterval = 30 * time.Second

type clientTokenRefreshJob struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientTokenRefreshJob creates a clientTokenRefreshJob that renews the
// session through serverAdapter. The job is idle until Start is called.
func NewClientTokenRefreshJob(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTokenRefreshJob {
	return &clientTokenRefreshJob{adapter: serverAdapter, logger: logger, now: time.Now}
}

// Start implements ClientTokenRefreshJob. If interval is zero or negative it
// defaults to 30 seconds. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *clientTokenRefreshJob) Start(ctx context.Context, interval, leeway time.Duration) {
	if interval <= 0 {
		interval = defaultTokenCheckInterval
	}
	leeway = max(leeway, 0)

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, leeway)
			}
		}
	}()
}

// Stop implements ClientTokenRefreshJob. Safe to call when the job is not
// running.
func (j *clientTokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// check refreshes the session when the stored access token expires within
// leeway. It reports whether a refresh was attempted. Tokens without a
// readable expiry are left to the refresh-on-401 path.
func (j *clientTokenRefreshJob) check(ctx context.Context, leeway time.Duration) bool {
	session, err := j.adapter.Session(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "clientTokenRefreshJob.check").Msg("failed to load session")
		return false
	}
	if session.RefreshToken == "" || session.AccessToken == "" {
		return false
	}

	exp, err := utils.TokenExpiry(session.AccessToken)
	if err != nil || exp.Sub(j.now()) > leeway {
		return false
	}

	if _, err = j.adapter.Refresh(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "clientTokenRefreshJob.check").Msg("proactive token refresh failed")
		return true
	}

	j.logger.Debug().Str("func", "clientTokenRefreshJob.check").Time("expired_at", exp).Msg("access token renewed ahead of expiry")
	return true
}
