package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the background workers of the client application:
// currently the proactive token refresh.
func NewClientWorkers(cfg config.ClientWorkers, services *service.ClientServices) *Workers {
	return &Workers{workers: []Worker{
		&tokenRefreshWorker{
			job:      services.TokenRefreshJob,
			interval: cfg.TokenCheckInterval,
			leeway:   cfg.TokenRefreshLeeway,
		},
	}}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// tokenRefreshWorker binds the configured schedule to a token refresh job.
type tokenRefreshWorker struct {
	job      service.ClientTokenRefreshJob
	interval time.Duration
	leeway   time.Duration
}

func (w *tokenRefreshWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.leeway)
}

func (w *tokenRefreshWorker) Stop() {
	w.job.Stop()
}
