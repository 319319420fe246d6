package fakeapi

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/rs/zerolog"
)

type requestInfoCtxKey struct{}

// requestInfo is filled by inner middlewares and read by withLogging once
// the request is served.
type requestInfo struct {
	userID int64
}

// noteUserID records the authenticated user for the access log line.
func noteUserID(ctx context.Context, userID int64) {
	if info, ok := ctx.Value(requestInfoCtxKey{}).(*requestInfo); ok {
		info.userID = userID
	}
}

// withLogging writes one access log line per request. Server errors are
// logged at error level and client errors at warn level, so refresh storms
// and rejected tokens stand out.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		info := &requestInfo{}
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), requestInfoCtxKey{}, info)))

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		if info.userID != 0 {
			event = event.Int64("user_id", info.userID)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
