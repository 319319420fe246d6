package fakeapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"
	// maxTraceIDLength bounds a client-supplied trace ID; the API client
	// sends UUIDs.
	maxTraceIDLength = 64
)

// withTraceID tags the request with the caller's X-Trace-ID, or a fresh one
// when the header is missing or unusable, and attaches a request-scoped
// logger carrying it. The ID is echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("remote_addr", r.RemoteAddr)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func requestTraceID(r *http.Request) string {
	traceID := r.Header.Get(traceIDHeader)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return uuid.NewString()
	}
	for _, c := range traceID {
		// printable ASCII only, the value ends up in logs and headers
		if c < 0x21 || c > 0x7e {
			return uuid.NewString()
		}
	}
	return traceID
}
