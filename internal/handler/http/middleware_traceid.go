package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the trace id of a request. An inbound value is
// reused so a caller's id survives into the accounts logs; the response
// always carries one.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace id (the caller's, or a fresh
// uuid) and attaches a child logger tagged with it to the request context.
// The logging middleware and every handler below log through that context
// logger, so all lines of one request share the same trace_id field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
