package http

import (
	"net/http"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/utils"
)

// apiKeyHeader carries the shared secret for the administrative surface.
const apiKeyHeader = "X-Api-Key"

// apiKey guards the administrative route group with an opaque shared secret.
// This gate is independent of the token/basic scheme used by account routes.
//
// The presented key is compared against the configured one in constant time;
// an absent or wrong key yields the same generic 401 as the auth gate, and
// the wrapped handler never runs.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		presented := r.Header.Get(apiKeyHeader)
		if presented == "" || !utils.SecureCompare(presented, h.apiKey) {
			log.Debug().Msg("rejecting request with absent or wrong api key")
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
