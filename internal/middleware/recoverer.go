package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/greenfieldhq/tilsio-api/internal/jsonapi"
)

// NewRecoverer returns a middleware that converts a downstream panic into a
// 500 response carrying the generic error envelope. The panic value and
// stack are logged; nothing about them reaches the client.
//
// This replaces chi's Recoverer, whose 500 has an empty body — every error
// this API emits must wear the envelope.
func NewRecoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						// The server uses this sentinel to abort the
						// connection; suppressing it would break that.
						panic(rec)
					}
					log.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					jsonapi.WriteError(w, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
