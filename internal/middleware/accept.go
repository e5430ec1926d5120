package middleware

import (
	"net/http"
	"strings"

	"github.com/greenfieldhq/tilsio-api/internal/jsonapi"
)

// acceptedTypes are the media types a client may request from the API.
var acceptedTypes = []string{
	"application/json",
	"application/vnd.api+json",
}

// NewAcceptsJSON returns a middleware enforcing content negotiation for the
// API subtree: the Accept header must be absent, a wildcard, or compatible
// with JSON / JSON:API. Anything else is answered with 406 and the generic
// error envelope before the handler runs.
func NewAcceptsJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !accepts(r.Header.Get("Accept")) {
				jsonapi.WriteError(w, http.StatusNotAcceptable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accepts reports whether an Accept header value permits a JSON response.
// Parameters (q-values, charset) are ignored; only the media ranges matter.
func accepts(header string) bool {
	if strings.TrimSpace(header) == "" {
		return true
	}
	for _, part := range strings.Split(header, ",") {
		mediaRange := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch {
		case mediaRange == "*/*", mediaRange == "application/*":
			return true
		default:
			for _, accepted := range acceptedTypes {
				if strings.EqualFold(mediaRange, accepted) {
					return true
				}
			}
		}
	}
	return false
}
