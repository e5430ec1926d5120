package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenfieldhq/tilsio-api/internal/middleware"
)

func doAccept(t *testing.T, accept string) *httptest.ResponseRecorder {
	t.Helper()
	h := middleware.NewAcceptsJSON()(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tils", nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAcceptsJSON_AllowedTypes(t *testing.T) {
	for _, accept := range []string{
		"",
		"*/*",
		"application/*",
		"application/json",
		"application/vnd.api+json",
		"application/json; charset=utf-8",
		"text/html, application/json;q=0.9",
	} {
		rec := doAccept(t, accept)
		assert.Equal(t, http.StatusOK, rec.Code, "Accept: %q should pass", accept)
	}
}

func TestAcceptsJSON_RejectedTypes(t *testing.T) {
	for _, accept := range []string{
		"text/html",
		"application/xml",
		"image/png, text/plain",
	} {
		rec := doAccept(t, accept)
		assert.Equal(t, http.StatusNotAcceptable, rec.Code, "Accept: %q should be rejected", accept)
		assert.JSONEq(t, `{"errors":{"detail":"Server internal error"}}`, rec.Body.String())
	}
}
