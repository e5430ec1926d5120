// Package handler implements the HTTP layer of the tilsio API.
// Handlers translate between HTTP and the service layer and render every
// body — success or failure — through the jsonapi envelope builder.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/greenfieldhq/tilsio-api/internal/domain"
	"github.com/greenfieldhq/tilsio-api/internal/jsonapi"
	"github.com/greenfieldhq/tilsio-api/internal/middleware"
	"github.com/greenfieldhq/tilsio-api/spec"
)

// TilServicer defines the business operations the til handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TilServicer interface {
	List(ctx context.Context) ([]domain.Til, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Til, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	tils TilServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tils TilServicer) *Server {
	return &Server{tils: tils}
}

// Routes builds the full route tree for the service.
//
// The til resource is read-only: only GET list and GET by id are registered.
// Create/update are supported further down the stack (changeset, repo) but
// deliberately not routed. Unknown paths and disallowed methods render the
// generic error envelope instead of chi's plain-text defaults.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		jsonapi.WriteError(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		jsonapi.WriteError(w, http.StatusMethodNotAllowed)
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.NewAcceptsJSON())
		api.Get("/tils", s.ListTils)
		api.Get("/tils/{id}", s.GetTil)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	jsonapi.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}
