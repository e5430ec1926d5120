package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/greenfieldhq/tilsio-api/internal/domain"
	"github.com/greenfieldhq/tilsio-api/internal/jsonapi"
)

// tilLocation is the resource location template declared for tils.
// The envelope builder expands it into each resource's self link.
const tilLocation = "/tils/:id"

// ListTils handles GET /api/v1/tils.
// No pagination, filtering, or sorting parameters are accepted.
func (s *Server) ListTils(w http.ResponseWriter, r *http.Request) {
	tils, err := s.tils.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	resources := make([]jsonapi.Resource, len(tils))
	for i, t := range tils {
		resources[i] = tilToResource(t)
	}
	jsonapi.Write(w, http.StatusOK, jsonapi.NewCollection(resources))
}

// GetTil handles GET /api/v1/tils/{id}.
// A missing record fails loudly with 404 — never an empty 200.
func (s *Server) GetTil(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparsable id can't match any record; same outcome as a miss.
		jsonapi.WriteError(w, http.StatusNotFound)
		return
	}

	til, err := s.tils.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			jsonapi.WriteError(w, http.StatusNotFound)
			return
		}
		s.serverError(w, r, err)
		return
	}

	jsonapi.Write(w, http.StatusOK, jsonapi.NewDocument(tilToResource(til)))
}

// serverError logs the unexpected error and renders the opaque 500 envelope.
// Details never reach the client.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	jsonapi.WriteError(w, http.StatusInternalServerError)
}

// tilToResource maps a domain.Til to its wire representation.
// Exactly two attributes are exposed: title and body. Body is always present,
// serializing as null when unset. The id rides as the resource key.
func tilToResource(t domain.Til) jsonapi.Resource {
	var body any
	if t.Body != nil {
		body = *t.Body
	}
	return jsonapi.NewResource("til", t.ID.String(), map[string]any{
		"title": t.Title,
		"body":  body,
	}, tilLocation)
}
