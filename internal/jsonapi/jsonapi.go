// Package jsonapi builds the JSON:API-flavored response envelopes for the
// tilsio API. Serialization is explicit and deterministic: a resource is
// assembled from a type name, an id, an attributes map, and a location
// template — no reflection, no struct tags beyond plain encoding/json.
package jsonapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ContentType is the media type set on every API response.
const ContentType = "application/vnd.api+json"

// Resource is one serialized resource object.
// ID travels as the resource key, never as an attribute.
type Resource struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
	Links      Links          `json:"links"`
}

// Links holds the self-referential link of a resource.
type Links struct {
	Self string `json:"self"`
}

// Document is a top-level envelope carrying either one resource or a
// collection. Exactly one of the two constructors should be used.
type Document struct {
	Data any `json:"data"`
}

// NewResource assembles a resource object. The location template is the URL
// pattern declared for the resource type (e.g. "/tils/:id"); every ":id"
// placeholder is replaced with the resource id to form the self link.
//
// The attributes map is used as given: callers must pass every declared
// attribute on every call, using nil for unset optional fields, so the same
// record always serializes to the same document.
func NewResource(resourceType, id string, attributes map[string]any, locationTemplate string) Resource {
	return Resource{
		Type:       resourceType,
		ID:         id,
		Attributes: attributes,
		Links:      Links{Self: strings.ReplaceAll(locationTemplate, ":id", id)},
	}
}

// NewDocument wraps a single resource in the top-level envelope.
func NewDocument(r Resource) Document {
	return Document{Data: r}
}

// NewCollection wraps resources in the top-level envelope.
// A nil slice serializes as an empty array, not null.
func NewCollection(rs []Resource) Document {
	if rs == nil {
		rs = []Resource{}
	}
	return Document{Data: rs}
}

// ErrorDocument is the generic error envelope: {"errors":{"detail":"..."}}.
type ErrorDocument struct {
	Errors ErrorDetail `json:"errors"`
}

// ErrorDetail carries the single human-readable error message.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// StatusMessage maps an HTTP status to its envelope message.
// Only 404 has a dedicated message; every other error status falls back to
// the generic internal-error text, so unmapped statuses never leak details.
func StatusMessage(status int) string {
	if status == http.StatusNotFound {
		return "Page not found"
	}
	return "Server internal error"
}

// NewError builds the error envelope for an HTTP status.
func NewError(status int) ErrorDocument {
	return ErrorDocument{Errors: ErrorDetail{Detail: StatusMessage(status)}}
}

// Write serializes v as the response body with the JSON:API content type.
// Encoding errors are ignored: by the time Encode fails the status line is
// already on the wire and nothing useful can be sent instead.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError serializes the generic error envelope for status.
func WriteError(w http.ResponseWriter, status int) {
	Write(w, status, NewError(status))
}
