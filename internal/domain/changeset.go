package domain

import (
	"fmt"
	"strings"
)

// Params carries untrusted proposed field values, typically decoded from a
// JSON request body or a seed script. Keys not permitted by the schema are
// ignored silently.
type Params map[string]any

// NoInput is the sentinel for "nothing was submitted at all" — distinct from
// an empty map, which means "a submission with no recognized fields".
// Casting NoInput yields a changeset that is invalid unconditionally, so an
// accidental blank submission can never slip through as a no-op success.
var NoInput Params = nil

// FieldError is a single validation failure attached to one field.
type FieldError struct {
	Field   string
	Message string
}

// ChangesetError carries all field errors accumulated by a changeset.
// It matches errors.Is(err, ErrValidation).
type ChangesetError struct {
	Fields []FieldError
}

func (e *ChangesetError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error: no input"
	}
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) succeed on a *ChangesetError.
func (e *ChangesetError) Unwrap() error { return ErrValidation }

// tilFields lists the castable fields of a Til and whether each is required.
// This is the schema the changeset operates against; anything outside it is
// dropped during Cast.
var tilFields = map[string]bool{
	"title": true,
	"body":  false,
}

// Changeset tracks a proposed mutation to a Til, separating raw input from
// persisted state. Build one with Cast, chain validators, then call Apply.
// All methods are pure: each returns a new value and mutates nothing.
type Changeset struct {
	data    Til
	changes map[string]*string
	errs    []FieldError
	noInput bool
}

// Cast filters params down to the permitted fields and records the accepted
// values as proposed changes. Unknown keys are ignored, not rejected.
// A non-string value for a permitted field attaches an "is invalid" error.
// Cast(data, NoInput, ...) produces an unconditionally invalid changeset.
func Cast(data Til, params Params, permitted ...string) Changeset {
	c := Changeset{data: data, changes: map[string]*string{}}
	if params == nil {
		c.noInput = true
		return c
	}
	for _, field := range permitted {
		if _, known := tilFields[field]; !known {
			continue
		}
		raw, ok := params[field]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case nil:
			c.changes[field] = nil
		case string:
			s := v
			c.changes[field] = &s
		case *string:
			c.changes[field] = v
		default:
			c.errs = append(c.errs, FieldError{Field: field, Message: "is invalid"})
		}
	}
	return c
}

// ValidateRequired attaches "can't be blank" for each named field that is
// blank (missing, nil, or whitespace-only) in both the proposed changes and
// the underlying record.
func (c Changeset) ValidateRequired(fields ...string) Changeset {
	if c.noInput {
		return c
	}
	for _, field := range fields {
		if isBlank(c.proposed(field)) {
			c.errs = append(c.errs, FieldError{Field: field, Message: "can't be blank"})
		}
	}
	return c
}

// ValidateMinLength attaches "should be at least N character(s)" when a
// proposed change for field is shorter than min. Fields with no proposed
// change are skipped — length rules only judge what the caller submitted.
func (c Changeset) ValidateMinLength(field string, min int) Changeset {
	if c.noInput {
		return c
	}
	v, ok := c.changes[field]
	if !ok || v == nil {
		return c
	}
	if len([]rune(*v)) < min {
		c.errs = append(c.errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("should be at least %d character(s)", min),
		})
	}
	return c
}

// Valid reports whether the changeset may be applied.
func (c Changeset) Valid() bool {
	return !c.noInput && len(c.errs) == 0
}

// Errors returns all accumulated field errors, in rule order.
func (c Changeset) Errors() []FieldError {
	return c.errs
}

// Apply merges the proposed changes into the underlying record and returns
// the result, or a *ChangesetError carrying every accumulated violation.
func (c Changeset) Apply() (Til, error) {
	if !c.Valid() {
		return Til{}, &ChangesetError{Fields: c.errs}
	}
	out := c.data
	if v, ok := c.changes["title"]; ok && v != nil {
		out.Title = *v
	}
	if v, ok := c.changes["body"]; ok {
		out.Body = v
	}
	return out, nil
}

// NewTilChangeset runs the standard Til pipeline: cast title and body,
// require a title, enforce the one-character minimum.
func NewTilChangeset(data Til, params Params) Changeset {
	return Cast(data, params, "title", "body").
		ValidateRequired("title").
		ValidateMinLength("title", 1)
}

// proposed returns the effective value of field: the pending change if one
// exists, otherwise the value already on the record.
func (c Changeset) proposed(field string) *string {
	if v, ok := c.changes[field]; ok {
		return v
	}
	switch field {
	case "title":
		if c.data.Title == "" {
			return nil
		}
		t := c.data.Title
		return &t
	case "body":
		return c.data.Body
	}
	return nil
}

// isBlank reports whether a value is missing or whitespace-only.
func isBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}
