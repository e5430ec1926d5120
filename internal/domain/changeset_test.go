package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenfieldhq/tilsio-api/internal/domain"
)

func TestNewTilChangeset_Valid(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{
		"title": "TIL: pgx supports named args",
		"body":  "pgx.NamedArgs maps @name placeholders",
	})

	require.True(t, cs.Valid())

	til, err := cs.Apply()
	require.NoError(t, err)
	assert.Equal(t, "TIL: pgx supports named args", til.Title)
	require.NotNil(t, til.Body)
	assert.Equal(t, "pgx.NamedArgs maps @name placeholders", *til.Body)
}

func TestNewTilChangeset_TitleOnly(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{"title": "A"})

	require.True(t, cs.Valid())

	til, err := cs.Apply()
	require.NoError(t, err)
	assert.Equal(t, "A", til.Title)
	assert.Nil(t, til.Body, "body stays nil when not submitted")
}

func TestNewTilChangeset_MissingTitle(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{"body": "no title here"})

	require.False(t, cs.Valid())
	require.Len(t, cs.Errors(), 1)
	assert.Equal(t, "title", cs.Errors()[0].Field)
	assert.Equal(t, "can't be blank", cs.Errors()[0].Message)
}

func TestNewTilChangeset_EmptyTitle(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{"title": ""})

	require.False(t, cs.Valid())

	// Both rules fire and both are reported — violations accumulate
	// instead of short-circuiting at the first failure.
	var messages []string
	for _, fe := range cs.Errors() {
		assert.Equal(t, "title", fe.Field)
		messages = append(messages, fe.Message)
	}
	assert.Contains(t, messages, "can't be blank")
	assert.Contains(t, messages, "should be at least 1 character(s)")
}

func TestNewTilChangeset_ExistingTitleSatisfiesRequired(t *testing.T) {
	existing := domain.Til{Title: "already titled"}

	cs := domain.NewTilChangeset(existing, domain.Params{"body": "just a body update"})

	require.True(t, cs.Valid())

	til, err := cs.Apply()
	require.NoError(t, err)
	assert.Equal(t, "already titled", til.Title, "existing title is preserved")
	require.NotNil(t, til.Body)
	assert.Equal(t, "just a body update", *til.Body)
}

func TestNewTilChangeset_UnknownFieldsIgnored(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{
		"title":     "TIL",
		"tags":      []string{"nope"},
		"arbitrary": 42,
	})

	require.True(t, cs.Valid(), "unknown fields are dropped, not rejected")

	til, err := cs.Apply()
	require.NoError(t, err)
	assert.Equal(t, "TIL", til.Title)
}

func TestNewTilChangeset_NoInput(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.NoInput)

	require.False(t, cs.Valid(), "no-input sentinel must be invalid unconditionally")
	assert.Empty(t, cs.Errors(), "no field errors — nothing was submitted to validate")

	_, err := cs.Apply()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTilChangeset_NoInputDiffersFromEmptyMap(t *testing.T) {
	// An empty map is a real (if useless) submission: validation runs and
	// the required rule fires. NoInput skips validation entirely.
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{})

	require.False(t, cs.Valid())
	require.Len(t, cs.Errors(), 1)
	assert.Equal(t, "can't be blank", cs.Errors()[0].Message)
}

func TestNewTilChangeset_NonStringTitle(t *testing.T) {
	cs := domain.NewTilChangeset(domain.Til{}, domain.Params{"title": 123})

	require.False(t, cs.Valid())

	var messages []string
	for _, fe := range cs.Errors() {
		messages = append(messages, fe.Message)
	}
	assert.Contains(t, messages, "is invalid")
}

func TestNewTilChangeset_NullBodyClearsExisting(t *testing.T) {
	body := "old body"
	existing := domain.Til{Title: "kept", Body: &body}

	cs := domain.NewTilChangeset(existing, domain.Params{"body": nil})

	require.True(t, cs.Valid())

	til, err := cs.Apply()
	require.NoError(t, err)
	assert.Nil(t, til.Body, "explicit null clears the body")
}

func TestChangesetError_MatchesSentinel(t *testing.T) {
	_, err := domain.NewTilChangeset(domain.Til{}, domain.Params{}).Apply()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var cerr *domain.ChangesetError
	require.True(t, errors.As(err, &cerr))
	assert.Len(t, cerr.Fields, 1)
}

func TestChangeset_Pure(t *testing.T) {
	params := domain.Params{"title": "immutability check"}
	base := domain.Cast(domain.Til{}, params, "title", "body")

	_ = base.ValidateRequired("title")
	_ = base.ValidateMinLength("title", 1)

	assert.True(t, base.Valid(), "validators must not mutate the receiver")
	assert.Empty(t, base.Errors())
}
