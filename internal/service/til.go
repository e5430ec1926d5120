// Package service contains the business logic for the tilsio API.
// Services validate inputs through changesets and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/greenfieldhq/tilsio-api/internal/domain"
	"github.com/greenfieldhq/tilsio-api/internal/repo"
)

// TilService implements business logic for Til operations.
type TilService struct {
	tils repo.TilRepo
}

// NewTilService constructs a TilService backed by the provided TilRepo.
func NewTilService(r repo.TilRepo) *TilService {
	return &TilService{tils: r}
}

// List returns all tils.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TilService) List(ctx context.Context) ([]domain.Til, error) {
	tils, err := s.tils.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TilService.List: %w", err)
	}
	if tils == nil {
		return []domain.Til{}, nil
	}
	return tils, nil
}

// GetByID returns a single til by ID.
// Returns domain.ErrNotFound if no til with that ID exists.
func (s *TilService) GetByID(ctx context.Context, id uuid.UUID) (domain.Til, error) {
	result, err := s.tils.GetByID(ctx, id)
	if err != nil {
		return domain.Til{}, fmt.Errorf("service.TilService.GetByID: %w", err)
	}
	return result, nil
}

// Create runs params through the standard changeset and persists the result.
// Returns the changeset's *domain.ChangesetError (matching domain.ErrValidation)
// when input violates a rule.
//
// No HTTP route reaches this today — the exposed surface is read-only.
// The seed command is its only production caller.
func (s *TilService) Create(ctx context.Context, params domain.Params) (domain.Til, error) {
	til, err := domain.NewTilChangeset(domain.Til{}, params).Apply()
	if err != nil {
		return domain.Til{}, fmt.Errorf("service.TilService.Create: %w", err)
	}

	result, err := s.tils.Insert(ctx, til)
	if err != nil {
		return domain.Til{}, fmt.Errorf("service.TilService.Create: %w", err)
	}
	return result, nil
}
