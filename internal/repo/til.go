// Package repo contains all database access logic for the tilsio API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/greenfieldhq/tilsio-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TilRepo defines the persistence operations for Tils.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TilRepo interface {
	// List returns all tils ordered by inserted_at ascending.
	List(ctx context.Context) ([]domain.Til, error)

	// GetByID retrieves a single til by its UUID primary key.
	// Returns domain.ErrNotFound if no til with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Til, error)

	// Insert persists a new til and returns the full record (with
	// DB-generated id, inserted_at, and updated_at populated).
	// Not reachable from any HTTP route — used by the seed command.
	Insert(ctx context.Context, til domain.Til) (domain.Til, error)
}

// pgTilRepo is the Postgres implementation of TilRepo.
type pgTilRepo struct {
	db db
}

// NewTilRepo constructs a TilRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTilRepo(db db) TilRepo {
	return &pgTilRepo{db: db}
}

// List returns every til, oldest first. Order is a stability convenience,
// not an API guarantee.
func (r *pgTilRepo) List(ctx context.Context) ([]domain.Til, error) {
	const q = `
		SELECT id, title, body, inserted_at, updated_at
		FROM tils
		ORDER BY inserted_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TilRepo.List: %w", err)
	}
	defer rows.Close()

	var tils []domain.Til
	for rows.Next() {
		t, err := scanTil(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TilRepo.List: scan: %w", err)
		}
		tils = append(tils, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TilRepo.List: rows: %w", err)
	}

	return tils, nil
}

// GetByID retrieves a til by primary key.
func (r *pgTilRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Til, error) {
	const q = `
		SELECT id, title, body, inserted_at, updated_at
		FROM tils
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTil(row)
	if err != nil {
		return domain.Til{}, fmt.Errorf("repo.TilRepo.GetByID: %w", err)
	}
	return result, nil
}

// Insert persists a new til row and returns the full persisted record.
func (r *pgTilRepo) Insert(ctx context.Context, til domain.Til) (domain.Til, error) {
	const q = `
		INSERT INTO tils (title, body)
		VALUES (@title, @body)
		RETURNING id, title, body, inserted_at, updated_at`

	args := pgx.NamedArgs{
		"title": til.Title,
		"body":  til.Body, // nil becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTil(row)
	if err != nil {
		return domain.Til{}, fmt.Errorf("repo.TilRepo.Insert: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTil to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTil maps a single database row into a domain.Til.
// It handles the UUID and nullable body conversions.
func scanTil(s scanner) (domain.Til, error) {
	var (
		t    domain.Til
		id   pgtype.UUID
		body pgtype.Text
	)

	err := s.Scan(&id, &t.Title, &body, &t.InsertedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Til{}, domain.ErrNotFound
		}
		return domain.Til{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if body.Valid {
		b := body.String
		t.Body = &b
	}

	return t, nil
}
