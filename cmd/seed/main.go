// Package main inserts the starter Til rows. Seeds go through
// service.Create, so every row passes the same changeset rules a create
// endpoint would enforce. Running it twice inserts the rows twice — it is
// meant for fresh development databases.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenfieldhq/tilsio-api/internal/config"
	"github.com/greenfieldhq/tilsio-api/internal/domain"
	"github.com/greenfieldhq/tilsio-api/internal/repo"
	"github.com/greenfieldhq/tilsio-api/internal/service"
)

// seeds are the starter posts for a development database.
var seeds = []domain.Params{
	{
		"title": "TIL: about goose migrations",
		"body":  "Embedded SQL migrations can ship inside the server binary.",
	},
	{
		"title": "TIL: pgx named arguments",
		"body":  "pgx.NamedArgs maps @name placeholders to values without positional juggling.",
	},
	{
		"title": "TIL: a post does not need a body",
	},
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	tils := service.NewTilService(repo.NewTilRepo(pool))

	for _, params := range seeds {
		til, err := tils.Create(ctx, params)
		if err != nil {
			return err
		}
		slog.Info("seeded til", "id", til.ID, "title", til.Title)
	}

	return nil
}
