// Package migrations embeds the SQL migration files for the tils schema so
// the goose programmatic API can run them from the migrate command and from
// test TestMain functions.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose.Provider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
