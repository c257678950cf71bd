// Package migrations embeds the goose SQL migrations of the diary store,
// one directory per SQL dialect.
package migrations

import "embed"

// Directories inside Migrations, one per supported dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
