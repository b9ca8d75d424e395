package postgres

import "embed"

// Migrations holds the goose SQL migrations, read from the "migrations" dir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
