// Package migrations embeds the SQL schema for the relational backends.
package migrations

import "embed"

// Postgres holds the golang-migrate files for the postgres backend, under "postgres".
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the golang-migrate files for the sqlite backend, under "sqlite".
//
//go:embed sqlite/*.sql
var SQLite embed.FS
