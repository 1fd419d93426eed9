// Package migrations embeds the SQL schema migrations for the API server.
package migrations

import "embed"

// FS contains the migration files applied at startup.
//
//go:embed *.up.sql
var FS embed.FS
