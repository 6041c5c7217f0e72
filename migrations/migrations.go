// Package migrations embeds the SQL scripts creating the ingest service schema.
package migrations

import "embed"

// FS holds the migration scripts, named as golang-migrate expects.
//
//go:embed *.sql
var FS embed.FS
