// Package db holds the SQL migrations for the Satchel schema.
//
// The migrations directory is embedded so production builds can run
// migrations without shipping loose files. See cmd/satchelctl for the
// embed_migrations build tag.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
