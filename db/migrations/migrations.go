// Package migrations embeds the goose SQL migrations so the binary can
// bring the schema up to date on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
