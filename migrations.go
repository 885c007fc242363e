// Package govconnect embeds assets shared by the commands, such as the
// database migrations applied by `govconnect migrate`.
package govconnect

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
