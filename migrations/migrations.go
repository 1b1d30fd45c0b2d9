// Package migrations embeds the identity-store schema so the compiled
// binary can migrate on startup without external files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
