// Package migrations embeds the goose SQL migrations so that the migrate
// command and integration tests apply the same schema.
package migrations

import "embed"

// FS holds every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
