// Package migrations embeds the goose SQL migrations so both the server
// startup path and the test harness apply the identical schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
