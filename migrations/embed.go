// Package migrations holds the goose SQL migrations for trips, trip lists
// and the public share lookups. The server test harness and tripctl's
// migrate command both read them from FS.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
