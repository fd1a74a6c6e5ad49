// Package scripts embeds the versioned SQL migrations applied by goose.
package scripts

import "embed"

//go:embed *.sql
var FS embed.FS
