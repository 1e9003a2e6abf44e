// Package migrations contiene el esquema SQL versionado (NNNNNNNNNN_nombre.up.sql / .down.sql).
package migrations

import "embed"

// FS migraciones embebidas en el binario.
//
//go:embed *.sql
var FS embed.FS
