// Package migrations embebe el esquema de la base CNPJ (tablas de datos abiertos
// de la Receita Federal y las vistas de consulta) para goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
