// Package sqlfmt holds the small set of quoting helpers shared by the differ
// (which must render CREATE TYPE / CREATE DOMAIN text pg_catalog has no
// single pg_get_*def() function for) and the emitter (which quotes
// identifiers for every statement it dispatches).
package sqlfmt

import "strings"

// QuoteIdent double-quotes a SQL identifier, escaping embedded quotes by
// doubling them per the standard.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteQualified double-quotes a schema-qualified identifier: "schema"."name".
func QuoteQualified(schema, name string) string {
	return QuoteIdent(schema) + "." + QuoteIdent(name)
}

// QuoteLiteral single-quotes a SQL string literal, escaping embedded quotes
// by doubling them per the standard.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
