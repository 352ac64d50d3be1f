// Package utils provides common utility functions used throughout the orakeeper codebase.
//
// # Identifier Utilities (identifier.go)
//
// Oracle identifiers are case-insensitive and upper-cased unless they are
// wrapped in double quotes. The helpers here quote, unquote and classify
// identifiers without deciding when quoting is required; that decision belongs
// to the dialect package.
//
//	utils.QuoteIdentifier("Order Lines")  // "Order Lines"
//	utils.QuoteIdentifier(`"EVENTS"`)     // "EVENTS" (not double-quoted)
//	utils.StripQuotes(`"a""b"`)           // a"b
//	utils.IsSimpleIdentifier("EMP$HIST")  // true
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles REVOKE statements clause by clause:
//
//	utils.NewSQLBuilder().Revoke("SELECT").On("HR.EMP").From("SCOTT").String()
//	// REVOKE SELECT ON HR.EMP FROM SCOTT
//
// # Value Utilities (validation.go)
//
// IsBooleanValue and ParseBoolean interpret the boolean-ish attribute values
// found in changelogs.
package utils
