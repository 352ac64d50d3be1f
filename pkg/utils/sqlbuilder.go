package utils

import "strings"

// SQLBuilder provides a fluent interface for assembling Oracle DCL statements.
// Parts are joined with a single space and every clause is emitted even when
// its value is empty, so the output is a literal concatenation of its inputs.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Revoke("SELECT", "UPDATE").
//		On("HR.EMPLOYEES").
//		From("REPORTING").
//		String()
//	// Output: REVOKE SELECT,UPDATE ON HR.EMPLOYEES FROM REPORTING
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 6),
	}
}

// Revoke adds a REVOKE clause followed by the privileges joined with a comma
// and no space.
//
// Example:
//
//	builder.Revoke("SELECT", "INSERT")  // REVOKE SELECT,INSERT
//	builder.Revoke()                    // REVOKE (followed by an empty part)
func (b *SQLBuilder) Revoke(privileges ...string) *SQLBuilder {
	b.parts = append(b.parts, "REVOKE", strings.Join(privileges, ","))
	return b
}

// On adds an ON clause. The object name is expected to be escaped already.
//
// Example:
//
//	builder.On(`HR."Order"`)  // ON HR."Order"
func (b *SQLBuilder) On(object string) *SQLBuilder {
	b.parts = append(b.parts, "ON", object)
	return b
}

// From adds a FROM clause with the recipients emitted verbatim.
//
// Example:
//
//	builder.From("SCOTT, REPORTING")  // FROM SCOTT, REPORTING
func (b *SQLBuilder) From(recipients string) *SQLBuilder {
	b.parts = append(b.parts, "FROM", recipients)
	return b
}

// String builds and returns the statement text without a terminator. Oracle
// drivers reject a trailing semicolon, so delimiters are left to callers that
// write scripts.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
