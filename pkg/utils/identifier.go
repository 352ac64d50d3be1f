package utils

import (
	"regexp"
	"strings"
)

var simpleIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_$#]*$`)

// QuoteIdentifier wraps an identifier in double quotes, doubling any embedded
// quote characters.
//
// Examples:
//   - "events" -> "\"events\""
//   - "My Table" -> "\"My Table\""
//   - "\"events\"" -> "\"events\"" (already quoted, not double-quoted)
//   - "" -> ""
func QuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}

	if IsQuoted(name) {
		return name
	}

	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// IsQuoted checks if a string is a single double-quoted identifier.
//
// Examples:
//   - "\"table\"" -> true
//   - "table" -> false
//   - "\"s\".\"t\"" -> false (qualified name, not a single quoted identifier)
//   - "" -> false
func IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}

	// Embedded quotes must come in escaped pairs.
	inner := s[1 : len(s)-1]
	return !strings.Contains(strings.ReplaceAll(inner, `""`, ""), `"`)
}

// StripQuotes removes the surrounding double quotes from a quoted identifier
// and collapses escaped quote pairs. Unquoted input is returned as-is.
//
// Examples:
//   - "\"table\"" -> "table"
//   - "\"a\"\"b\"" -> "a\"b"
//   - "table" -> "table"
func StripQuotes(s string) string {
	if !IsQuoted(s) {
		return s
	}

	return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
}

// IsSimpleIdentifier reports whether name can be used without quotes, i.e. it
// starts with a letter and only contains letters, digits, '_', '$' and '#'.
func IsSimpleIdentifier(name string) bool {
	return simpleIdentifier.MatchString(name)
}
