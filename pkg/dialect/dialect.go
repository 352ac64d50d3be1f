// Package dialect defines how statements learn the rules of the target
// database. Generators only depend on IdentifierEscaper; the rest of the
// Dialect is used by the engine for reporting.
package dialect

import "github.com/pkg/errors"

var (
	// ErrEmptyIdentifier is returned when an object or schema name is empty.
	ErrEmptyIdentifier = errors.New("identifier must not be empty")

	// ErrIdentifierTooLong is returned when an identifier exceeds the
	// database limit.
	ErrIdentifierTooLong = errors.New("identifier too long")
)

type (
	// IdentifierEscaper produces fully qualified, escaped object names.
	// Catalog and schema may be empty.
	IdentifierEscaper interface {
		EscapeObjectName(catalog, schema, name string) (string, error)
	}

	// Dialect is a database flavour able to escape identifiers.
	Dialect interface {
		IdentifierEscaper
		Name() string
	}
)
