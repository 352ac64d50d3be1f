package sqlgen

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/consts"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/statement"
)

// RawSQLGenerator renders RawSQL statements, optionally splitting them on
// their end delimiter. Any delimiter other than ";" only splits on lines
// holding nothing else.
type RawSQLGenerator struct{}

func (RawSQLGenerator) StatementType() string { return statement.TypeRawSQL }
func (RawSQLGenerator) Priority() int         { return PriorityDefault }

func (RawSQLGenerator) Supports(stmt statement.Statement) bool {
	_, ok := stmt.(*statement.RawSQL)
	return ok
}

func (RawSQLGenerator) GenerateSQL(stmt statement.Statement, _ dialect.IdentifierEscaper) ([]SQL, error) {
	raw, ok := stmt.(*statement.RawSQL)
	if !ok {
		return nil, errors.Errorf("unsupported statement type: %s", stmt.StatementType())
	}

	delimiter := raw.EndDelimiter()
	if delimiter == "" {
		delimiter = consts.DefaultEndDelimiter
	}

	if !raw.SplitStatements() {
		text := strings.TrimSpace(raw.SQL())
		if text == "" {
			return nil, nil
		}
		return []SQL{NewSQL(text, delimiter)}, nil
	}

	var parts []string
	if delimiter == consts.DefaultEndDelimiter {
		split, err := Split(raw.SQL())
		if err != nil {
			return nil, err
		}
		parts = split
	} else {
		parts = splitLines(raw.SQL(), delimiter)
	}

	out := make([]SQL, 0, len(parts))
	for _, part := range parts {
		out = append(out, NewSQL(part, delimiter))
	}
	return out, nil
}
