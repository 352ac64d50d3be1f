package change

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/statement"
)

type (
	// SQLParams holds the fields of a SQL change.
	SQLParams struct {
		SQL             string
		SplitStatements bool
		EndDelimiter    string
	}

	// SQL runs arbitrary SQL text. The changelog default is to split the text
	// into statements on the end delimiter (";" unless configured).
	SQL struct {
		sql             string
		splitStatements bool
		endDelimiter    string
	}
)

// NewSQL builds a SQL change.
func NewSQL(p SQLParams) *SQL {
	return &SQL{
		sql:             p.SQL,
		splitStatements: p.SplitStatements,
		endDelimiter:    p.EndDelimiter,
	}
}

func (c *SQL) Kind() Kind            { return KindSQL }
func (c *SQL) SQL() string           { return c.sql }
func (c *SQL) SplitStatements() bool { return c.splitStatements }
func (c *SQL) EndDelimiter() string  { return c.endDelimiter }

func (c *SQL) GenerateStatements(dialect.Dialect) ([]statement.Statement, error) {
	return []statement.Statement{
		statement.NewRawSQL(c.sql, c.splitStatements, c.endDelimiter),
	}, nil
}

func (c *SQL) ConfirmationMessage() string {
	return "Custom SQL executed"
}

func (c *SQL) Validate() *Validation {
	v := &Validation{}
	if strings.TrimSpace(c.sql) == "" {
		v.AddError("sql text is required for sql")
	}
	return v
}

func newSQLFromAttributes(attrs Attributes) (Change, error) {
	if err := attrs.Check("sql", "splitStatements", "endDelimiter", "stripComments"); err != nil {
		return nil, err
	}

	split, err := attrs.BoolDefault("splitStatements", true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sql")
	}

	text := attrs.Get("sql")
	strip, err := attrs.Bool("stripComments")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sql")
	}
	if strip {
		text = stripLineComments(text)
	}

	return NewSQL(SQLParams{
		SQL:             text,
		SplitStatements: split,
		EndDelimiter:    attrs.Get("endDelimiter"),
	}), nil
}

// stripLineComments drops "--" comment lines.
func stripLineComments(sql string) string {
	lines := strings.Split(sql, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
