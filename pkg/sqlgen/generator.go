package sqlgen

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/consts"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/statement"
)

const (
	// PriorityDefault is the priority of generic generators.
	PriorityDefault = 1

	// PriorityDatabase is the priority of database-specific generators.
	PriorityDatabase = 5
)

// ErrNoGenerator is returned when no registered generator supports a statement.
var ErrNoGenerator = errors.New("no generator supports statement")

type (
	// SQL is a rendered statement ready to be executed or written to a script.
	SQL struct {
		text         string
		endDelimiter string
	}

	// Generator renders one statement type into SQL.
	Generator interface {
		// StatementType is the type of statement the generator renders.
		StatementType() string

		// Priority orders generators registered for the same statement type.
		Priority() int

		// Supports reports whether the generator can render stmt.
		Supports(stmt statement.Statement) bool

		// GenerateSQL renders stmt. Errors from the escaper are returned as-is.
		GenerateSQL(stmt statement.Statement, escaper dialect.IdentifierEscaper) ([]SQL, error)
	}

	// Factory dispatches statements to the registered generators.
	Factory struct {
		generators map[string][]Generator
	}
)

// NewSQL creates a rendered SQL statement. An empty delimiter defaults to ";".
func NewSQL(text, endDelimiter string) SQL {
	if endDelimiter == "" {
		endDelimiter = consts.DefaultEndDelimiter
	}

	return SQL{text: text, endDelimiter: endDelimiter}
}

// ToSQL returns the statement text without a delimiter.
func (s SQL) ToSQL() string { return s.text }

// EndDelimiter returns the delimiter used when writing the statement to a script.
func (s SQL) EndDelimiter() string { return s.endDelimiter }

func (s SQL) String() string { return s.text }

// NewFactory creates a factory holding gens.
func NewFactory(gens ...Generator) *Factory {
	f := &Factory{generators: make(map[string][]Generator)}
	for _, g := range gens {
		f.Register(g)
	}
	return f
}

// DefaultFactory creates a factory with every built-in generator.
func DefaultFactory() *Factory {
	return NewFactory(
		RevokeObjectPermissionGenerator{},
		RawSQLGenerator{},
	)
}

// Register adds a generator. Generators for the same statement type are kept
// sorted by descending priority.
func (f *Factory) Register(g Generator) {
	gens := append(f.generators[g.StatementType()], g)
	sort.SliceStable(gens, func(i, j int) bool {
		return gens[i].Priority() > gens[j].Priority()
	})
	f.generators[g.StatementType()] = gens
}

// GeneratorFor returns the highest priority generator supporting stmt.
func (f *Factory) GeneratorFor(stmt statement.Statement) (Generator, error) {
	for _, g := range f.generators[stmt.StatementType()] {
		if g.Supports(stmt) {
			return g, nil
		}
	}

	return nil, errors.Wrapf(ErrNoGenerator, "%s", stmt.StatementType())
}

// GenerateSQL renders stmt with the highest priority supporting generator.
func (f *Factory) GenerateSQL(stmt statement.Statement, escaper dialect.IdentifierEscaper) ([]SQL, error) {
	g, err := f.GeneratorFor(stmt)
	if err != nil {
		return nil, err
	}

	return g.GenerateSQL(stmt, escaper)
}
