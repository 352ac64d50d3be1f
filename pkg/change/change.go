package change

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/statement"
)

// PriorityDefault is the baseline priority of built-in change types.
const PriorityDefault = 1

const (
	KindRevokeObjectPermission Kind = "revokeObjectPermission"
	KindSQL                    Kind = "sql"
)

type (
	// Kind is the static type tag of a change implementation.
	Kind string

	// Metadata describes a change type to the registry.
	Metadata struct {
		Name        string
		Description string
		Priority    int
	}

	// Change is a single declarative migration instruction.
	Change interface {
		// Kind returns the type tag used to look up the change's metadata.
		Kind() Kind

		// GenerateStatements converts the change into statements. The dialect
		// may be nil for changes that do not depend on it.
		GenerateStatements(dialect.Dialect) ([]statement.Statement, error)

		// ConfirmationMessage describes what applying the change did.
		ConfirmationMessage() string

		// Validate checks the change before any statement is generated.
		Validate() *Validation
	}

	// Validation collects the problems found while validating a change.
	// Errors prevent the change from running, warnings are only reported.
	Validation struct {
		Errors   []string
		Warnings []string
	}
)

// AddError records a validation error.
func (v *Validation) AddError(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// AddWarning records a validation warning.
func (v *Validation) AddWarning(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any error was recorded.
func (v *Validation) HasErrors() bool {
	return v != nil && len(v.Errors) > 0
}

// Err returns the recorded errors as a single error, or nil.
func (v *Validation) Err() error {
	if !v.HasErrors() {
		return nil
	}

	return errors.New(strings.Join(v.Errors, "; "))
}
