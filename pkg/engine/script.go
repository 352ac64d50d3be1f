package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// WriteSQL writes rendered changesets as an update script. Each changeset
// starts with a header comment, each change with its confirmation message.
// Statements ending with "/" get the delimiter on its own line.
//
// Example output:
//
//	-- Changeset db/changelog.xml::3::liquibase
//	-- Revoking grants on addgrant that had been given to SYSTEM
//	REVOKE UPDATE,INSERT,DELETE ON LIQUIBASE.addgrant FROM SYSTEM;
func (e *Engine) WriteSQL(w io.Writer, sets []*ChangeSetSQL) error {
	var b strings.Builder

	for i, cs := range sets {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "-- Changeset %s\n", cs.ChangeSet.Identifier())
		if cs.ChangeSet.Comment != "" {
			fmt.Fprintf(&b, "-- %s\n", cs.ChangeSet.Comment)
		}

		for _, c := range cs.Changes {
			fmt.Fprintf(&b, "-- %s\n", c.Confirmation)
			for _, s := range c.SQL {
				b.WriteString(s.ToSQL())
				if s.EndDelimiter() == "/" {
					b.WriteString("\n")
				}
				b.WriteString(s.EndDelimiter())
				b.WriteString("\n")
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write sql")
	}

	return nil
}
