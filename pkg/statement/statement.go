// Package statement contains the database-agnostic statements produced by
// changes and rendered into SQL by the sqlgen package.
//
// Statements are immutable snapshots: every field is set by the constructor
// and only exposed through getters.
package statement

import "github.com/pseudomuto/orakeeper/pkg/permission"

const (
	// TypeRevokeObjectPermission identifies RevokeObjectPermission statements.
	TypeRevokeObjectPermission = "revokeObjectPermission"

	// TypeRawSQL identifies RawSQL statements.
	TypeRawSQL = "rawSQL"
)

type (
	// Statement is implemented by every statement. The type is used to find a
	// generator able to render it.
	Statement interface {
		StatementType() string
	}

	// RevokeObjectPermission revokes a set of privileges on one schema object
	// from a list of recipients.
	RevokeObjectPermission struct {
		target     permission.Target
		recipients permission.RecipientList
		privileges permission.Set
	}

	// RawSQL carries SQL text that is executed as written.
	RawSQL struct {
		sql             string
		splitStatements bool
		endDelimiter    string
	}
)

// NewRevokeObjectPermission creates a RevokeObjectPermission statement.
func NewRevokeObjectPermission(
	target permission.Target,
	recipients permission.RecipientList,
	privileges permission.Set,
) *RevokeObjectPermission {
	return &RevokeObjectPermission{
		target:     target,
		recipients: recipients,
		privileges: privileges,
	}
}

func (*RevokeObjectPermission) StatementType() string { return TypeRevokeObjectPermission }

func (s *RevokeObjectPermission) SchemaName() string         { return s.target.Schema }
func (s *RevokeObjectPermission) ObjectName() string         { return s.target.Name }
func (s *RevokeObjectPermission) RecipientList() string      { return string(s.recipients) }
func (s *RevokeObjectPermission) Privileges() permission.Set { return s.privileges }
func (s *RevokeObjectPermission) Select() bool               { return s.privileges.Select }
func (s *RevokeObjectPermission) Update() bool               { return s.privileges.Update }
func (s *RevokeObjectPermission) Insert() bool               { return s.privileges.Insert }
func (s *RevokeObjectPermission) Delete() bool               { return s.privileges.Delete }
func (s *RevokeObjectPermission) Execute() bool              { return s.privileges.Execute }
func (s *RevokeObjectPermission) References() bool           { return s.privileges.References }
func (s *RevokeObjectPermission) Index() bool                { return s.privileges.Index }

// NewRawSQL creates a RawSQL statement. When splitStatements is set, the text
// is split on endDelimiter before execution.
func NewRawSQL(sql string, splitStatements bool, endDelimiter string) *RawSQL {
	return &RawSQL{
		sql:             sql,
		splitStatements: splitStatements,
		endDelimiter:    endDelimiter,
	}
}

func (*RawSQL) StatementType() string { return TypeRawSQL }

func (s *RawSQL) SQL() string           { return s.sql }
func (s *RawSQL) SplitStatements() bool { return s.splitStatements }
func (s *RawSQL) EndDelimiter() string  { return s.endDelimiter }
