package change

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/permission"
	"github.com/pseudomuto/orakeeper/pkg/statement"
)

type (
	// RevokeObjectPermissionParams holds every field of a
	// RevokeObjectPermission change.
	RevokeObjectPermissionParams struct {
		SchemaName    string
		ObjectName    string
		RecipientList string
		Privileges    permission.Set
	}

	// RevokeObjectPermission revokes object privileges from a list of users
	// and roles. It is immutable once built.
	//
	// Changelog form:
	//
	//	<revokeObjectPermission schemaName="HR" objectName="EMPLOYEES"
	//	    recipientList="REPORTING" select="true" update="true"/>
	RevokeObjectPermission struct {
		target     permission.Target
		recipients permission.RecipientList
		privileges permission.Set
	}
)

var revokeObjectPermissionAttributes = []string{
	"schemaName", "objectName", "recipientList",
	"select", "update", "insert", "delete", "execute", "references", "index",
}

// NewRevokeObjectPermission builds a RevokeObjectPermission change. Values are
// stored as given; required fields are checked by Validate.
func NewRevokeObjectPermission(p RevokeObjectPermissionParams) *RevokeObjectPermission {
	return &RevokeObjectPermission{
		target:     permission.Target{Schema: p.SchemaName, Name: p.ObjectName},
		recipients: permission.RecipientList(p.RecipientList),
		privileges: p.Privileges,
	}
}

func (c *RevokeObjectPermission) Kind() Kind                 { return KindRevokeObjectPermission }
func (c *RevokeObjectPermission) SchemaName() string         { return c.target.Schema }
func (c *RevokeObjectPermission) ObjectName() string         { return c.target.Name }
func (c *RevokeObjectPermission) RecipientList() string      { return string(c.recipients) }
func (c *RevokeObjectPermission) Privileges() permission.Set { return c.privileges }

// GenerateStatements returns a single statement holding a snapshot of the
// change's fields.
func (c *RevokeObjectPermission) GenerateStatements(dialect.Dialect) ([]statement.Statement, error) {
	return []statement.Statement{
		statement.NewRevokeObjectPermission(c.target, c.recipients, c.privileges),
	}, nil
}

// ConfirmationMessage names the object and the recipients. Privileges are
// not part of the message.
func (c *RevokeObjectPermission) ConfirmationMessage() string {
	return "Revoking grants on " + c.target.Name + " that had been given to " + string(c.recipients)
}

// Validate requires objectName and recipientList. Revoking nothing is legal
// but reported as a warning since the generated statement is malformed.
func (c *RevokeObjectPermission) Validate() *Validation {
	v := &Validation{}
	if c.target.Name == "" {
		v.AddError("objectName is required for revokeObjectPermission")
	}
	if c.recipients == "" {
		v.AddError("recipientList is required for revokeObjectPermission")
	}
	if c.privileges.IsEmpty() {
		v.AddWarning("revokeObjectPermission on %s selects no privileges", c.target)
	}
	return v
}

func newRevokeObjectPermissionFromAttributes(attrs Attributes) (Change, error) {
	if err := attrs.Check(revokeObjectPermissionAttributes...); err != nil {
		return nil, err
	}

	var privs permission.Set
	for _, p := range permission.Privileges() {
		selected, err := attrs.Bool(attributeName(p))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse revokeObjectPermission")
		}
		if selected {
			privs = privs.With(p)
		}
	}

	return NewRevokeObjectPermission(RevokeObjectPermissionParams{
		SchemaName:    attrs.Get("schemaName"),
		ObjectName:    attrs.Get("objectName"),
		RecipientList: attrs.Get("recipientList"),
		Privileges:    privs,
	}), nil
}

// attributeName maps a privilege to its changelog attribute (e.g. "select").
func attributeName(p permission.Privilege) string {
	switch p {
	case permission.Select:
		return "select"
	case permission.Update:
		return "update"
	case permission.Insert:
		return "insert"
	case permission.Delete:
		return "delete"
	case permission.Execute:
		return "execute"
	case permission.References:
		return "references"
	case permission.Index:
		return "index"
	}
	return ""
}
