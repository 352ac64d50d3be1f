package change_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/pseudomuto/orakeeper/pkg/permission"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_RevokeObjectPermissionMetadata(t *testing.T) {
	reg, err := change.DefaultRegistry()
	require.NoError(t, err)

	for _, c := range []change.Change{
		change.NewRevokeObjectPermission(change.RevokeObjectPermissionParams{}),
		revokeWithAllPrivileges(),
	} {
		meta, err := reg.Metadata(c)
		require.NoError(t, err)
		require.Equal(t, "revokeObjectPermission", meta.Name)
		require.Equal(t, "Revoke Schema Object Permission", meta.Description)
		require.Equal(t, change.PriorityDefault+200, meta.Priority)
	}
}

func TestRegistry_Create(t *testing.T) {
	reg, err := change.DefaultRegistry()
	require.NoError(t, err)

	c, err := reg.Create("revokeObjectPermission", change.Attributes{
		"schemaName":    "LIQUIBASE",
		"objectName":    "addgrant",
		"recipientList": "SYSTEM",
		"update":        "true",
		"insert":        "TRUE",
		"delete":        "true",
		"select":        "false",
	})
	require.NoError(t, err)

	revoke, ok := c.(*change.RevokeObjectPermission)
	require.True(t, ok)
	require.Equal(t, "LIQUIBASE", revoke.SchemaName())
	require.Equal(t, "addgrant", revoke.ObjectName())
	require.Equal(t, "SYSTEM", revoke.RecipientList())
	require.Equal(t, permission.Set{Update: true, Insert: true, Delete: true}, revoke.Privileges())
}

func TestRegistry_CreateErrors(t *testing.T) {
	reg, err := change.DefaultRegistry()
	require.NoError(t, err)

	_, err = reg.Create("grantObjectPermission", change.Attributes{})
	require.True(t, errors.Is(err, change.ErrUnknownChange))

	_, err = reg.Create("revokeObjectPermission", change.Attributes{"objectName": "t1", "selectt": "true"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected attributes: selectt")

	_, err = reg.Create("revokeObjectPermission", change.Attributes{"objectName": "t1", "select": "yes"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `attribute select: invalid boolean value: "yes"`)
}

func TestRegistry_HighestPriorityWins(t *testing.T) {
	override := change.Registration{
		Kind:     change.Kind("customRevoke"),
		Metadata: change.Metadata{Name: "revokeObjectPermission", Description: "Custom", Priority: change.PriorityDefault + 500},
		New: func(change.Attributes) (change.Change, error) {
			return change.NewSQL(change.SQLParams{SQL: "SELECT 1 FROM dual"}), nil
		},
	}

	reg, err := change.NewRegistry(append(change.Builtins(), override)...)
	require.NoError(t, err)

	got, ok := reg.Lookup("revokeObjectPermission")
	require.True(t, ok)
	require.Equal(t, "Custom", got.Metadata.Description)

	c, err := reg.Create("revokeObjectPermission", nil)
	require.NoError(t, err)
	require.Equal(t, change.KindSQL, c.Kind())

	// Metadata is resolved by kind, so the built-in change keeps its own.
	meta, err := reg.Metadata(revokeWithAllPrivileges())
	require.NoError(t, err)
	require.Equal(t, "Revoke Schema Object Permission", meta.Description)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	newSQL := func(change.Attributes) (change.Change, error) { return nil, nil }

	tests := []struct {
		name   string
		regs   []change.Registration
		errMsg string
	}{
		{
			name:   "missing name",
			regs:   []change.Registration{{Kind: "x", New: newSQL}},
			errMsg: "change registration requires a name",
		},
		{
			name:   "missing kind",
			regs:   []change.Registration{{Metadata: change.Metadata{Name: "x"}, New: newSQL}},
			errMsg: "change registration x requires a kind",
		},
		{
			name:   "missing factory",
			regs:   []change.Registration{{Kind: "x", Metadata: change.Metadata{Name: "x"}}},
			errMsg: "change registration x requires a factory",
		},
		{
			name: "duplicate priority",
			regs: []change.Registration{
				{Kind: "x", Metadata: change.Metadata{Name: "x", Priority: 1}, New: newSQL},
				{Kind: "y", Metadata: change.Metadata{Name: "x", Priority: 1}, New: newSQL},
			},
			errMsg: "change x already registered with priority 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := change.NewRegistry(tt.regs...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	reg, err := change.DefaultRegistry()
	require.NoError(t, err)

	require.Equal(t, []string{"revokeObjectPermission", "sql"}, reg.Names())

	regs := reg.Registrations()
	require.Len(t, regs, 2)
	require.Equal(t, change.KindRevokeObjectPermission, regs[0].Kind)
	require.Equal(t, change.KindSQL, regs[1].Kind)
}
