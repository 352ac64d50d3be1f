package dialect_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestNewOracle(t *testing.T) {
	ora, err := dialect.NewOracle(dialect.OracleOptions{})
	require.NoError(t, err)
	require.Equal(t, "oracle", ora.Name())

	_, err = dialect.NewOracle(dialect.OracleOptions{Quoting: "sometimes"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown quoting strategy: sometimes")
}

func TestOracle_EscapeObjectName(t *testing.T) {
	tests := []struct {
		name     string
		opts     dialect.OracleOptions
		catalog  string
		schema   string
		object   string
		expected string
	}{
		{
			name:     "legacy keeps plain identifiers",
			schema:   "LIQUIBASE",
			object:   "addgrant",
			expected: "LIQUIBASE.addgrant",
		},
		{
			name:     "legacy without schema",
			object:   "addgrant",
			expected: "addgrant",
		},
		{
			name:     "legacy quotes reserved words",
			schema:   "HR",
			object:   "ORDER",
			expected: `HR."ORDER"`,
		},
		{
			name:     "legacy quotes reserved words in any case",
			object:   "order",
			expected: `"order"`,
		},
		{
			name:     "legacy quotes names with special characters",
			schema:   "HR",
			object:   "Order Lines",
			expected: `HR."Order Lines"`,
		},
		{
			name:     "legacy accepts dollar and hash",
			schema:   "SYS",
			object:   "V$SESSION#1",
			expected: "SYS.V$SESSION#1",
		},
		{
			name:     "already quoted identifiers are kept",
			schema:   `"hr"`,
			object:   `"Employees"`,
			expected: `"hr"."Employees"`,
		},
		{
			name:     "quote all",
			opts:     dialect.OracleOptions{Quoting: dialect.QuotingAll},
			schema:   "LIQUIBASE",
			object:   "addgrant",
			expected: `"LIQUIBASE"."addgrant"`,
		},
		{
			name:     "quote reserved leaves special characters alone",
			opts:     dialect.OracleOptions{Quoting: dialect.QuotingReserved},
			schema:   "HR",
			object:   "TABLE",
			expected: `HR."TABLE"`,
		},
		{
			name:     "catalog used as schema",
			catalog:  "HR",
			object:   "EMPLOYEES",
			expected: "HR.EMPLOYEES",
		},
		{
			name:     "schema wins over catalog",
			catalog:  "IGNORED",
			schema:   "HR",
			object:   "EMPLOYEES",
			expected: "HR.EMPLOYEES",
		},
		{
			name:     "default schema applied when enabled",
			opts:     dialect.OracleOptions{DefaultSchema: "APP", IncludeDefaultSchema: true},
			object:   "EMPLOYEES",
			expected: "APP.EMPLOYEES",
		},
		{
			name:     "default schema ignored when disabled",
			opts:     dialect.OracleOptions{DefaultSchema: "APP"},
			object:   "EMPLOYEES",
			expected: "EMPLOYEES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ora, err := dialect.NewOracle(tt.opts)
			require.NoError(t, err)

			got, err := ora.EscapeObjectName(tt.catalog, tt.schema, tt.object)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestOracle_EscapeObjectNameErrors(t *testing.T) {
	ora, err := dialect.NewOracle(dialect.OracleOptions{})
	require.NoError(t, err)

	_, err = ora.EscapeObjectName("", "HR", "")
	require.True(t, errors.Is(err, dialect.ErrEmptyIdentifier))

	_, err = ora.EscapeObjectName("", "HR", strings.Repeat("A", 129))
	require.True(t, errors.Is(err, dialect.ErrIdentifierTooLong))
	require.Contains(t, err.Error(), "129 bytes (max 128)")

	got, err := ora.EscapeObjectName("", "HR", strings.Repeat("A", 128))
	require.NoError(t, err)
	require.Equal(t, "HR."+strings.Repeat("A", 128), got)
}

func TestIsOracleReservedWord(t *testing.T) {
	require.True(t, dialect.IsOracleReservedWord("SELECT"))
	require.True(t, dialect.IsOracleReservedWord("varchar2"))
	require.False(t, dialect.IsOracleReservedWord("EMPLOYEES"))
}
