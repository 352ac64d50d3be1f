package sqlgen_test

import (
	"testing"

	"github.com/pseudomuto/orakeeper/pkg/sqlgen"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name:     "semicolons",
			sql:      "SELECT 1 FROM dual;SELECT 2 FROM dual;",
			expected: []string{"SELECT 1 FROM dual", "SELECT 2 FROM dual"},
		},
		{
			name:     "missing trailing semicolon",
			sql:      "SELECT 1 FROM dual;\nSELECT 2 FROM dual",
			expected: []string{"SELECT 1 FROM dual", "SELECT 2 FROM dual"},
		},
		{
			name:     "string literals",
			sql:      "INSERT INTO t VALUES ('a;b');INSERT INTO t VALUES ('it''s;')",
			expected: []string{"INSERT INTO t VALUES ('a;b')", "INSERT INTO t VALUES ('it''s;')"},
		},
		{
			name:     "quoted identifiers",
			sql:      `DROP TABLE "a;b";DROP TABLE "c"`,
			expected: []string{`DROP TABLE "a;b"`, `DROP TABLE "c"`},
		},
		{
			name:     "comments",
			sql:      "-- don't; stop\nSELECT 1 FROM dual; /* isn't; here */ SELECT 2 FROM dual;",
			expected: []string{"-- don't; stop\nSELECT 1 FROM dual", "/* isn't; here */ SELECT 2 FROM dual"},
		},
		{
			name: "only comments",
			sql:  "-- nothing\n/* at all */;\n;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := sqlgen.Split(tt.sql)
			require.NoError(t, err)
			require.Equal(t, tt.expected, stmts)
		})
	}
}
