package sqlgen

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/consts"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/statement"
	"github.com/pseudomuto/orakeeper/pkg/utils"
)

// RevokeObjectPermissionGenerator renders RevokeObjectPermission statements
// as Oracle REVOKE statements:
//
//	REVOKE <privileges> ON <escaped object> FROM <recipients>
type RevokeObjectPermissionGenerator struct{}

func (RevokeObjectPermissionGenerator) StatementType() string {
	return statement.TypeRevokeObjectPermission
}

func (RevokeObjectPermissionGenerator) Priority() int {
	return PriorityDatabase
}

func (RevokeObjectPermissionGenerator) Supports(stmt statement.Statement) bool {
	_, ok := stmt.(*statement.RevokeObjectPermission)
	return ok
}

func (g RevokeObjectPermissionGenerator) GenerateSQL(stmt statement.Statement, escaper dialect.IdentifierEscaper) ([]SQL, error) {
	revoke, ok := stmt.(*statement.RevokeObjectPermission)
	if !ok {
		return nil, errors.Errorf("unsupported statement type: %s", stmt.StatementType())
	}

	return g.Generate(revoke, escaper)
}

// Generate renders stmt into exactly one SQL statement.
func (RevokeObjectPermissionGenerator) Generate(stmt *statement.RevokeObjectPermission, escaper dialect.IdentifierEscaper) ([]SQL, error) {
	objectName, err := escaper.EscapeObjectName("", stmt.SchemaName(), stmt.ObjectName())
	if err != nil {
		return nil, err
	}

	granted := stmt.Privileges().Granted()
	privileges := make([]string, len(granted))
	for i, p := range granted {
		privileges[i] = string(p)
	}

	sql := utils.NewSQLBuilder().
		Revoke(privileges...).
		On(objectName).
		From(stmt.RecipientList()).
		String()

	return []SQL{NewSQL(sql, consts.DefaultEndDelimiter)}, nil
}
