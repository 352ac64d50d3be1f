// Package sqlgen renders statements into dialect-specific SQL text.
//
// Generators are registered with a Factory keyed by statement type. When more
// than one generator supports a statement, the one with the highest priority
// is used. Generators are stateless and may be called concurrently.
//
// # Usage Example
//
//	ora, _ := dialect.NewOracle(dialect.OracleOptions{})
//	factory := sqlgen.DefaultFactory()
//
//	stmt := statement.NewRevokeObjectPermission(
//		permission.Target{Schema: "HR", Name: "EMPLOYEES"},
//		"REPORTING",
//		permission.Set{Select: true, Update: true},
//	)
//
//	sqls, err := factory.GenerateSQL(stmt, ora)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(sqls[0].ToSQL())
//	// REVOKE SELECT,UPDATE ON HR.EMPLOYEES FROM REPORTING
//
// # Privilege Order
//
// REVOKE statements always list privileges in the order SELECT, UPDATE,
// INSERT, DELETE, EXECUTE, REFERENCES, INDEX, joined by a comma with no
// space. A statement with no privileges renders an empty list, which leaves
// two spaces after REVOKE.
package sqlgen
