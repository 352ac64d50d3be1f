// Package change provides the declarative, changelog-facing migration
// instructions and the registry used to find them by name.
//
// A change is immutable once constructed. The engine validates it, asks it
// for statements and reports its confirmation message once the statements
// have been applied:
//
//	c := change.NewRevokeObjectPermission(change.RevokeObjectPermissionParams{
//		SchemaName:    "HR",
//		ObjectName:    "EMPLOYEES",
//		RecipientList: "REPORTING",
//		Privileges:    permission.Set{Select: true, Update: true},
//	})
//
//	if err := c.Validate().Err(); err != nil {
//		log.Fatal(err)
//	}
//
//	stmts, _ := c.GenerateStatements(ora)
//	fmt.Println(c.ConfirmationMessage())
//	// Revoking grants on EMPLOYEES that had been given to REPORTING
//
// # Registry
//
// Change types are registered with a name, description and priority. The
// registry is built once at startup and handed to the components that need
// it (the changelog parser and the engine):
//
//	reg, _ := change.DefaultRegistry()
//	meta, _ := reg.Metadata(c)
//	fmt.Println(meta.Name, meta.Priority) // revokeObjectPermission 201
//
//	c, err := reg.Create("revokeObjectPermission", change.Attributes{
//		"objectName":    "EMPLOYEES",
//		"recipientList": "REPORTING",
//		"select":        "true",
//	})
package change
