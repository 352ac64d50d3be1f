// Package engine drives a changelog through the change, statement and
// generator layers.
//
// The engine validates a changelog, renders the SQL of every changeset that
// matches the requested contexts and either writes it out as a script
// (update-sql) or executes it statement by statement against a database
// connection (update).
//
// Example usage:
//
//	eng := engine.New(engine.Params{
//		Registry:   registry,
//		Generators: sqlgen.DefaultFactory(),
//		Dialect:    oracle,
//	})
//
//	rendered, err := eng.GenerateSQL(ctx, cl, []string{"prod"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := eng.WriteSQL(os.Stdout, rendered); err != nil {
//		log.Fatal(err)
//	}
package engine
