package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// updateSQL prints the SQL update would run without touching a database.
//
// Example:
//
//	orakeeper update-sql
//	orakeeper update-sql --context prod > deploy.sql
func updateSQL(p changelogParams) *cli.Command {
	return &cli.Command{
		Name:  "update-sql",
		Usage: "Print the SQL for the changelog",
		Flags: []cli.Flag{changelogFlag(), contextFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ws, err := openWorkspace(ctx, cmd, p)
			if err != nil {
				return err
			}

			rendered, err := ws.engine.GenerateSQL(ctx, ws.changelog, ws.contexts)
			if err != nil {
				return err
			}

			return ws.engine.WriteSQL(cmd.Writer, rendered)
		},
	}
}
