package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// validate parses and validates the changelog. Warnings are logged, errors
// fail the command.
//
// Example:
//
//	orakeeper validate
//	orakeeper validate --changelog db/hotfix.yaml
func validate(p changelogParams) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate the changelog",
		Flags: []cli.Flag{changelogFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ws, err := openWorkspace(ctx, cmd, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Changelog %s is valid (%d changesets)\n", ws.changelog.Path, len(ws.changelog.ChangeSets))
			return nil
		},
	}
}
