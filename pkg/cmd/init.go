package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// initCmd creates the project layout in the project directory. Existing
// files are left untouched, so running it twice is harmless.
//
// Example:
//
//	orakeeper init
//	orakeeper --dir /path/to/project init
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new orakeeper project",
		Description: `Creates orakeeper.yaml and db/changelog.xml in the project directory
when they do not exist yet.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			proj, err := currentProject(ctx)
			if err != nil {
				return err
			}

			if err := proj.Initialize(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Initialized orakeeper project in %s\n", proj.Root())
			return nil
		},
	}
}
