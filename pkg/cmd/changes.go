package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/urfave/cli/v3"
)

// changes lists the registered change types. When several implementations
// share a name only the one in use (the highest priority) is shown.
//
// Example output:
//
//	NAME                    DESCRIPTION                      PRIORITY
//	revokeObjectPermission  Revoke Schema Object Permission  201
//	sql                     Execute custom SQL               1
func changes(reg *change.Registry) *cli.Command {
	return &cli.Command{
		Name:  "changes",
		Usage: "List the available change types",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := tabwriter.NewWriter(cmd.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tPRIORITY")

			for _, r := range reg.Registrations() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", r.Metadata.Name, r.Metadata.Description, r.Metadata.Priority)
			}

			return errors.Wrap(w.Flush(), "failed to write change types")
		},
	}
}
