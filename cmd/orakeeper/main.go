package main

import (
	"context"
	"os"

	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/pseudomuto/orakeeper/pkg/changelog"
	"github.com/pseudomuto/orakeeper/pkg/cmd"
	"github.com/pseudomuto/orakeeper/pkg/engine"
	"github.com/pseudomuto/orakeeper/pkg/sqlgen"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
		),
		change.Module,
		sqlgen.Module,
		changelog.Module,
		engine.Module,
		cmd.Module,
	).Run()
}
