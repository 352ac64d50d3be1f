package cmd

import (
	"context"

	"github.com/pseudomuto/orakeeper/pkg/changelog"
	"github.com/pseudomuto/orakeeper/pkg/engine"
	"github.com/pseudomuto/orakeeper/pkg/project"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// changelogParams are the dependencies of commands working on a changelog.
type changelogParams struct {
	fx.In

	Parser  *changelog.Parser
	Engines engine.Builder
}

// workspace is what a changelog command operates on.
type workspace struct {
	project   *project.Project
	changelog *changelog.ChangeLog
	engine    *engine.Engine
	contexts  []string
}

func changelogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "changelog",
		Aliases:     []string{"c"},
		Usage:       "the changelog file",
		DefaultText: "changelog from orakeeper.yaml",
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

func contextFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:        "context",
		Usage:       "only run changesets matching the context (repeatable)",
		DefaultText: "contexts from orakeeper.yaml",
	}
}

// openWorkspace loads and validates the changelog selected by the command
// flags and builds an engine for the project configuration.
func openWorkspace(ctx context.Context, cmd *cli.Command, p changelogParams) (*workspace, error) {
	proj, err := currentProject(ctx)
	if err != nil {
		return nil, err
	}

	var cl *changelog.ChangeLog
	if path := cmd.String("changelog"); path != "" {
		cl, err = p.Parser.ParseFile(path)
	} else {
		cl, err = proj.LoadChangeLog(p.Parser)
	}
	if err != nil {
		return nil, err
	}

	eng, err := p.Engines(proj.Config())
	if err != nil {
		return nil, err
	}

	if err := eng.Validate(cl); err != nil {
		return nil, err
	}

	contexts := proj.Config().Contexts
	if cmd.IsSet("context") {
		contexts = cmd.StringSlice("context")
	}

	return &workspace{
		project:   proj,
		changelog: cl,
		engine:    eng,
		contexts:  contexts,
	}, nil
}
