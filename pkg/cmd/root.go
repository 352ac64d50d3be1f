package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/project"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the orakeeper CLI application and runs it from an fx start
// hook, shutting the app down with the command's exit code.
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//   - --verbose, -v: Enable debug logging
//
// Before any command runs, the working directory is changed to --dir and the
// project (orakeeper.yaml, if present) is loaded into the command context.
//
// Example usage:
//
//	orakeeper init
//	orakeeper --dir /path/to/project update-sql --context prod
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "orakeeper",
		Usage: "A changelog driven migration tool for Oracle Database",
		Description: `orakeeper reads a changelog of changesets, renders each change into
Oracle SQL and either prints the resulting script or applies it to a
database.`,
		Version:  p.Version.Version,
		Flags:    globalFlags(),
		Before:   loadProject,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "the project directory",
			Value:       ".",
			DefaultText: "Current directory",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
}

// loadProject changes to the project directory and stores the project in the
// context.
func loadProject(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := os.Chdir(cmd.String("dir")); err != nil {
		return ctx, errors.Wrapf(err, "failed to change to project directory: %s", cmd.String("dir"))
	}

	pwd, err := os.Getwd()
	if err != nil {
		return ctx, errors.Wrap(err, "failed to get current working directory")
	}

	proj := project.New(pwd)
	if err := proj.Load(); err != nil {
		return ctx, err
	}

	slog.Debug("Loaded project", "dir", pwd, "changelog", proj.Config().Changelog)
	return project.WithContext(ctx, proj), nil
}

// currentProject returns the project loaded by the root command, or the
// project in the working directory when commands run on their own.
func currentProject(ctx context.Context) (*project.Project, error) {
	if proj, ok := project.FromContext(ctx); ok {
		return proj, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current working directory")
	}

	proj := project.New(pwd)
	if err := proj.Load(); err != nil {
		return nil, err
	}

	return proj, nil
}
