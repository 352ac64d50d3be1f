package engine

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/pseudomuto/orakeeper/pkg/changelog"
	"github.com/pseudomuto/orakeeper/pkg/consts"
	"github.com/pseudomuto/orakeeper/pkg/dialect"
	"github.com/pseudomuto/orakeeper/pkg/sqlgen"
	"golang.org/x/sync/errgroup"
)

type (
	// Params contains everything needed to build an Engine.
	Params struct {
		// Registry resolves change metadata.
		Registry *change.Registry

		// Generators renders statements into SQL.
		Generators *sqlgen.Factory

		// Dialect escapes identifiers for the target database.
		Dialect dialect.Dialect

		// Workers bounds how many changesets are rendered at once
		// (defaults to consts.DefaultWorkers).
		Workers int

		// Logger receives progress and validation warnings
		// (defaults to slog.Default()).
		Logger *slog.Logger
	}

	// Engine renders and applies changelogs.
	Engine struct {
		registry   *change.Registry
		generators *sqlgen.Factory
		dialect    dialect.Dialect
		workers    int
		logger     *slog.Logger
	}

	// ChangeSetSQL is the rendered SQL of a changeset.
	ChangeSetSQL struct {
		ChangeSet *changelog.ChangeSet
		Changes   []*ChangeSQL

		// Hash is the h1 hash of every rendered statement.
		Hash string
	}

	// ChangeSQL is the rendered SQL of a single change.
	ChangeSQL struct {
		// Name is the registered change name (e.g. revokeObjectPermission).
		Name         string
		Confirmation string
		SQL          []sqlgen.SQL
	}
)

// New creates an engine from p.
func New(p Params) *Engine {
	workers := p.Workers
	if workers <= 0 {
		workers = consts.DefaultWorkers
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		registry:   p.Registry,
		generators: p.Generators,
		dialect:    p.Dialect,
		workers:    workers,
		logger:     logger,
	}
}

// Validate validates cl, logging every warning. It fails when any error was
// found.
func (e *Engine) Validate(cl *changelog.ChangeLog) error {
	v := cl.Validate()
	for _, w := range v.Warnings {
		e.logger.Warn("Validation warning", "changelog", cl.Path, "warning", w)
	}

	if err := v.Err(); err != nil {
		return errors.Wrapf(err, "changelog %s is invalid", cl.Path)
	}

	return nil
}

// GenerateSQL renders every changeset of cl matching contexts. Changesets
// are rendered concurrently; the result keeps changelog order.
func (e *Engine) GenerateSQL(ctx context.Context, cl *changelog.ChangeLog, contexts []string) ([]*ChangeSetSQL, error) {
	return e.render(ctx, cl.Filter(contexts))
}

func (e *Engine) render(ctx context.Context, sets []*changelog.ChangeSet) ([]*ChangeSetSQL, error) {
	out := make([]*ChangeSetSQL, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, cs := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rendered, err := e.renderChangeSet(cs)
			if err != nil {
				return errors.Wrapf(err, "failed to generate sql for changeset %s", cs.Identifier())
			}

			out[i] = rendered
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Engine) renderChangeSet(cs *changelog.ChangeSet) (*ChangeSetSQL, error) {
	rendered := &ChangeSetSQL{
		ChangeSet: cs,
		Changes:   make([]*ChangeSQL, 0, len(cs.Changes)),
	}

	var all []string
	for _, c := range cs.Changes {
		meta, err := e.registry.Metadata(c)
		if err != nil {
			return nil, err
		}

		stmts, err := c.GenerateStatements(e.dialect)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate statements for %s", meta.Name)
		}

		rc := &ChangeSQL{
			Name:         meta.Name,
			Confirmation: c.ConfirmationMessage(),
		}

		for _, stmt := range stmts {
			sqls, err := e.generators.GenerateSQL(stmt, e.dialect)
			if err != nil {
				return nil, err
			}

			for _, s := range sqls {
				all = append(all, s.ToSQL())
			}
			rc.SQL = append(rc.SQL, sqls...)
		}

		rendered.Changes = append(rendered.Changes, rc)
	}

	rendered.Hash = computeHash(strings.Join(all, "\n"))
	return rendered, nil
}

// Statements returns every rendered statement of the changeset in order.
func (c *ChangeSetSQL) Statements() []sqlgen.SQL {
	var out []sqlgen.SQL
	for _, rc := range c.Changes {
		out = append(out, rc.SQL...)
	}
	return out
}

// computeHash computes a SHA256 hash in h1 format for the given content.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "h1:" + base64.StdEncoding.EncodeToString(hash[:])
}
