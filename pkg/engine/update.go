package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/changelog"
)

const (
	// StatusSuccess indicates the changeset was applied
	StatusSuccess ExecutionStatus = "success"

	// StatusFailed indicates a statement of the changeset failed
	StatusFailed ExecutionStatus = "failed"

	// StatusSkipped indicates the changeset did not match the requested contexts
	StatusSkipped ExecutionStatus = "skipped"
)

type (
	// Execer runs a single SQL statement. *sql.DB, *sql.Conn and *sql.Tx
	// all satisfy it.
	Execer interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	}

	// ExecutionResult contains the result of applying a single changeset.
	ExecutionResult struct {
		// ChangeSet is the changeset identifier (path::id::author)
		ChangeSet string

		// DeploymentID is shared by every changeset of one Update call
		DeploymentID string

		// Status indicates the outcome of the changeset
		Status ExecutionStatus

		// Error contains any error that occurred during execution
		Error error

		// ExecutionTime records how long the changeset took to execute
		ExecutionTime time.Duration

		// StatementsApplied indicates how many statements were successfully executed
		StatementsApplied int

		// TotalStatements is the total number of statements in the changeset
		TotalStatements int

		// Hash is the h1 hash of the changeset's rendered SQL
		Hash string
	}

	// ExecutionStatus represents the outcome of applying a changeset.
	ExecutionStatus string
)

// Update applies every changeset of cl matching contexts, in order and
// statement by statement. Execution stops at the first failing changeset;
// its result is the last one returned. Changesets not matching contexts are
// reported as skipped.
//
// The returned error is only set when the SQL could not be rendered, in which
// case nothing was executed.
func (e *Engine) Update(ctx context.Context, db Execer, cl *changelog.ChangeLog, contexts []string) ([]*ExecutionResult, error) {
	rendered, err := e.GenerateSQL(ctx, cl, contexts)
	if err != nil {
		return nil, err
	}

	byChangeSet := make(map[*changelog.ChangeSet]*ChangeSetSQL, len(rendered))
	for _, r := range rendered {
		byChangeSet[r.ChangeSet] = r
	}

	deploymentID := uuid.NewString()
	e.logger.Info("Starting deployment", "deployment", deploymentID, "changelog", cl.Path, "changesets", len(rendered))

	results := make([]*ExecutionResult, 0, len(cl.ChangeSets))
	for _, cs := range cl.ChangeSets {
		r, ok := byChangeSet[cs]
		if !ok {
			e.logger.Debug("Skipping changeset", "changeset", cs.Identifier(), "contexts", cs.Contexts)
			results = append(results, &ExecutionResult{
				ChangeSet:    cs.Identifier(),
				DeploymentID: deploymentID,
				Status:       StatusSkipped,
			})
			continue
		}

		result := e.execute(ctx, db, r)
		result.DeploymentID = deploymentID
		results = append(results, result)

		// Stop execution on first failure
		if result.Status == StatusFailed {
			e.logger.Error("Changeset failed", "changeset", result.ChangeSet, "error", result.Error)
			break
		}

		e.logger.Info("Changeset applied",
			"changeset", result.ChangeSet,
			"statements", result.StatementsApplied,
			"duration", result.ExecutionTime,
		)
	}

	return results, nil
}

func (e *Engine) execute(ctx context.Context, db Execer, cs *ChangeSetSQL) *ExecutionResult {
	startTime := time.Now()
	stmts := cs.Statements()

	result := &ExecutionResult{
		ChangeSet:       cs.ChangeSet.Identifier(),
		Status:          StatusSuccess,
		TotalStatements: len(stmts),
		Hash:            cs.Hash,
	}

	for i, stmt := range stmts {
		e.logger.Debug("Executing statement", "changeset", result.ChangeSet, "sql", stmt.ToSQL())

		if _, err := db.ExecContext(ctx, stmt.ToSQL()); err != nil {
			result.Status = StatusFailed
			result.Error = errors.Wrapf(err, "failed to execute statement %d: %s", i+1, stmt.ToSQL())
			break
		}

		result.StatementsApplied++
	}

	result.ExecutionTime = time.Since(startTime)
	return result
}
