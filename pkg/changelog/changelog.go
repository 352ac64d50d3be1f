package changelog

import (
	"strings"

	"github.com/pseudomuto/orakeeper/pkg/change"
)

type (
	// ChangeLog is an ordered list of changesets loaded from a single file.
	ChangeLog struct {
		// Path is the file the changelog was loaded from.
		Path string

		// ChangeSets in the order they appear in the file.
		ChangeSets []*ChangeSet
	}

	// ChangeSet is the unit of deployment: an ordered list of changes applied
	// together and identified by path, id and author.
	ChangeSet struct {
		ID       string
		Author   string
		Comment  string
		Contexts []string
		Path     string
		Changes  []change.Change
	}
)

// Identifier returns the unique identifier of the changeset
// (path::id::author).
func (cs *ChangeSet) Identifier() string {
	return cs.Path + "::" + cs.ID + "::" + cs.Author
}

// MatchesContexts reports whether the changeset should run for the given
// contexts. A changeset without contexts always runs, as does every changeset
// when no contexts are requested.
func (cs *ChangeSet) MatchesContexts(contexts []string) bool {
	if len(cs.Contexts) == 0 || len(contexts) == 0 {
		return true
	}

	for _, want := range contexts {
		for _, have := range cs.Contexts {
			if strings.EqualFold(strings.TrimSpace(want), have) {
				return true
			}
		}
	}

	return false
}

// Filter returns the changesets matching contexts, in order.
func (cl *ChangeLog) Filter(contexts []string) []*ChangeSet {
	out := make([]*ChangeSet, 0, len(cl.ChangeSets))
	for _, cs := range cl.ChangeSets {
		if cs.MatchesContexts(contexts) {
			out = append(out, cs)
		}
	}
	return out
}

// Validate checks changeset identity and every change. Messages are prefixed
// with the changeset identifier.
func (cl *ChangeLog) Validate() *change.Validation {
	v := &change.Validation{}
	seen := make(map[string]struct{}, len(cl.ChangeSets))

	for _, cs := range cl.ChangeSets {
		id := cs.Identifier()
		if cs.ID == "" {
			v.AddError("%s: changeset id is required", id)
		}
		if cs.Author == "" {
			v.AddError("%s: changeset author is required", id)
		}
		if _, dup := seen[id]; dup {
			v.AddError("%s: duplicate changeset", id)
		}
		seen[id] = struct{}{}

		if len(cs.Changes) == 0 {
			v.AddWarning("%s: changeset has no changes", id)
		}

		for _, c := range cs.Changes {
			cv := c.Validate()
			for _, msg := range cv.Errors {
				v.AddError("%s: %s", id, msg)
			}
			for _, msg := range cv.Warnings {
				v.AddWarning("%s: %s", id, msg)
			}
		}
	}

	return v
}

// splitContexts parses a comma separated context list.
func splitContexts(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
