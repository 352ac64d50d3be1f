package changelog

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"gopkg.in/yaml.v3"
)

type (
	yamlChangeLog struct {
		DatabaseChangeLog []yamlEntry `yaml:"databaseChangeLog"`
	}

	yamlEntry struct {
		ChangeSet *yamlChangeSet `yaml:"changeSet"`
	}

	yamlChangeSet struct {
		ID       string                 `yaml:"id"`
		Author   string                 `yaml:"author"`
		Comment  string                 `yaml:"comment"`
		Context  string                 `yaml:"context"`
		Contexts string                 `yaml:"contexts"`
		Changes  []map[string]yaml.Node `yaml:"changes"`
		Rollback yaml.Node              `yaml:"rollback"`
	}
)

func (p *Parser) parseYAML(path string, r io.Reader) (*ChangeLog, error) {
	var doc yamlChangeLog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &ChangeLog{Path: path}, nil
		}
		return nil, errors.Wrap(err, "failed to decode yaml")
	}

	cl := &ChangeLog{Path: path}
	for i, entry := range doc.DatabaseChangeLog {
		if entry.ChangeSet == nil {
			return nil, errors.Errorf("entry %d is not a changeSet", i)
		}

		cs, err := p.yamlChangeSet(path, entry.ChangeSet)
		if err != nil {
			return nil, err
		}
		cl.ChangeSets = append(cl.ChangeSets, cs)
	}

	return cl, nil
}

func (p *Parser) yamlChangeSet(path string, y *yamlChangeSet) (*ChangeSet, error) {
	contexts := y.Context
	if contexts == "" {
		contexts = y.Contexts
	}

	cs := &ChangeSet{
		ID:       y.ID,
		Author:   y.Author,
		Comment:  y.Comment,
		Contexts: splitContexts(contexts),
		Path:     path,
	}

	for _, entry := range y.Changes {
		if len(entry) != 1 {
			return nil, errors.Errorf("changeset %s: each change must have exactly one type", cs.Identifier())
		}

		for name, node := range entry {
			attrs, err := yamlAttributes(&node)
			if err != nil {
				return nil, errors.Wrapf(err, "changeset %s: %s", cs.Identifier(), name)
			}

			c, err := p.createChange(name, attrs)
			if err != nil {
				return nil, errors.Wrapf(err, "changeset %s", cs.Identifier())
			}
			cs.Changes = append(cs.Changes, c)
		}
	}

	return cs, nil
}

// yamlAttributes flattens a mapping of scalars into change attributes.
func yamlAttributes(node *yaml.Node) (change.Attributes, error) {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode attributes")
	}

	attrs := make(change.Attributes, len(raw))
	for k, v := range raw {
		switch v.(type) {
		case map[string]any, []any:
			return nil, errors.Errorf("attribute %s must be a scalar", k)
		case nil:
			attrs[k] = ""
		default:
			attrs[k] = fmt.Sprint(v)
		}
	}

	return attrs, nil
}
