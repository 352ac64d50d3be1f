package changelog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
)

// Parser loads changelogs and builds their changes through a registry.
type Parser struct {
	registry *change.Registry
}

// NewParser creates a parser resolving change names with registry.
func NewParser(registry *change.Registry) *Parser {
	return &Parser{registry: registry}
}

// ParseFile loads the changelog at path. The format is chosen by extension.
func (p *Parser) ParseFile(path string) (*ChangeLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open changelog: %s", path)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(path, f)
}

// Parse reads a changelog from r. The path is used to pick the format and to
// identify changesets:
//   - .xml: XML changelog
//   - .yaml, .yml: YAML changelog
//   - .sql: formatted SQL changelog
func (p *Parser) Parse(path string, r io.Reader) (*ChangeLog, error) {
	var (
		cl  *ChangeLog
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		cl, err = p.parseXML(path, r)
	case ".yaml", ".yml":
		cl, err = p.parseYAML(path, r)
	case ".sql":
		cl, err = p.parseFormattedSQL(path, r)
	default:
		return nil, errors.Errorf("unsupported changelog format: %s", path)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse changelog: %s", path)
	}

	return cl, nil
}

func (p *Parser) createChange(name string, attrs change.Attributes) (change.Change, error) {
	return p.registry.Create(name, attrs)
}
