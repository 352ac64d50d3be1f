package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/changelog"
	"github.com/pseudomuto/orakeeper/pkg/config"
	"github.com/pseudomuto/orakeeper/pkg/consts"
)

var (
	//go:embed embed/changelog.xml
	defaultChangelog []byte

	//go:embed embed/orakeeper.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		"db":                    {Mode: os.ModeDir | consts.ModeDir},
		consts.DefaultChangelog: {Data: defaultChangelog},
		consts.ConfigFile:       {Data: defaultConfig},
	}
)

// Project is an orakeeper project rooted at a directory.
type Project struct {
	root   string
	config *config.Config
}

// New creates a new Project instance. The path should point to an existing
// directory that will serve as the project root.
//
// Example:
//
//	proj := project.New("/path/to/my/project")
//	if err := proj.Initialize(); err != nil {
//		log.Fatal(err)
//	}
//
//	cl, err := proj.LoadChangeLog(parser)
//	if err != nil {
//		log.Fatal(err)
//	}
func New(path string) *Project {
	return &Project{root: path}
}

// Root returns the project directory.
func (p *Project) Root() string {
	return p.root
}

// Initialize creates the project layout (orakeeper.yaml and
// db/changelog.xml) and loads the configuration. It only creates missing
// files and directories, existing content is preserved.
func (p *Project) Initialize() error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	// Walk the embedded FS and create missing files/directories
	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}

			continue
		}

		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory %s", parentDir)
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	return p.Load()
}

// Load reads the project configuration, falling back to the defaults when
// orakeeper.yaml does not exist.
func (p *Project) Load() error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	cfg, err := config.Load(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", consts.ConfigFile)
	}

	p.config = cfg
	return nil
}

// Config returns the loaded configuration, or the defaults before Load.
func (p *Project) Config() *config.Config {
	if p.config == nil {
		return config.Default()
	}
	return p.config
}

// ChangelogPath returns the changelog path, relative to the project root
// unless configured as an absolute path.
func (p *Project) ChangelogPath() string {
	path := p.Config().Changelog
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.root, path)
}

// LoadChangeLog parses the project changelog. Changesets are identified by
// the changelog path as configured, so identifiers do not depend on where
// the project is checked out.
func (p *Project) LoadChangeLog(parser *changelog.Parser) (*changelog.ChangeLog, error) {
	path := p.ChangelogPath()
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open changelog: %s", path)
	}
	defer func() { _ = f.Close() }()

	return parser.Parse(filepath.ToSlash(filepath.Clean(p.Config().Changelog)), f)
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}
