package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "orakeeper.yaml"

	// DefaultChangelog is the changelog used when none is configured
	DefaultChangelog = "db/changelog.xml"

	// DefaultWorkers bounds the number of changesets rendered concurrently
	DefaultWorkers = 4

	// DefaultEndDelimiter terminates each statement in generated SQL scripts
	DefaultEndDelimiter = ";"

	// MaxIdentifierLength is the longest identifier (in bytes) Oracle accepts
	MaxIdentifierLength = 128
)
