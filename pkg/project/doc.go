// Package project manages the on-disk layout of an orakeeper project.
//
// A project follows this layout:
//
//	project-root/
//	├── orakeeper.yaml          # Project configuration
//	└── db/
//	    └── changelog.xml       # Changelog (xml, yaml or formatted sql)
//
// Initialization is idempotent: only missing files and directories are
// created, existing content is preserved.
//
// # Usage Example
//
//	proj := project.New("/path/to/my/project")
//	if err := proj.Initialize(); err != nil {
//		log.Fatal("Failed to initialize project:", err)
//	}
//
//	cl, err := proj.LoadChangeLog(changelog.NewParser(registry))
//	if err != nil {
//		log.Fatal("Failed to load changelog:", err)
//	}
package project
