// Package config reads the optional scriptdeps.yaml project file.  Every setting has a flag
// counterpart in the CLI; the file just saves retyping them per project.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project file looked for in the working directory when no explicit
// config path is given.
const DefaultFilename = "scriptdeps.yaml"

// Project models a scriptdeps.yaml file.
type Project struct {
	// SourceDir is the directory scanned for script modules.  Relative paths are resolved
	// against the config file's directory by the caller.
	SourceDir string `yaml:"source_dir,omitempty"`

	// Bundle is the output path for the bundle file.  Empty disables bundle writing.
	Bundle string `yaml:"bundle,omitempty"`

	// Includes and Excludes are filename patterns for the source scan.  An empty Includes
	// defaults to "*.js".
	Includes []string `yaml:"includes,omitempty"`
	Excludes []string `yaml:"excludes,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Project {
	return &Project{SourceDir: "."}
}

// Load reads and parses the project file at the given path.  A missing file is not an error;
// Load returns [Default] in that case.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", path, err)
	}
	if p.SourceDir == "" {
		p.SourceDir = "."
	}
	return p, nil
}
