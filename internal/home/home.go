// Package home resolves the ideafactory workspace directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the fallback workspace under $HOME when no
	// --workspace flag or config is given.
	DefaultDirName = ".ideafactory"

	// ConceptsDirName holds concept batch files, split by location.
	ConceptsDirName = "concepts"
	// StoriesDirName holds story development files.
	StoriesDirName = "stories"
	// TemplatesDirName holds the markdown templates for new files.
	TemplatesDirName = "templates"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
	// IndexFileName is the generated catalog file.
	IndexFileName = "INDEX.md"
)

// Locations are the concept batch subdirectories, in catalog order.
var Locations = []string{"generated", "developing", "favorites"}

// ValidLocation reports whether location names a known concepts subdirectory.
func ValidLocation(location string) bool {
	for _, loc := range Locations {
		if loc == location {
			return true
		}
	}
	return false
}

// Dir represents the workspace directory structure.
type Dir struct {
	path string
}

// New creates a Dir rooted at path, or at ~/.ideafactory when path is empty.
func New(path string) (*Dir, error) {
	if path == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(userHome, DefaultDirName)
	}
	return &Dir{path: path}, nil
}

// Path returns the workspace root.
func (d *Dir) Path() string {
	return d.path
}

// ConceptsPath returns the concepts directory.
func (d *Dir) ConceptsPath() string {
	return filepath.Join(d.path, ConceptsDirName)
}

// LocationPath returns the concepts subdirectory for a location
// (generated, developing, favorites).
func (d *Dir) LocationPath(location string) string {
	return filepath.Join(d.ConceptsPath(), location)
}

// StoriesPath returns the stories directory.
func (d *Dir) StoriesPath() string {
	return filepath.Join(d.path, StoriesDirName)
}

// TemplatesPath returns the templates directory.
func (d *Dir) TemplatesPath() string {
	return filepath.Join(d.path, TemplatesDirName)
}

// TemplatePath returns the path of a named template file.
func (d *Dir) TemplatePath(name string) string {
	return filepath.Join(d.TemplatesPath(), name)
}

// ConfigPath returns the path to the workspace config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// IndexPath returns the path to INDEX.md.
func (d *Dir) IndexPath() string {
	return filepath.Join(d.path, IndexFileName)
}

// BatchPath returns the file path for a batch id in a location.
func (d *Dir) BatchPath(location, batchID string) string {
	return filepath.Join(d.LocationPath(location), batchID+".md")
}

// StoryPath returns the file path for a story name (file stem).
func (d *Dir) StoryPath(name string) string {
	return filepath.Join(d.StoriesPath(), name+".md")
}

// EnsureExists creates the workspace directory tree if missing.
func (d *Dir) EnsureExists() error {
	for _, loc := range Locations {
		if err := os.MkdirAll(d.LocationPath(loc), 0o755); err != nil {
			return fmt.Errorf("failed to create concepts directory: %w", err)
		}
	}
	if err := os.MkdirAll(d.StoriesPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create stories directory: %w", err)
	}
	if err := os.MkdirAll(d.TemplatesPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}
	return nil
}

// Exists returns true if the workspace root exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the workspace config file exists.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
