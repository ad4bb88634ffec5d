// Package configloader provides configuration discovery and resolution:
// upward project-file search, XDG user config, environment overrides and
// hierarchical merging.
package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
// Missing files are represented as empty strings.
type ConfigPaths struct {
	// User is the user-level config path
	// (e.g. ~/.config/codestat/config.yaml).
	User string

	// Project is the project-level config path (e.g. ./.codestat.yml),
	// found by searching upward from the working directory.
	Project string

	// Explicit is a config path provided via the --config flag.
	Explicit string
}

// projectConfigFiles are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".codestat.yml",
	".codestat.yaml",
	".codestat.toml",
}

// userConfigFiles are the file names tried under the XDG config directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var userConfigFiles = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
}

// vcsRootMarkers are directories that stop the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(workDir string) *ConfigPaths {
	return &ConfigPaths{
		User:    discoverUserConfig(),
		Project: discoverProjectConfig(workDir),
	}
}

// discoverUserConfig finds the user config under the XDG config directory.
func discoverUserConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range userConfigFiles {
		candidate := filepath.Join(configDir, "codestat", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// discoverProjectConfig searches upward from workDir for a project config,
// stopping at a VCS root or the filesystem root.
func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}

		atVCSRoot := false
		for _, marker := range vcsRootMarkers {
			if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
				atVCSRoot = true
				break
			}
		}

		parent := filepath.Dir(dir)
		if atVCSRoot || parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
