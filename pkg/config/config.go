// Package config defines core configuration types for codestat.
// These types are pure data structures with no dependency on config loaders.
package config

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// IsValid returns true for a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for codestat.
type Config struct {
	// Format specifies the output format ("text", "table" or "json").
	Format OutputFormat `yaml:"format" toml:"format"`

	// Sort selects the ordering of report views ("name" or "code").
	Sort string `yaml:"sort" toml:"sort"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// FollowSymlinks enables traversal of directory symlinks.
	FollowSymlinks bool `yaml:"follow_symlinks" toml:"follow_symlinks"`

	// PerFile adds a per-file breakdown to the report.
	PerFile bool `yaml:"per_file" toml:"per_file"`

	// Jobs specifies the number of parallel workers (0 = auto).
	Jobs int `yaml:"jobs" toml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Compact minifies JSON output.
	Compact bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format: FormatText,
		Sort:   "name",
		Jobs:   0,
	}
}
