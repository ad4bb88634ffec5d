// Package analysis transforms a runner.Result into a report with
// per-language aggregates and optional per-file detail.
package analysis

// SortField selects the ordering of per-language and per-file views.
type SortField string

const (
	// SortByName orders alphabetically (default, always deterministic).
	SortByName SortField = "name"
	// SortByCode orders by code-line count, descending.
	SortByCode SortField = "code"
)

// IsValid returns true for a known sort field.
func (s SortField) IsValid() bool {
	switch s {
	case SortByName, SortByCode:
		return true
	default:
		return false
	}
}

// Options controls report construction.
type Options struct {
	// IncludeByFile adds the per-file view to the report.
	IncludeByFile bool

	// SortBy selects the ordering of the aggregate views.
	SortBy SortField

	// WorkingDir, when set, makes file paths relative for display.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile: false,
		SortBy:        SortByName,
	}
}
