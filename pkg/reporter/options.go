package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/codestat/pkg/analysis"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Compact uses compact/minified output where applicable.
	Compact bool

	// PerFile includes a per-file breakdown in addition to the
	// per-language view.
	PerFile bool

	// ShowSummary displays aggregate totals after results.
	ShowSummary bool

	// SortBy controls the order of language and file entries.
	SortBy analysis.SortField

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		Compact:     false,
		ShowSummary: true,
		SortBy:      analysis.SortByName,
	}
}

// analysisOptions derives analysis.Options from reporter options.
func (o Options) analysisOptions() analysis.Options {
	return analysis.Options{
		IncludeByFile: o.PerFile || o.Format == FormatJSON,
		SortBy:        o.SortBy,
		WorkingDir:    o.WorkingDir,
	}
}
