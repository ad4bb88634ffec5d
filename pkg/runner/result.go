package runner

import "github.com/yaklabco/codestat/pkg/classify"

// FileOutcome is the result of analyzing a single discovered file.
type FileOutcome struct {
	// Path is the absolute path of the analyzed file.
	Path string

	// Language is the display name of the file's language.
	Language string

	// Tally holds the line counts. Only meaningful when Err is nil.
	Tally classify.FileTally

	// Err is set when the file could not be analyzed (unreadable, binary).
	// Errored files are reported per file and excluded from aggregates.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of analyzable files found.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be analyzed.
	FilesErrored int

	// TotalLines, CodeLines and CommentLines aggregate the processed files.
	TotalLines   int
	CodeLines    int
	CommentLines int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file failed to analyze.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.TotalLines += outcome.Tally.TotalLines
	r.Stats.CodeLines += outcome.Tally.CodeLines
	r.Stats.CommentLines += outcome.Tally.CommentLines
}
