package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldSort   = "sort"

	// Analysis fields.
	FieldLanguage        = "language"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesErrored    = "files_errored"
	FieldCodeLines       = "code_lines"
	FieldCommentLines    = "comment_lines"

	// Version fields.
	FieldVersion   = "version"
	FieldCommit    = "commit"
	FieldBuilt     = "built"
	FieldGoVersion = "go_version"
)
