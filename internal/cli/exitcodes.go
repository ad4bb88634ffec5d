package cli

import "errors"

// Exit codes for codestat (sysexits-style).
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNoFiles indicates no analyzable files were found.
	ExitNoFiles = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// exitError carries an exit code alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error    { return &exitError{code: ExitInvalidUsage, err: err} }
func configError(err error) error   { return &exitError{code: ExitConfigError, err: err} }
func internalError(err error) error { return &exitError{code: ExitInternalError, err: err} }
func ioError(err error) error       { return &exitError{code: ExitIOError, err: err} }

// ExitCode maps an error returned by command execution to a process exit code.
// Errors without an explicit code are treated as invalid usage, which is what
// flag parse failures surface as.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrNoFilesFound) {
		return ExitNoFiles
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitInvalidUsage
}
