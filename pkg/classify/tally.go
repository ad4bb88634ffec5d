// Package classify implements the grammar-parameterized line classifier and
// the per-file analyzer built on top of it. The package is pure: it consumes
// a grammar plus a file's lines and produces counts, with no filesystem
// access, so it can be tested against synthetic fixtures.
package classify

// FileTally holds the line counts for one analyzed file.
//
// Invariant: CodeLines + CommentLines + BlankLines + HeaderLines == TotalLines.
// Header lines are the leading block-comment span excluded from both the code
// and comment tallies; they still count toward the total.
type FileTally struct {
	Path         string
	TotalLines   int
	CodeLines    int
	CommentLines int
	BlankLines   int
	HeaderLines  int

	// Unterminated reports that the file ended inside an open block comment.
	// Not an error; callers may log it as a data point.
	Unterminated bool
}

// Add accumulates another tally's counts into t. Path is left untouched.
func (t *FileTally) Add(other FileTally) {
	t.TotalLines += other.TotalLines
	t.CodeLines += other.CodeLines
	t.CommentLines += other.CommentLines
	t.BlankLines += other.BlankLines
	t.HeaderLines += other.HeaderLines
}
