// Package grammar describes the comment syntax of supported languages.
// Each language is a declarative record consumed by the generic classifier
// in pkg/classify; adding a language means adding one table entry here.
package grammar

// BlockPair is a block-comment delimiter pair, e.g. {"/*", "*/"}.
type BlockPair struct {
	Start string
	End   string
}

// Grammar is the immutable comment-syntax description of one language.
// Instances are shared read-only across files and goroutines.
type Grammar struct {
	// Name is the display name used in reports, e.g. "C/C++".
	Name string

	// LineMarkers are the strings that start a comment running to end of line.
	LineMarkers []string

	// BlockPairs are the block-comment delimiter pairs, in match order.
	// A language may support more than one style (Pascal: "(* *)" and "{ }").
	BlockPairs []BlockPair

	// Nested reports whether block comments of this language may nest.
	Nested bool

	// Directives are tokens that look like comment starts but denote
	// compiler or preprocessor directives and must count as code
	// (Fortran "!DIR$", Pascal "{$"). Checked before any comment marker,
	// in declaration order.
	Directives []string
}
