package classify

import (
	"strings"

	"github.com/yaklabco/codestat/pkg/grammar"
)

// Kind is the classification of one physical line.
type Kind int

const (
	// Blank is a line with no non-whitespace characters.
	Blank Kind = iota
	// Code is a line containing code, possibly with a trailing comment.
	Code
	// Comment is a line whose non-whitespace content is comment only.
	Comment
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Code:
		return "code"
	case Comment:
		return "comment"
	default:
		return "unknown"
	}
}

// LineResult is the classification of a single line.
type LineResult struct {
	Kind Kind

	// BlockComment reports whether any of the line's comment content came
	// from a block comment rather than a line comment. The file analyzer
	// uses this to decide header-exclusion eligibility.
	BlockComment bool
}

// Classifier is the per-file state machine. It starts outside any comment
// and carries block-comment state from line to line. Create a fresh one for
// every file; instances are not safe for concurrent use.
type Classifier struct {
	g       *grammar.Grammar
	inBlock bool
	pair    grammar.BlockPair
	depth   int
}

// New creates a classifier for the given grammar.
func New(g *grammar.Grammar) *Classifier {
	return &Classifier{g: g}
}

// InBlockComment reports whether the classifier is currently inside an open
// block comment, i.e. the last classified line left one unterminated.
func (c *Classifier) InBlockComment() bool {
	return c.inBlock
}

// ClassifyLine classifies one raw line and advances the block-comment state.
// Scanning is left to right; at each position, directive exceptions are
// matched before line-comment markers, which are matched before block-comment
// start markers. A line-comment marker swallows the rest of the line.
func (c *Classifier) ClassifyLine(line string) LineResult {
	// Whitespace-only lines are blank in any state; state carries over.
	if strings.TrimSpace(line) == "" {
		return LineResult{Kind: Blank, BlockComment: false}
	}

	var hasCode, hasComment, fromBlock bool

	i := 0
	for i < len(line) {
		rest := line[i:]

		if c.inBlock {
			hasComment = true
			fromBlock = true
			if c.g.Nested && strings.HasPrefix(rest, c.pair.Start) {
				c.depth++
				i += len(c.pair.Start)
				continue
			}
			if strings.HasPrefix(rest, c.pair.End) {
				c.depth--
				if c.depth <= 0 {
					c.inBlock = false
					c.depth = 0
				}
				i += len(c.pair.End)
				continue
			}
			i++
			continue
		}

		if line[i] == ' ' || line[i] == '\t' {
			i++
			continue
		}

		// Directive exceptions win over comment markers even when they
		// share a prefix (Fortran "!DIR$" vs "!", Pascal "{$" vs "{").
		if d, ok := matchFirst(rest, c.g.Directives); ok {
			hasCode = true
			i += len(d)
			continue
		}

		if _, ok := matchFirst(rest, c.g.LineMarkers); ok {
			hasComment = true
			break
		}

		if pair, ok := c.matchBlockStart(rest); ok {
			c.inBlock = true
			c.pair = pair
			c.depth = 1
			hasComment = true
			fromBlock = true
			i += len(pair.Start)
			continue
		}

		hasCode = true
		i++
	}
	_ = hasComment

	kind := Comment
	if hasCode {
		// Mixed code+comment lines collapse to code.
		kind = Code
	}
	return LineResult{Kind: kind, BlockComment: fromBlock}
}

// matchBlockStart matches any of the grammar's block start markers, in
// declaration order.
func (c *Classifier) matchBlockStart(rest string) (grammar.BlockPair, bool) {
	for _, pair := range c.g.BlockPairs {
		if strings.HasPrefix(rest, pair.Start) {
			return pair, true
		}
	}
	return grammar.BlockPair{}, false
}

// matchFirst returns the first pattern that prefixes rest, in declaration
// order.
func matchFirst(rest string, patterns []string) (string, bool) {
	for _, p := range patterns {
		if strings.HasPrefix(rest, p) {
			return p, true
		}
	}
	return "", false
}
