package classify

import (
	"strings"

	"github.com/yaklabco/codestat/pkg/grammar"
)

// AnalyzeLines runs the classifier over a file's lines and produces its tally,
// applying the file-header exclusion rule: when the very first non-blank
// construct in the file is a block comment, that one leading block-comment
// span counts toward neither code nor comment (only toward the total). A
// leading line comment is never excluded, and the first code line or first
// counted comment line cancels eligibility permanently.
func AnalyzeLines(g *grammar.Grammar, lines []string) FileTally {
	c := New(g)

	var tally FileTally
	headerActive := false
	headerDone := false

	for _, line := range lines {
		tally.TotalLines++
		res := c.ClassifyLine(line)

		switch res.Kind {
		case Blank:
			// Blank lines never cancel header eligibility; the rule keys
			// on the first non-blank construct.
			tally.BlankLines++

		case Code:
			tally.CodeLines++
			headerActive = false
			headerDone = true

		case Comment:
			if headerDone {
				tally.CommentLines++
				continue
			}
			if headerActive {
				tally.HeaderLines++
				if !c.InBlockComment() {
					headerActive = false
					headerDone = true
				}
				continue
			}
			if res.BlockComment {
				// First non-blank construct is a block comment: the
				// header span starts here.
				headerActive = true
				tally.HeaderLines++
				if !c.InBlockComment() {
					headerActive = false
					headerDone = true
				}
				continue
			}
			// A line comment as the very first content is counted normally.
			headerDone = true
			tally.CommentLines++
		}
	}

	tally.Unterminated = c.InBlockComment()
	return tally
}

// AnalyzeContent splits raw file content into physical lines and analyzes
// them. A trailing newline does not produce an extra empty line; CRLF line
// endings are tolerated.
func AnalyzeContent(g *grammar.Grammar, content []byte) FileTally {
	return AnalyzeLines(g, SplitLines(content))
}

// SplitLines splits content into physical lines, stripping line terminators.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	s := string(content)
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
