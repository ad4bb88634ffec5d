package analysis

import "time"

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Totals contains aggregate counts across all analyzed files.
type Totals struct {
	Files        int `json:"files"`
	FilesErrored int `json:"filesErrored"`
	TotalLines   int `json:"totalLines"`
	CodeLines    int `json:"codeLines"`
	CommentLines int `json:"commentLines"`
	BlankLines   int `json:"blankLines"`
	HeaderLines  int `json:"headerLines"`
}

// LanguageStats aggregates the files of one language.
type LanguageStats struct {
	Name         string `json:"name"`
	Files        int    `json:"files"`
	TotalLines   int    `json:"totalLines"`
	CodeLines    int    `json:"codeLines"`
	CommentLines int    `json:"commentLines"`
}

// Ratio returns the comment/code percentage. The second result is false when
// there are no code lines and the ratio is undefined.
func (l LanguageStats) Ratio() (float64, bool) {
	if l.CodeLines == 0 {
		return 0, false
	}
	return float64(l.CommentLines) * 100 / float64(l.CodeLines), true
}

// FileStats is the per-file view entry.
type FileStats struct {
	Path         string `json:"path"`
	Language     string `json:"language"`
	TotalLines   int    `json:"totalLines"`
	CodeLines    int    `json:"codeLines"`
	CommentLines int    `json:"commentLines"`
	BlankLines   int    `json:"blankLines"`
	HeaderLines  int    `json:"headerLines"`
}

// FileError describes a file that could not be analyzed.
type FileError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report is the analysis result handed to renderers.
type Report struct {
	Version    string          `json:"version"`
	Timestamp  time.Time       `json:"timestamp"`
	Totals     Totals          `json:"totals"`
	ByLanguage []LanguageStats `json:"byLanguage"`
	ByFile     []FileStats     `json:"byFile,omitempty"`
	Errors     []FileError     `json:"errors,omitempty"`
}
