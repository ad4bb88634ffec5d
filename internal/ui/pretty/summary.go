package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/codestat/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run totals as a single line.
// Example: "42 files scanned, 3100 code lines, 480 comment lines, 2 errors".
func (s *Styles) FormatSummaryOneLine(report *analysis.Report) string {
	if report.Totals.Files == 0 {
		msg := s.Warning.Render("No source files found")
		if report.Totals.FilesErrored > 0 {
			msg += s.Dim.Render(fmt.Sprintf(" (%d unreadable)", report.Totals.FilesErrored))
		}
		return msg + "\n"
	}

	fileWord := wordFiles
	if report.Totals.Files == 1 {
		fileWord = wordFile
	}

	parts := []string{
		fmt.Sprintf("%d %s scanned", report.Totals.Files, fileWord),
		fmt.Sprintf("%d code lines", report.Totals.CodeLines),
		fmt.Sprintf("%d comment lines", report.Totals.CommentLines),
	}
	if report.Totals.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errors", report.Totals.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatLanguageBlocks formats per-language statistics as labeled blocks, one
// block per language in report order.
func (s *Styles) FormatLanguageBlocks(report *analysis.Report) string {
	var builder strings.Builder

	for i, lang := range report.ByLanguage {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(s.LanguageName.Render(lang.Name))
		builder.WriteString("\n")
		builder.WriteString("  Source files:        " +
			s.SummaryValue.Render(strconv.Itoa(lang.Files)) + "\n")
		builder.WriteString("  Code lines:          " +
			s.SummaryValue.Render(strconv.Itoa(lang.CodeLines)) + "\n")
		builder.WriteString("  Comment lines:       " +
			s.SummaryValue.Render(strconv.Itoa(lang.CommentLines)) + "\n")
		builder.WriteString("  Comment/code ratio:  " +
			s.SummaryValue.Render(FormatRatio(lang)) + "\n")
	}

	return builder.String()
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(report *analysis.Report) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Totals"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Source files:   " +
		s.SummaryValue.Render(strconv.Itoa(report.Totals.Files)) + "\n")
	builder.WriteString("  Total lines:    " +
		s.SummaryValue.Render(strconv.Itoa(report.Totals.TotalLines)) + "\n")
	builder.WriteString("  Code lines:     " +
		s.SummaryValue.Render(strconv.Itoa(report.Totals.CodeLines)) + "\n")
	builder.WriteString("  Comment lines:  " +
		s.SummaryValue.Render(strconv.Itoa(report.Totals.CommentLines)) + "\n")
	builder.WriteString("  Blank lines:    " +
		s.SummaryValue.Render(strconv.Itoa(report.Totals.BlankLines)) + "\n")

	if report.Totals.HeaderLines > 0 {
		builder.WriteString("  Header lines:   " +
			s.Dim.Render(strconv.Itoa(report.Totals.HeaderLines)) + "\n")
	}
	if report.Totals.FilesErrored > 0 {
		builder.WriteString("  Unreadable:     " +
			s.Failure.Render(strconv.Itoa(report.Totals.FilesErrored)) + "\n")
	}

	return builder.String()
}

// FormatErrors formats the per-file error list for the error path of the output.
func (s *Styles) FormatErrors(report *analysis.Report) string {
	if len(report.Errors) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, fe := range report.Errors {
		builder.WriteString(s.Failure.Render("error") + " " +
			s.FilePath.Render(fe.Path) + s.Dim.Render(": "+fe.Reason) + "\n")
	}
	return builder.String()
}

// FormatRatio renders a language's comment/code percentage, "-" when undefined.
func FormatRatio(lang analysis.LanguageStats) string {
	ratio, ok := lang.Ratio()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f %%", ratio)
}
