package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/codestat/internal/textutil"
	"github.com/yaklabco/codestat/pkg/analysis"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minLanguageWidth = 10
	minFileWidth     = 20
	minCountWidth    = 7
	ratioWidth       = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	totalRowLabel    = "TOTAL"
)

// TableFormatter formats reports as styled tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatLanguageTable formats per-language statistics as a styled table with a
// trailing totals row.
func (t *TableFormatter) FormatLanguageTable(report *analysis.Report) string {
	if report == nil || len(report.ByLanguage) == 0 {
		return ""
	}

	nameWidth := minLanguageWidth
	for _, lang := range report.ByLanguage {
		if w := textutil.VisibleWidth(lang.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var builder strings.Builder

	header := fmt.Sprintf(" %s  %s  %s  %s  %s  %s",
		textutil.PadRight("LANGUAGE", nameWidth),
		textutil.PadLeft("FILES", minCountWidth),
		textutil.PadLeft("TOTAL", minCountWidth),
		textutil.PadLeft("CODE", minCountWidth),
		textutil.PadLeft("COMMENT", minCountWidth),
		textutil.PadLeft("RATIO", ratioWidth),
	)
	totalWidth := textutil.VisibleWidth(header) + 1

	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth)))
	builder.WriteString("\n")

	for _, lang := range report.ByLanguage {
		row := fmt.Sprintf(" %s  %s  %s  %s  %s  %s",
			textutil.PadRight(lang.Name, nameWidth),
			textutil.PadLeft(strconv.Itoa(lang.Files), minCountWidth),
			textutil.PadLeft(strconv.Itoa(lang.TotalLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(lang.CodeLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(lang.CommentLines), minCountWidth),
			textutil.PadLeft(FormatRatio(lang), ratioWidth),
		)
		builder.WriteString(row)
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, totalWidth)))
	builder.WriteString("\n")

	totalRow := fmt.Sprintf(" %s  %s  %s  %s  %s  %s",
		textutil.PadRight(totalRowLabel, nameWidth),
		textutil.PadLeft(strconv.Itoa(report.Totals.Files), minCountWidth),
		textutil.PadLeft(strconv.Itoa(report.Totals.TotalLines), minCountWidth),
		textutil.PadLeft(strconv.Itoa(report.Totals.CodeLines), minCountWidth),
		textutil.PadLeft(strconv.Itoa(report.Totals.CommentLines), minCountWidth),
		textutil.PadLeft("", ratioWidth),
	)
	builder.WriteString(t.styles.TableTotalRow.Render(totalRow))
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileTable formats per-file statistics as a styled table.
func (t *TableFormatter) FormatFileTable(report *analysis.Report) string {
	if report == nil || len(report.ByFile) == 0 {
		return ""
	}

	pathWidth := minFileWidth
	langWidth := minLanguageWidth
	for _, file := range report.ByFile {
		if w := textutil.VisibleWidth(file.Path); w > pathWidth {
			pathWidth = w
		}
		if w := textutil.VisibleWidth(file.Language); w > langWidth {
			langWidth = w
		}
	}

	// Constrain to terminal width by shrinking the path column first.
	fixed := langWidth + 5*minCountWidth + tablePadding*7
	if pathWidth+fixed > t.termWidth {
		pathWidth = max(minFileWidth, t.termWidth-fixed)
	}

	var builder strings.Builder

	header := fmt.Sprintf(" %s  %s  %s  %s  %s  %s  %s",
		textutil.PadRight("FILE", pathWidth),
		textutil.PadRight("LANGUAGE", langWidth),
		textutil.PadLeft("TOTAL", minCountWidth),
		textutil.PadLeft("CODE", minCountWidth),
		textutil.PadLeft("COMMENT", minCountWidth),
		textutil.PadLeft("BLANK", minCountWidth),
		textutil.PadLeft("HEADER", minCountWidth),
	)
	totalWidth := textutil.VisibleWidth(header) + 1

	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth)))
	builder.WriteString("\n")

	for _, file := range report.ByFile {
		row := fmt.Sprintf(" %s  %s  %s  %s  %s  %s  %s",
			textutil.PadRight(truncateFilePath(file.Path, pathWidth), pathWidth),
			textutil.PadRight(file.Language, langWidth),
			textutil.PadLeft(strconv.Itoa(file.TotalLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(file.CodeLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(file.CommentLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(file.BlankLines), minCountWidth),
			textutil.PadLeft(strconv.Itoa(file.HeaderLines), minCountWidth),
		)
		builder.WriteString(row)
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth)))
	builder.WriteString("\n")

	return builder.String()
}

// truncateFilePath truncates a file path, preserving the end (filename) rather
// than the beginning.
func truncateFilePath(path string, maxWidth int) string {
	if textutil.VisibleWidth(path) <= maxWidth {
		return path
	}
	if maxWidth <= 3 {
		return textutil.TruncateByWidth(path, maxWidth, "")
	}
	// Keep the tail: reverse, truncate, reverse back is overkill for paths,
	// so drop leading path segments until it fits.
	for {
		idx := strings.IndexByte(path, '/')
		if idx < 0 || idx == len(path)-1 {
			return "..." + textutil.TruncateByWidth(path, maxWidth-3, "")
		}
		path = path[idx+1:]
		if textutil.VisibleWidth(path)+3 <= maxWidth {
			return "..." + path
		}
	}
}
