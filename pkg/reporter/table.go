package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/codestat/internal/ui/pretty"
	"github.com/yaklabco/codestat/pkg/analysis"
	"github.com/yaklabco/codestat/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as styled per-language and per-file tables.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	termWidth := getTerminalWidth(opts.Writer)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, termWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	report := analysis.Analyze(result, r.opts.analysisOptions())

	if errOut := r.styles.FormatErrors(report); errOut != "" {
		fmt.Fprint(r.errorWriter(), errOut)
	}

	if report.Totals.Files == 0 {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(report))
		return nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatLanguageTable(report))

	if r.opts.PerFile && len(report.ByFile) > 0 {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.formatter.FormatFileTable(report))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(report))
	}

	return nil
}

func (r *TableReporter) errorWriter() io.Writer {
	if r.opts.ErrorWriter == nil {
		return r.bw
	}
	return r.opts.ErrorWriter
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
