package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/codestat/internal/ui/pretty"
	"github.com/yaklabco/codestat/pkg/analysis"
	"github.com/yaklabco/codestat/pkg/runner"
)

// TextReporter formats results as styled terminal output with per-language
// blocks.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
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

	fmt.Fprint(r.bw, r.styles.FormatLanguageBlocks(report))

	if r.opts.PerFile {
		fmt.Fprintln(r.bw)
		for _, file := range report.ByFile {
			fmt.Fprintf(r.bw, "%s  %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Dim.Render(fmt.Sprintf("%s: %d code, %d comment, %d blank",
					file.Language, file.CodeLines, file.CommentLines, file.BlankLines)),
			)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummary(report))
	}

	return nil
}

func (r *TextReporter) errorWriter() io.Writer {
	// File errors go to the main stream when no separate error writer is set,
	// keeping them adjacent to the report they belong to.
	if r.opts.ErrorWriter == nil {
		return r.bw
	}
	return r.opts.ErrorWriter
}
