package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/codestat/internal/logging"
	"github.com/yaklabco/codestat/pkg/classify"
	"github.com/yaklabco/codestat/pkg/grammar"
)

// ErrBinaryFile marks files whose content is not text.
var ErrBinaryFile = errors.New("binary content")

// Run discovers files under opts.Paths and analyzes them concurrently.
// Per-file failures never abort the run; they surface as FileOutcome.Err.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-assemble by discovery order so the
	// final report is deterministic.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker analyzes files from workCh and sends outcomes to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := analyzeFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// analyzeFile reads one file and runs the classifier over its lines.
func analyzeFile(ctx context.Context, path string) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	g, ok := grammar.Lookup(filepath.Ext(path))
	if !ok {
		// Discovery only emits recognized extensions; guard anyway.
		outcome.Err = fmt.Errorf("no grammar for %s", filepath.Ext(path))
		return outcome
	}
	outcome.Language = g.Name

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read file: %w", err)
		return outcome
	}

	if grammar.IsBinary(content) {
		outcome.Err = ErrBinaryFile
		return outcome
	}

	outcome.Tally = classify.AnalyzeContent(g, content)
	outcome.Tally.Path = path

	if outcome.Tally.Unterminated {
		logger.Debug("unterminated block comment at end of file",
			logging.FieldPath, path,
			logging.FieldLanguage, g.Name,
		)
	}

	return outcome
}
