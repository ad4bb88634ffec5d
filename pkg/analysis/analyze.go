package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/codestat/pkg/runner"
)

// Analyze transforms a runner.Result into a Report in a single pass.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	langMap := make(map[string]*LanguageStats)

	for _, file := range result.Files {
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Err != nil {
			report.Totals.FilesErrored++
			report.Errors = append(report.Errors, FileError{
				Path:   displayPath,
				Reason: file.Err.Error(),
			})
			continue
		}

		report.Totals.Files++
		report.Totals.TotalLines += file.Tally.TotalLines
		report.Totals.CodeLines += file.Tally.CodeLines
		report.Totals.CommentLines += file.Tally.CommentLines
		report.Totals.BlankLines += file.Tally.BlankLines
		report.Totals.HeaderLines += file.Tally.HeaderLines

		ls, ok := langMap[file.Language]
		if !ok {
			ls = &LanguageStats{Name: file.Language}
			langMap[file.Language] = ls
		}
		ls.Files++
		ls.TotalLines += file.Tally.TotalLines
		ls.CodeLines += file.Tally.CodeLines
		ls.CommentLines += file.Tally.CommentLines

		if opts.IncludeByFile {
			report.ByFile = append(report.ByFile, FileStats{
				Path:         displayPath,
				Language:     file.Language,
				TotalLines:   file.Tally.TotalLines,
				CodeLines:    file.Tally.CodeLines,
				CommentLines: file.Tally.CommentLines,
				BlankLines:   file.Tally.BlankLines,
				HeaderLines:  file.Tally.HeaderLines,
			})
		}
	}

	report.ByLanguage = make([]LanguageStats, 0, len(langMap))
	for _, ls := range langMap {
		report.ByLanguage = append(report.ByLanguage, *ls)
	}
	sortLanguages(report.ByLanguage, opts.SortBy)

	if opts.IncludeByFile {
		sortFiles(report.ByFile, opts.SortBy)
	}

	return report
}

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

func sortLanguages(langs []LanguageStats, sortBy SortField) {
	slices.SortFunc(langs, func(left, right LanguageStats) int {
		if sortBy == SortByCode {
			if result := cmp.Compare(right.CodeLines, left.CodeLines); result != 0 {
				return result
			}
		}
		return cmp.Compare(left.Name, right.Name)
	})
}

func sortFiles(files []FileStats, sortBy SortField) {
	slices.SortFunc(files, func(left, right FileStats) int {
		if sortBy == SortByCode {
			if result := cmp.Compare(right.CodeLines, left.CodeLines); result != 0 {
				return result
			}
		}
		return cmp.Compare(left.Path, right.Path)
	})
}
