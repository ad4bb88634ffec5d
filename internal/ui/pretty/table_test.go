package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codestat/pkg/analysis"
)

func TestFormatLanguageTable(t *testing.T) {
	t.Parallel()

	f := NewTableFormatter(NewStyles(false), 120)
	out := f.FormatLanguageTable(sampleReport())

	assert.Contains(t, out, "LANGUAGE")
	assert.Contains(t, out, "RATIO")
	assert.Contains(t, out, "Java")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "38.1 %")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, heavy separator, two languages, light separator, totals.
	require.Len(t, lines, 6)
}

func TestFormatLanguageTable_Empty(t *testing.T) {
	t.Parallel()

	f := NewTableFormatter(NewStyles(false), 120)
	assert.Empty(t, f.FormatLanguageTable(nil))
	assert.Empty(t, f.FormatLanguageTable(&analysis.Report{}))
}

func TestFormatFileTable(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.ByFile = []analysis.FileStats{
		{Path: "a/main.py", Language: "Python", TotalLines: 10, CodeLines: 6, BlankLines: 4},
		{Path: "b/App.java", Language: "Java", TotalLines: 24, CodeLines: 9, CommentLines: 5, BlankLines: 7, HeaderLines: 3},
	}

	f := NewTableFormatter(NewStyles(false), 120)
	out := f.FormatFileTable(report)

	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "HEADER")
	assert.Contains(t, out, "a/main.py")
	assert.Contains(t, out, "b/App.java")
}

func TestFormatFileTable_TruncatesLongPaths(t *testing.T) {
	t.Parallel()

	report := &analysis.Report{
		ByFile: []analysis.FileStats{
			{
				Path:     "very/long/deeply/nested/directory/structure/with/many/segments/file.py",
				Language: "Python",
			},
		},
	}
	report.ByFile[0].TotalLines = 1
	report.ByFile[0].CodeLines = 1

	f := NewTableFormatter(NewStyles(false), 60)
	out := f.FormatFileTable(report)

	assert.Contains(t, out, "file.py")
	assert.Contains(t, out, "...")
}

func TestTruncateFilePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short.py", truncateFilePath("short.py", 20))
	got := truncateFilePath("aa/bb/cc/dd/ee/file.py", 14)
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "file.py"))
	assert.LessOrEqual(t, len(got), 14)
}

func TestNewTableFormatter_DefaultWidth(t *testing.T) {
	t.Parallel()

	f := NewTableFormatter(NewStyles(false), 0)
	require.NotNil(t, f)
	assert.Equal(t, defaultTermWidth, f.termWidth)
}
