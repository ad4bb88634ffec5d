package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codestat/pkg/analysis"
)

func TestNewRootCommand_Structure(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(BuildInfo{Version: "test"})

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"scan", "languages", "version", "man"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestScanCommand_Flags(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(BuildInfo{})
	scan, _, err := root.Find([]string{"scan"})
	require.NoError(t, err)

	for _, flag := range []string{
		"format", "sort", "ignore", "jobs", "follow-symlinks", "per-file", "compact",
	} {
		assert.NotNil(t, scan.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestScan_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.py")
	require.NoError(t, os.WriteFile(src, []byte("# comment\nx = 1\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"scan", "--format", "json", "--color", "never", dir})

	require.NoError(t, root.Execute())

	var report analysis.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 1, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.CodeLines)
	assert.Equal(t, 1, report.Totals.CommentLines)
	require.Len(t, report.ByLanguage, 1)
	assert.Equal(t, "Python", report.ByLanguage[0].Name)
}

func TestScan_NoFilesFound(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"scan", "--color", "never", dir})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFilesFound))
	assert.Equal(t, ExitNoFiles, ExitCode(err))
}

func TestScan_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("x = 1\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"scan", "--format", "yaml", dir})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitNoFiles, ExitCode(ErrNoFilesFound))
	assert.Equal(t, ExitConfigError, ExitCode(configError(errors.New("boom"))))
	assert.Equal(t, ExitIOError, ExitCode(ioError(errors.New("boom"))))
	assert.Equal(t, ExitInternalError, ExitCode(internalError(errors.New("boom"))))
	assert.Equal(t, ExitInvalidUsage, ExitCode(errors.New("unknown flag")))
}

func TestLanguagesCommand_JSON(t *testing.T) {
	root := NewRootCommand(BuildInfo{})
	scanCmd, _, err := root.Find([]string{"languages"})
	require.NoError(t, err)
	assert.NotNil(t, scanCmd.Flags().Lookup("format"))
}

func TestVersionCommand_Output(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-02"})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc1234")
	assert.Contains(t, out.String(), "2026-01-02")
	assert.Contains(t, out.String(), runtime.Version())
}

func TestManCommand(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"man"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "codestat")
}
