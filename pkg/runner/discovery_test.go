package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/codestat/internal/logging"
	"github.com/yaklabco/codestat/pkg/runner"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	srcFile := filepath.Join(dir, "main.py")
	if err := os.WriteFile(srcFile, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{srcFile},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0] != srcFile {
		t.Errorf("expected %s, got %s", srcFile, files[0])
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.py":           "x = 1\n",
		"src/app.java":      "class A {}\n",
		"src/lib.cpp":       "int x;\n",
		"docs/readme.md":    "# doc\n",
		"notes.txt":         "notes\n",
		".hidden.py":        "x = 1\n",
		".secrets/deep.py":  "x = 1\n",
		"src/.generated.js": "var x;\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "main.py"),
		filepath.Join(dir, "src/app.java"),
		filepath.Join(dir, "src/lib.cpp"),
	}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i, want := range expected {
		if files[i] != want {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want)
		}
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.py":           "x = 1\n",
		"vendor/lib.py":     "x = 1\n",
		"vendor/sub/dep.py": "x = 1\n",
		"test_main.py":      "x = 1\n",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "test_*.py"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if files[0] != filepath.Join(dir, "main.py") {
		t.Errorf("unexpected file %s", files[0])
	}
}

func TestDiscover_LogsSkippedFilesWithHint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.go": "package main\n",
		"app.py":  "x = 1\n",
	})

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.DebugLevel)
	ctx := logging.WithLogger(context.Background(), logger)

	files, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "app.py" {
		t.Fatalf("Discover() = %v, want only app.py", files)
	}

	out := buf.String()
	if !strings.Contains(out, "main.go") {
		t.Errorf("debug output should name the skipped file, got %q", out)
	}
	if !strings.Contains(out, "Go") {
		t.Errorf("debug output should carry the language hint, got %q", out)
	}
}

func TestDiscover_SkipLogSilentAtInfoLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.go": "package main\n"})

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.InfoLevel)
	ctx := logging.WithLogger(context.Background(), logger)

	if _, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
	}); err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestDiscover_ExplicitFileBypassesHiddenRule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	hidden := filepath.Join(dir, ".build.py")
	if err := os.WriteFile(hidden, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{hidden},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected explicit hidden file to be kept, got %v", files)
	}
}

func TestDiscover_Dedupe(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.py": "x = 1\n"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", "main.py"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected dedupe to 1 file, got %d", len(files))
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"no-such-dir"},
		WorkingDir: dir,
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_SymlinkCycle(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"sub/main.py": "x = 1\n"})

	// sub/loop -> sub creates a cycle when symlinks are followed.
	if err := os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "sub", "loop")); err != nil {
		t.Fatalf("setup symlink: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:          []string{"."},
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected cycle-safe discovery of 1 file, got %d: %v", len(files), files)
	}
}

func TestDiscover_SymlinkDirNotFollowedByDefault(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	target := t.TempDir()
	writeFiles(t, target, map[string]string{"lib.py": "x = 1\n"})
	writeFiles(t, dir, map[string]string{"main.py": "x = 1\n"})

	if err := os.Symlink(target, filepath.Join(dir, "linked")); err != nil {
		t.Fatalf("setup symlink: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected symlinked dir to be skipped, got %v", files)
	}

	files, err = runner.Discover(context.Background(), runner.Options{
		Paths:          []string{"."},
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected symlinked dir to be followed, got %v", files)
	}
}

func TestDiscover_BrokenSymlink(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.py": "x = 1\n"})
	if err := os.Symlink(filepath.Join(dir, "gone.py"), filepath.Join(dir, "broken.py")); err != nil {
		t.Fatalf("setup symlink: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected broken symlink to be skipped, got %v", files)
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.py": "x = 1\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
