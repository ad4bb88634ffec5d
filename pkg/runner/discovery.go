package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/codestat/internal/logging"
	"github.com/yaklabco/codestat/pkg/grammar"
)

// Discover finds analyzable source files under opts.Paths: files whose
// extension the grammar table recognizes, minus hidden entries and exclude
// globs. It returns a deterministically sorted list of absolute paths.
// Unrecognized extensions are skipped, not an error; at debug level each
// skip is logged with enry's language hint.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	logger := logging.FromContext(ctx)
	seen := make(map[string]struct{})
	// visited tracks canonical directory paths so symlink cycles cannot
	// make the walk loop forever.
	visited := make(map[string]struct{})
	var files []string

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, logger, absPath, workDir, opts, visited)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
			continue
		}

		// Explicitly named files bypass the hidden-file rule but still
		// need a recognized extension.
		if _, ok := grammar.Lookup(filepath.Ext(absPath)); !ok {
			logSkippedFile(logger, relativeTo(absPath, workDir), absPath)
			continue
		}
		if matchesAny(relativeTo(absPath, workDir), opts.ExcludeGlobs) {
			continue
		}
		if _, ok := seen[absPath]; !ok {
			seen[absPath] = struct{}{}
			files = append(files, absPath)
		}
	}

	sort.Strings(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and collects matching files.
func walkDirectory(
	ctx context.Context,
	logger *log.Logger,
	root string,
	workDir string,
	opts Options,
	visited map[string]struct{},
) ([]string, error) {
	canonical, err := filepath.EvalSymlinks(root)
	if err != nil {
		canonical = root
	}
	if _, ok := visited[canonical]; ok {
		return nil, nil
	}
	visited[canonical] = struct{}{}

	var files []string

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, entryErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if entryErr != nil {
			// Permission problems on individual entries must not stop
			// the rest of the analysis.
			if os.IsPermission(entryErr) {
				return nil
			}
			return entryErr
		}

		relPath := relativeTo(path, workDir)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink.
				return nil
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target rather than the link; the visited set
				// guards against cycles.
				subFiles, subErr := walkDirectory(ctx, logger, realPath, workDir, opts, visited)
				if subErr != nil {
					return subErr
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if _, ok := grammar.Lookup(filepath.Ext(path)); !ok {
			logSkippedFile(logger, relPath, path)
			return nil
		}
		if matchesAny(relPath, opts.ExcludeGlobs) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	if walkErr != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, walkErr)
	}

	return files, nil
}

// logSkippedFile debug-logs a file passed over for lack of a known
// extension, with enry's best guess at its language.
func logSkippedFile(logger *log.Logger, relPath, absPath string) {
	if logger.GetLevel() > log.DebugLevel {
		return
	}
	logger.Debug("skipping unrecognized file",
		logging.FieldPath, relPath,
		logging.FieldLanguage, grammar.Hint(absPath, nil),
	)
}

// relativeTo returns path relative to base, falling back to path itself.
func relativeTo(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// matchesAny reports whether the path matches any glob pattern.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern. Patterns without a
// separator also match against the base name, and "prefix/**" matches
// everything under prefix.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}
