package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codestat/internal/configloader"
	"github.com/yaklabco/codestat/internal/logging"
	"github.com/yaklabco/codestat/pkg/analysis"
	"github.com/yaklabco/codestat/pkg/config"
	"github.com/yaklabco/codestat/pkg/reporter"
	"github.com/yaklabco/codestat/pkg/runner"
)

// ErrNoFilesFound is returned when no analyzable files were discovered.
var ErrNoFilesFound = errors.New("no analyzable files found")

type scanFlags struct {
	format         string
	sort           string
	ignore         []string
	jobs           int
	followSymlinks bool
	perFile        bool
	compact        bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Count source lines in files and directories",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

const scanLongDescription = `Count source lines in files and directories.

Every line of a recognized source file is classified as code, comment,
or blank. A line holding both code and a comment counts as code. A
leading block comment (a license or file header) counts toward neither.

By default, scans the current directory recursively. Files whose
extension maps to no known language are skipped.

Examples:
  codestat scan                  # Scan current directory
  codestat scan src/ lib/        # Scan specific directories
  codestat scan main.py          # Scan a single file
  codestat scan --format json    # Machine-readable output for CI
  codestat scan --per-file       # Include a per-file breakdown
  codestat scan --sort code      # Order languages by code lines`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return usageError(fmt.Errorf("get config flag: %w", err))
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ioError(fmt.Errorf("get working directory: %w", err))
	}

	// Only flags explicitly set on the command line may override lower
	// precedence sources.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("sort") {
		cliCfg.Sort = flags.sort
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	cliCfg.FollowSymlinks = flags.followSymlinks
	cliCfg.PerFile = flags.perFile
	cliCfg.Compact = flags.compact

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return configError(fmt.Errorf("load configuration: %w", err))
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldSort, finalCfg.Sort,
		logging.FieldJobs, finalCfg.Jobs,
	)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		ExcludeGlobs:   finalCfg.Ignore,
		FollowSymlinks: finalCfg.FollowSymlinks,
		Jobs:           finalCfg.Jobs,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(logging.WithLogger(ctx, logger), runOpts)
	if err != nil {
		return internalError(fmt.Errorf("scan failed: %w", err))
	}

	logger.Debug("scan finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return usageError(fmt.Errorf("invalid format: %w", err))
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		Compact:     finalCfg.Compact,
		PerFile:     finalCfg.PerFile,
		ShowSummary: true,
		SortBy:      analysis.SortField(finalCfg.Sort),
		WorkingDir:  workDir,
	})
	if err != nil {
		return internalError(fmt.Errorf("create reporter: %w", err))
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return ioError(fmt.Errorf("report results: %w", err))
	}

	if result.Stats.FilesDiscovered == 0 {
		return ErrNoFilesFound
	}

	return nil
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json")
	cmd.Flags().StringVar(&flags.sort, "sort", "name", "order of report entries: name, code")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "include a per-file breakdown")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
}
