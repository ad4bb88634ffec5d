// Package cli provides the Cobra command structure for codestat.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/codestat/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root codestat command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "codestat",
		Short: "A fast source-line counter with comment-aware classification",
		Long: `codestat counts source lines across a project, classifying every
physical line as code, comment, or blank per language grammar. Leading
file headers (license banners in a block comment) are excluded from
both code and comment counts.

Languages are recognized by file extension; files with unknown
extensions are skipped.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newManCommand(rootCmd))

	return rootCmd
}
