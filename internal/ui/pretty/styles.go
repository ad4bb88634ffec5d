// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Summary components
	SummaryTitle lipgloss.Style
	SummaryLabel lipgloss.Style
	SummaryValue lipgloss.Style
	LanguageName lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableTotalRow  lipgloss.Style

	// Misc
	FilePath lipgloss.Style
	Dim      lipgloss.Style
	Bold     lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SummaryValue: lipgloss.NewStyle(),
		LanguageName: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableTotalRow:  lipgloss.NewStyle().Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		SummaryTitle:   plain,
		SummaryLabel:   plain,
		SummaryValue:   plain,
		LanguageName:   plain,
		Success:        plain,
		Failure:        plain,
		Warning:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableTotalRow:  plain,
		FilePath:       plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
