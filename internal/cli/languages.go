package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/yaklabco/codestat/internal/logging"
	"github.com/yaklabco/codestat/pkg/grammar"
)

type languagesFlags struct {
	format string
}

const formatJSON = "json"

// languageInfo represents a language in JSON output.
type languageInfo struct {
	Name        string   `json:"name"`
	Extensions  []string `json:"extensions"`
	LineMarkers []string `json:"lineMarkers,omitempty"`
	BlockPairs  []string `json:"blockPairs,omitempty"`
	Directives  []string `json:"directives,omitempty"`
	Nested      bool     `json:"nested,omitempty"`
}

func newLanguagesCommand() *cobra.Command {
	flags := &languagesFlags{}

	cmd := &cobra.Command{
		Use:   "languages [filter]",
		Short: "List supported languages",
		Long: `List all supported languages with their file extensions, comment
markers, and directive exceptions. An optional filter argument narrows
the list by fuzzy name match.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			languages := grammar.Languages()

			if len(args) > 0 {
				languages = filterLanguages(languages, args[0])
			}

			if flags.format == formatJSON {
				return outputLanguagesJSON(languages)
			}

			logger := logging.Default()

			if len(languages) == 0 {
				logger.Info("no languages match the filter")
				return nil
			}

			for _, g := range languages {
				logger.Info(g.Name,
					"extensions", strings.Join(grammar.ExtensionsFor(g), " "),
					"line_markers", strings.Join(g.LineMarkers, " "),
					"block_pairs", strings.Join(blockPairStrings(g), " "),
					"directives", strings.Join(g.Directives, " "),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// filterLanguages keeps the languages whose name fuzzy-matches the filter.
func filterLanguages(languages []*grammar.Grammar, filter string) []*grammar.Grammar {
	matched := make([]*grammar.Grammar, 0, len(languages))
	for _, g := range languages {
		if fuzzy.MatchNormalizedFold(filter, g.Name) {
			matched = append(matched, g)
		}
	}
	return matched
}

func blockPairStrings(g *grammar.Grammar) []string {
	pairs := make([]string, 0, len(g.BlockPairs))
	for _, p := range g.BlockPairs {
		pairs = append(pairs, p.Start+" "+p.End)
	}
	return pairs
}

// outputLanguagesJSON outputs the language list as a JSON array.
func outputLanguagesJSON(languages []*grammar.Grammar) error {
	infos := make([]languageInfo, 0, len(languages))
	for _, g := range languages {
		infos = append(infos, languageInfo{
			Name:        g.Name,
			Extensions:  grammar.ExtensionsFor(g),
			LineMarkers: g.LineMarkers,
			BlockPairs:  blockPairStrings(g),
			Directives:  g.Directives,
			Nested:      g.Nested,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding languages: %w", err)
	}
	return nil
}
