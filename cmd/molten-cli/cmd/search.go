package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"molten/internal/application/commands"
	"molten/internal/search"
)

var (
	searchFuzzy bool
	searchExact bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Long: `Search catalog items by name, code, manufacturer, tags, or notes.

Results are ranked by weighted relevance; matches earlier in a field score
higher. Quote a phrase to match it whole.

Examples:
  molten-cli search "dark red"
  molten-cli search --fuzzy effett
  molten-cli search --exact EF-591-246`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		cfg := search.DefaultConfig()
		switch {
		case searchExact:
			cfg = search.ExactConfig()
		case searchFuzzy:
			cfg = search.FuzzyConfig()
		}

		searchCmd := commands.NewSearchCommand(GetRepo(), query, cfg)
		searchCmd.Limit = searchLimit
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%7.2f  %-14s %-30s %s\n", r.Score, r.Item.Code, r.Item.Name, strings.Join(r.MatchedFields, ","))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "tolerate small typos (edit distance up to 2)")
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "whole-field equality only")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "max results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}
