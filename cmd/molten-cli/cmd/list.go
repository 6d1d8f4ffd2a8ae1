package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"molten/internal/application"
	"molten/internal/application/commands"
)

var listSort string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog, sorted",
	Long: `List catalog items ordered by a criterion.

Criteria:
  name          case-insensitive, unnamed items last
  code          case-insensitive, uncoded items last
  manufacturer  grouped by COE compatibility class, unknown makers last

Examples:
  molten-cli list
  molten-cli list --sort manufacturer`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := application.ParseCatalogSort(listSort)
		if err != nil {
			return err
		}

		items, err := commands.NewListCatalogCommand(GetRepo(), criterion).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Printf("%-14s %-30s %-4s COE %s\n", item.Code, item.Name, item.Manufacturer, item.COE)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "name", "sort criterion: name, code, manufacturer")
	rootCmd.AddCommand(listCmd)
}
