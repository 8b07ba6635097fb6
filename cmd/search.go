package cmd

import (
	"fmt"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/fleuristes/fleur-cli/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the catalog",
	Long: `Search the catalog using fuzzy matching.

The search looks through app names, descriptions, categories, and
developers.

Example:
  fleur search calendar
  fleur search analytics`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	results := search.Fuzzy(cat, keyword)

	if len(results) == 0 {
		fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": keyword}))
		return nil
	}

	fmt.Println(i18n.T("SearchResults", map[string]any{"Count": len(results)}, len(results)))
	fmt.Println()

	for _, r := range results {
		fmt.Printf("  %s (%s)\n", r.App.Name, r.App.Category)

		if r.App.Description != "" {
			fmt.Printf("    %s\n", r.App.Description)
		}

		if len(r.App.EnvVars) > 0 {
			names := make([]string, len(r.App.EnvVars))
			for i, ev := range r.App.EnvVars {
				names[i] = ev.Name
			}
			fmt.Printf("    Requires: %s\n", strings.Join(names, ", "))
		}

		fmt.Println()
	}

	return nil
}
