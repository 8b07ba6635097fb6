package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every app in the catalog",
	Long: `List the catalog in its display order.

Example:
  fleur list
  fleur list --category Productivity
  fleur list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only show apps in this category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the raw descriptors as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	apps := cat.ListAll()
	if listCategory != "" {
		filtered := apps[:0]
		for _, app := range apps {
			if strings.EqualFold(app.Category, listCategory) {
				filtered = append(filtered, app)
			}
		}
		apps = filtered
	}

	if listJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(apps)
	}

	fmt.Println(i18n.T("ListHeader", map[string]any{"Count": len(apps)}, len(apps)))
	fmt.Println(strings.Repeat("-", 40))

	if len(apps) == 0 {
		fmt.Println(i18n.T("NoApps", nil))
		return nil
	}

	for _, app := range apps {
		fmt.Printf("  %s (%s, %s)\n", app.Name, app.Category, app.Price)
		fmt.Printf("    %s\n", app.Description)
		if len(app.EnvVars) > 0 {
			names := make([]string, len(app.EnvVars))
			for i, ev := range app.EnvVars {
				names[i] = ev.Name
			}
			fmt.Printf("    Requires: %s\n", strings.Join(names, ", "))
		}
		fmt.Println()
	}

	return nil
}
