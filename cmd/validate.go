package cmd

import (
	"fmt"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file-or-url]",
	Short: "Validate a catalog",
	Long: `Validate a catalog JSON file or registry URL. With no argument the
built-in catalog and any configured override are checked.

Example:
  fleur validate apps.json
  fleur validate https://example.com/apps.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		cat *catalog.Catalog
		err error
	)

	if len(args) == 1 {
		source := args[0]
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			cat, err = catalog.Fetch(cmd.Context(), source)
		} else {
			cat, err = catalog.LoadFile(source)
		}
	} else {
		cat, err = activeCatalog(cmd.Context())
	}
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("CatalogValid", map[string]any{"Count": cat.Len()}, cat.Len()))
	return nil
}
