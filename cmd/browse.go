package cmd

import (
	"fmt"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/fleuristes/fleur-cli/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open an interactive browser over the catalog. Tab toggles an app
between installed and not installed; Enter applies the changes.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	mgr, err := clientManager()
	if err != nil {
		return err
	}
	if err := mgr.Ensure(); err != nil {
		return err
	}

	result, err := tui.RunAppFinder(cat, mgr)
	if err != nil {
		return err
	}

	if result.Cancelled {
		fmt.Println(i18n.T("BrowseCancelled", nil))
		return nil
	}

	for _, item := range result.ToInstall {
		if err := mgr.Install(item.App); err != nil {
			return err
		}
		fmt.Println(i18n.T("InstallSuccess", map[string]any{"App": item.App.Name}))
	}

	for _, item := range result.ToUninstall {
		if err := mgr.Uninstall(item.App); err != nil {
			return err
		}
		fmt.Println(i18n.T("UninstallSuccess", map[string]any{"App": item.App.Name}))
	}

	return nil
}
