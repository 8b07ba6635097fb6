package cmd

import (
	"fmt"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <app>",
	Short:   "Remove an installed app from Claude Desktop",
	Aliases: []string{"remove", "rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	app, err := cat.FindByName(args[0])
	if err != nil {
		return err
	}

	mgr, err := clientManager()
	if err != nil {
		return err
	}

	installed, err := mgr.IsInstalled(app)
	if err != nil {
		return err
	}
	if !installed {
		fmt.Println(i18n.T("NotInstalled", map[string]any{"App": app.Name}))
		return nil
	}

	if err := mgr.Uninstall(app); err != nil {
		return err
	}

	fmt.Println(i18n.T("UninstallSuccess", map[string]any{"App": app.Name}))
	return nil
}
