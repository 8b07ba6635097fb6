package cmd

import (
	"fmt"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <app>",
	Short: "Install an app into Claude Desktop",
	Long: `Install an app's MCP server into the Claude Desktop configuration.

Apps that declare environment variables should be configured with
'fleur env <app> --set KEY=value' before or after installing; saved
values are kept either way.

Example:
  fleur install Browser
  fleur install Linear`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
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
	if err := mgr.Ensure(); err != nil {
		return err
	}

	if err := mgr.Install(app); err != nil {
		return err
	}

	fmt.Println(i18n.T("InstallSuccess", map[string]any{"App": app.Name}))

	if len(app.EnvVars) == 0 {
		return nil
	}

	// Point out any declared env vars that still have no value
	saved, err := mgr.Env(app)
	if err != nil {
		return err
	}
	var missing []string
	for _, ev := range app.EnvVars {
		if saved[ev.Name] == "" {
			missing = append(missing, ev.Name)
		}
	}
	if len(missing) > 0 {
		fmt.Println(i18n.T("EnvMissing", map[string]any{
			"App":  app.Name,
			"Vars": strings.Join(missing, ", "),
		}))
	}

	return nil
}
