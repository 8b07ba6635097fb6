package cmd

import (
	"fmt"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var envSet []string

var envCmd = &cobra.Command{
	Use:   "env <app>",
	Short: "Show or set an app's environment variables",
	Long: `Show the environment variables an app declares, together with any
saved values, or set values with --set.

Example:
  fleur env June
  fleur env Linear --set LINEAR_API_KEY=lin_api_...`,
	Args: cobra.ExactArgs(1),
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringArrayVar(&envSet, "set", nil, "KEY=value pair to save (repeatable)")
}

func runEnv(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	app, err := cat.FindByName(args[0])
	if err != nil {
		return err
	}

	specs, err := cat.RequiredEnvVars(app.Name)
	if err != nil {
		return err
	}

	mgr, err := clientManager()
	if err != nil {
		return err
	}

	if len(envSet) > 0 {
		values := make(map[string]string, len(envSet))
		for _, pair := range envSet {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --set value %q, expected KEY=value", pair)
			}
			values[key] = value
		}
		if err := mgr.SaveEnv(app, values); err != nil {
			return err
		}
		fmt.Println(i18n.T("EnvSaved", map[string]any{"App": app.Name, "Count": len(values)}, len(values)))
		return nil
	}

	if len(specs) == 0 {
		fmt.Println(i18n.T("NoEnvVars", map[string]any{"App": app.Name}))
		return nil
	}

	saved, err := mgr.Env(app)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		state := i18n.T("EnvUnset", nil)
		if saved[spec.Name] != "" {
			state = i18n.T("EnvSet", nil)
		}
		fmt.Printf("  %s (%s) [%s]\n", spec.Name, spec.Label, state)
		fmt.Printf("    %s\n", spec.Description)
	}

	return nil
}
