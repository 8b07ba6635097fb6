package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <app>",
	Short: "Show one app in detail",
	Long: `Show the full catalog entry for a single app.

Example:
  fleur info Linear`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	app, err := cat.FindByName(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", app.Name)
	fmt.Printf("  Developer: %s\n", app.Developer)
	fmt.Printf("  Category:  %s\n", app.Category)
	fmt.Printf("  Price:     %s\n", app.Price)
	fmt.Printf("  Stars:     %d\n", app.Stars)
	fmt.Printf("\n  %s\n", app.Description)

	if light, ok := app.Icon.Resolve(false); ok {
		fmt.Printf("\n  Icon (light): %s\n", light)
	}
	if dark, ok := app.Icon.Resolve(true); ok {
		fmt.Printf("  Icon (dark):  %s\n", dark)
	}

	if app.SourceURL != "" {
		fmt.Printf("\n  Source: %s\n", app.SourceURL)
	}

	if len(app.Features) > 0 {
		fmt.Println("\n  Features:")
		for _, f := range app.Features {
			fmt.Printf("    - %s\n", f.Name)
			if f.Prompt != "" {
				fmt.Printf("      e.g. %q\n", f.Prompt)
			}
		}
	}

	if len(app.EnvVars) > 0 {
		fmt.Println("\n  Environment variables:")
		for _, ev := range app.EnvVars {
			fmt.Printf("    %s (%s)\n", ev.Name, ev.Label)
			fmt.Printf("      %s\n", ev.Description)
		}
	}

	return nil
}
