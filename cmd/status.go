package cmd

import (
	"fmt"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show install state for every app",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cat, err := activeCatalog(cmd.Context())
	if err != nil {
		return err
	}

	mgr, err := clientManager()
	if err != nil {
		return err
	}

	statuses, err := mgr.Statuses(cat)
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("StatusHeader", map[string]any{"Path": mgr.Path()}))
	fmt.Println(strings.Repeat("-", 40))

	for _, app := range cat.ListAll() {
		marker := "[ ]"
		if statuses.Installed[app.Name] {
			marker = "[*]"
		}
		line := fmt.Sprintf("  %s %s", marker, app.Name)
		if !statuses.Configured[app.Name] {
			line += " " + i18n.T("RuntimeMissing", nil)
		}
		fmt.Println(line)
	}

	return nil
}
