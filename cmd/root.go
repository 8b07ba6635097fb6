package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/fleuristes/fleur-cli/internal/client"
	"github.com/fleuristes/fleur-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	registryFlag string

	rootCmd = &cobra.Command{
		Use:           "fleur",
		Short:         "Browse and install MCP integrations for Claude Desktop",
		SilenceErrors: true,
		Long: `fleur is the command-line companion to the Fleur app store.

It ships the same catalog of MCP integrations and can list, search,
and inspect them, install them into Claude Desktop, and manage the
environment variables an integration needs.

Commands:
  list         Show the catalog
  info         Show one app in detail
  search       Fuzzy-search the catalog
  install      Install an app into Claude Desktop
  uninstall    Remove an installed app
  env          Show or set an app's environment variables
  status       Show install state for every app
  browse       Interactive catalog browser
  validate     Validate a catalog file
  config       Manage configuration`,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "catalog override: a JSON file path or registry URL")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// activeCatalog resolves the catalog for this invocation: the --registry
// flag wins, then the configured override, then the built-in catalog.
func activeCatalog(ctx context.Context) (*catalog.Catalog, error) {
	source := registryFlag
	if source == "" {
		source = config.GetRegistry()
	}
	if source == "" {
		return catalog.Builtin(), nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return catalog.Fetch(ctx, source)
	}
	return catalog.LoadFile(source)
}

// clientManager returns the manager for the Claude Desktop config file
func clientManager() (*client.Manager, error) {
	path := config.GetClientConfig()
	if path == "" {
		var err error
		path, err = client.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return client.New(path), nil
}
