package cmd

import (
	"fmt"

	"github.com/fleuristes/fleur-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fleur configuration",
	Long: `Manage fleur configuration settings.

Example:
  fleur config show
  fleur config set locale en-US`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  locale        - Language setting
                  Values: auto, en-US, etc.
  registry      - Catalog override (file path or URL); "builtin" resets
  clientConfig  - Claude Desktop config path; "default" resets

Example:
  fleur config set locale en-US
  fleur config set registry ./apps.json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Printf("locale:       %s\n", cfg.Locale)

	registry := cfg.Registry
	if registry == "" {
		registry = "(built-in)"
	}
	fmt.Printf("registry:     %s\n", registry)

	clientConfig := cfg.ClientConfig
	if clientConfig == "" {
		clientConfig = "(default)"
	}
	fmt.Printf("clientConfig: %s\n", clientConfig)

	fmt.Printf("\nConfig file: %s\n", config.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "locale":
		return config.SetLocale(value)
	case "registry":
		if value == "builtin" {
			value = ""
		}
		return config.SetRegistry(value)
	case "clientConfig":
		if value == "default" {
			value = ""
		}
		return config.SetClientConfig(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
