package main

import (
	"embed"

	"github.com/fleuristes/fleur-cli/cmd"
	"github.com/fleuristes/fleur-cli/internal/config"
	"github.com/fleuristes/fleur-cli/internal/i18n"
	"github.com/jeandeaual/go-locale"
)

//go:embed locales/*.json
var localeFS embed.FS

func main() {
	lang := getLocale()
	i18n.Init(localeFS, lang)

	cmd.Execute()
}

// getLocale returns the locale based on config
func getLocale() string {
	configLocale := config.GetLocale()

	// If "auto", detect system locale
	if configLocale == "auto" {
		userLocale, err := locale.GetLocale()
		if err != nil || userLocale == "" {
			return "en-US"
		}
		return userLocale
	}

	// Use configured locale
	return configLocale
}
