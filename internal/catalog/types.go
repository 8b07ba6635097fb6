package catalog

// AppDescriptor is one entry in the app catalog, describing a single
// installable MCP integration
type AppDescriptor struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Stars       int           `json:"stars"`
	Icon        Icon          `json:"icon"`
	Category    string        `json:"category"`
	Price       string        `json:"price"`
	Developer   string        `json:"developer"`
	SourceURL   string        `json:"sourceUrl,omitempty"`
	Config      RuntimeConfig `json:"config"`
	Features    []Feature     `json:"features,omitempty"`
	EnvVars     []EnvVarSpec  `json:"envVars,omitempty"`
}

// IconType discriminates icon variants. Consumers must treat unrecognized
// types as "no icon" and fall back to a placeholder, never fail.
type IconType string

const (
	// IconTypeURL is an icon referenced by a light/dark pair of image URLs
	IconTypeURL IconType = "url"
)

// Icon is a tagged union over icon variants. Only the "url" variant is
// populated today; unknown variants decode with their payload fields unset.
type Icon struct {
	Type IconType   `json:"type"`
	URL  *ThemedURL `json:"url,omitempty"`
}

// ThemedURL is a pair of image paths for light and dark UI themes
type ThemedURL struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Resolve returns the image path for the requested theme. The second return
// is false when the variant is unknown or carries no usable path, in which
// case callers should render a placeholder.
func (i Icon) Resolve(dark bool) (string, bool) {
	if i.Type != IconTypeURL || i.URL == nil {
		return "", false
	}
	if dark {
		return i.URL.Dark, i.URL.Dark != ""
	}
	return i.URL.Light, i.URL.Light != ""
}

// RuntimeConfig describes how the integration's MCP server is launched
type RuntimeConfig struct {
	MCPKey  string   `json:"mcpKey"`
	Runtime string   `json:"runtime"` // "npx", "uvx", or a literal command
	Args    []string `json:"args"`
}

// Feature is a showcased capability with an example prompt
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt,omitempty"`
}

// EnvVarSpec declares one environment variable an integration needs at
// runtime, with display metadata for a configuration form
type EnvVarSpec struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
