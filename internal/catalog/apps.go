package catalog

import "sync"

const assetBase = "https://raw.githubusercontent.com/fleuristes/app-registry/refs/heads/main/assets/"

func themed(light, dark string) Icon {
	return Icon{
		Type: IconTypeURL,
		URL:  &ThemedURL{Light: assetBase + light, Dark: assetBase + dark},
	}
}

// builtinApps is the catalog Fleur ships with. Declaration order is display
// order. Editing an entry is a source-level change; the list never mutates
// at runtime.
var builtinApps = []AppDescriptor{
	{
		Name:        "Browser",
		Description: "This is a browser app that allows Claude to navigate to any website, take screenshots, and interact with the page.",
		Stars:       4512,
		Icon:        themed("browser.svg", "browser.svg"),
		Category:    "Utilities",
		Price:       "Free",
		Developer:   "Google LLC",
		SourceURL:   "https://github.com/modelcontextprotocol/servers/tree/main/src/puppeteer",
		Config: RuntimeConfig{
			MCPKey:  "puppeteer",
			Runtime: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-puppeteer", "--debug"},
		},
		Features: []Feature{
			{
				Name:        "Navigate to any website",
				Description: "Navigate to any URL in the browser",
				Prompt:      "Navigate to the URL google.com and...",
			},
			{
				Name:        "Interact with any website - search, click, scroll, screenshot, etc.",
				Description: "Click elements on the page",
				Prompt:      "Go to google.com and search for...",
			},
		},
	},
	{
		Name:        "Time",
		Description: "Get and convert time from different timezones",
		Stars:       1287,
		Icon:        themed("time.svg", "time.svg"),
		Category:    "Utilities",
		Price:       "Free",
		Developer:   "Anthropic",
		SourceURL:   "https://github.com/modelcontextprotocol/servers/tree/main/src/time",
		Config: RuntimeConfig{
			MCPKey:  "time",
			Runtime: "npx",
			Args:    []string{"-y", "mcp-server-time", "--debug"},
		},
		Features: []Feature{
			{
				Name:        "Get current time in a timezone",
				Description: "Get the current time in a specific timezone",
				Prompt:      "What time is it in Tokyo?",
			},
			{
				Name:        "Convert time between timezones",
				Description: "Convert a time from one timezone to another",
				Prompt:      "Convert 3PM PST to JST",
			},
		},
	},
	{
		Name:        "Gmail",
		Description: "Read, search, and draft emails from your Gmail account without leaving Claude.",
		Stars:       2390,
		Icon:        themed("gmail.svg", "gmail.svg"),
		Category:    "Productivity",
		Price:       "Free",
		Developer:   "Google LLC",
		SourceURL:   "https://github.com/GongRzhe/Gmail-MCP-Server",
		Config: RuntimeConfig{
			MCPKey:  "gmail",
			Runtime: "npx",
			Args:    []string{"-y", "@gongrzhe/server-gmail-autoauth-mcp"},
		},
		Features: []Feature{
			{
				Name:        "Search your inbox",
				Description: "Search emails with Gmail query syntax",
				Prompt:      "Find the last email from my accountant",
			},
			{
				Name:        "Draft replies",
				Description: "Draft a reply to an existing thread",
				Prompt:      "Draft a polite reply to the latest email from...",
			},
		},
	},
	{
		Name:        "Linear",
		Description: "Create, update, and search Linear issues so Claude can manage your team's backlog.",
		Stars:       876,
		Icon:        themed("linear.svg", "linear-dark.svg"),
		Category:    "Productivity",
		Price:       "Free",
		Developer:   "Linear",
		SourceURL:   "https://github.com/jerhadf/linear-mcp-server",
		Config: RuntimeConfig{
			MCPKey:  "linear",
			Runtime: "npx",
			Args:    []string{"-y", "linear-mcp-server"},
		},
		Features: []Feature{
			{
				Name:        "Create issues",
				Description: "File a new issue in any team",
				Prompt:      "Create a Linear issue for the login bug we discussed",
			},
			{
				Name:        "Search the backlog",
				Description: "Search issues by text, assignee, or state",
				Prompt:      "List my in-progress Linear issues",
			},
		},
		EnvVars: []EnvVarSpec{
			{
				Name:        "LINEAR_API_KEY",
				Label:       "Linear API key",
				Description: "Personal API key from Linear settings, used to authenticate issue operations.",
			},
		},
	},
	{
		Name:        "June",
		Description: "Query your June product analytics: feature usage, retention, and company-level metrics.",
		Stars:       214,
		Icon:        themed("june.svg", "june-dark.svg"),
		Category:    "Analytics",
		Price:       "Free",
		Developer:   "June",
		SourceURL:   "https://github.com/juneHQ/june-mcp",
		Config: RuntimeConfig{
			MCPKey:  "june",
			Runtime: "npx",
			Args:    []string{"-y", "june-mcp"},
		},
		Features: []Feature{
			{
				Name:        "Usage reports",
				Description: "Summarize how a feature is being used",
				Prompt:      "How many companies used exports last week?",
			},
		},
		EnvVars: []EnvVarSpec{
			{
				Name:        "JUNE_API_URL",
				Label:       "June API URL",
				Description: "Base URL of the June API your workspace lives on.",
			},
			{
				Name:        "JUNE_API_KEY",
				Label:       "June API key",
				Description: "Workspace API key from June settings.",
			},
		},
	},
	{
		Name:        "Slack",
		Description: "Send messages, read channels, and search conversation history in your Slack workspace.",
		Stars:       3104,
		Icon:        themed("slack.svg", "slack.svg"),
		Category:    "Social",
		Price:       "Free",
		Developer:   "Slack Technologies",
		SourceURL:   "https://github.com/modelcontextprotocol/servers/tree/main/src/slack",
		Config: RuntimeConfig{
			MCPKey:  "slack",
			Runtime: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-slack"},
		},
		Features: []Feature{
			{
				Name:        "Post messages",
				Description: "Post a message to a channel",
				Prompt:      "Post a standup summary to #engineering",
			},
			{
				Name:        "Catch up on channels",
				Description: "Summarize recent activity in a channel",
				Prompt:      "What happened in #support today?",
			},
		},
		EnvVars: []EnvVarSpec{
			{
				Name:        "SLACK_BOT_TOKEN",
				Label:       "Bot token",
				Description: "Bot user OAuth token (starts with xoxb-).",
			},
			{
				Name:        "SLACK_TEAM_ID",
				Label:       "Team ID",
				Description: "The workspace team ID (starts with T).",
			},
		},
	},
	{
		Name:        "Notion",
		Description: "Browse and edit pages and databases in your Notion workspace.",
		Stars:       1932,
		Icon:        themed("notion.svg", "notion-dark.svg"),
		Category:    "Productivity",
		Price:       "Get",
		Developer:   "Notion Labs",
		SourceURL:   "https://github.com/makenotion/notion-mcp-server",
		Config: RuntimeConfig{
			MCPKey:  "notion",
			Runtime: "npx",
			Args:    []string{"-y", "@notionhq/notion-mcp-server"},
		},
		Features: []Feature{
			{
				Name:        "Query databases",
				Description: "Filter and sort any database you can access",
				Prompt:      "List open items from my tasks database",
			},
		},
		EnvVars: []EnvVarSpec{
			{
				Name:        "NOTION_API_KEY",
				Label:       "Notion API key",
				Description: "Internal integration secret from notion.so/my-integrations.",
			},
		},
	},
	{
		Name:        "Filesystem",
		Description: "Read, write, and organize files in directories you choose to share.",
		Stars:       5267,
		Icon:        themed("filesystem.svg", "filesystem.svg"),
		Category:    "Utilities",
		Price:       "Free",
		Developer:   "Anthropic",
		SourceURL:   "https://github.com/modelcontextprotocol/servers/tree/main/src/filesystem",
		Config: RuntimeConfig{
			MCPKey:  "filesystem",
			Runtime: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-filesystem"},
		},
		Features: []Feature{
			{
				Name:        "Organize folders",
				Description: "Move and rename files in bulk",
				Prompt:      "Tidy up my Downloads folder by file type",
			},
		},
	},
	{
		Name:        "Hacker News",
		Description: "Pull top stories, comments, and discussions from Hacker News.",
		Stars:       342,
		Icon:        themed("hackernews.svg", "hackernews.svg"),
		Category:    "Social",
		Price:       "Free",
		Developer:   "Y Combinator",
		SourceURL:   "https://github.com/erithwik/mcp-hn",
		Config: RuntimeConfig{
			MCPKey:  "hn",
			Runtime: "uvx",
			Args:    []string{"mcp-hn"},
		},
		Features: []Feature{
			{
				Name:        "Front page digest",
				Description: "Summarize the current front page",
				Prompt:      "What's on the HN front page right now?",
			},
		},
	},
	{
		Name:        "Weather",
		Description: "Current conditions and forecasts for any location, right in the conversation.",
		Stars:       189,
		Icon:        themed("weather.svg", "weather-dark.svg"),
		Category:    "Utilities",
		Price:       "Free",
		Developer:   "Open-Meteo",
		SourceURL:   "https://github.com/modelcontextprotocol/servers-archived/tree/main/src/weather",
		Config: RuntimeConfig{
			MCPKey:  "weather",
			Runtime: "uvx",
			Args:    []string{"mcp-weather"},
		},
		Features: []Feature{
			{
				Name:        "Forecasts",
				Description: "Multi-day forecast for a location",
				Prompt:      "Will it rain in Amsterdam this weekend?",
			},
		},
	},
}

// Builtin returns the built-in catalog, validated and built exactly once.
// The built-in list is maintained by hand, so a validation failure here is
// a programming error and panics rather than returning an error.
var Builtin = sync.OnceValue(func() *Catalog {
	c, err := New(builtinApps)
	if err != nil {
		panic(err)
	}
	return c
})
