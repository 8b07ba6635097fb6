package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(name, key string) catalog.AppDescriptor {
	return catalog.AppDescriptor{
		Name:        name,
		Description: "test app",
		Icon: catalog.Icon{
			Type: catalog.IconTypeURL,
			URL:  &catalog.ThemedURL{Light: "l.svg", Dark: "d.svg"},
		},
		Category:  "Utilities",
		Price:     "Free",
		Developer: "Test",
		Config: catalog.RuntimeConfig{
			MCPKey: key,
			// Literal runtime so resolution does not depend on the
			// host having npx or uvx available.
			Runtime: "/usr/bin/env",
			Args:    []string{"server", "--debug"},
		},
	}
}

func testManager(t *testing.T) *Manager {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "claude_desktop_config.json"))
}

func TestEnsureCreatesEmptyConfig(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	require.NoError(t, m.Ensure())

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)

	var doc map[string]map[string]ServerEntry
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Empty(t, doc["mcpServers"])

	// Ensure is idempotent
	require.NoError(t, m.Ensure())
}

func TestInstallUninstall(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	app := testApp("Browser", "puppeteer")

	installed, err := m.IsInstalled(app)
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, m.Install(app))

	installed, err = m.IsInstalled(app)
	require.NoError(t, err)
	assert.True(t, installed)

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	var doc map[string]map[string]ServerEntry
	require.NoError(t, json.Unmarshal(data, &doc))
	entry := doc["mcpServers"]["puppeteer"]
	assert.Equal(t, "/usr/bin/env", entry.Command)
	assert.Equal(t, []string{"server", "--debug"}, entry.Args)

	require.NoError(t, m.Uninstall(app))

	installed, err = m.IsInstalled(app)
	require.NoError(t, err)
	assert.False(t, installed)

	// Uninstalling again is a no-op
	require.NoError(t, m.Uninstall(app))
}

func TestEnvRoundTrip(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	app := testApp("Linear", "linear")

	require.NoError(t, m.Install(app))
	require.NoError(t, m.SaveEnv(app, map[string]string{"LINEAR_API_KEY": "lin_abc"}))

	env, err := m.Env(app)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"LINEAR_API_KEY": "lin_abc"}, env)

	// Updates merge over existing values
	require.NoError(t, m.SaveEnv(app, map[string]string{"LINEAR_API_KEY": "lin_xyz"}))
	env, err = m.Env(app)
	require.NoError(t, err)
	assert.Equal(t, "lin_xyz", env["LINEAR_API_KEY"])
}

func TestEnvSavedBeforeInstallSurvives(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	app := testApp("June", "june")

	require.NoError(t, m.SaveEnv(app, map[string]string{
		"JUNE_API_URL": "https://api.june.so",
		"JUNE_API_KEY": "june_123",
	}))

	// A stub with only env does not count as installed
	installed, err := m.IsInstalled(app)
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, m.Install(app))

	env, err := m.Env(app)
	require.NoError(t, err)
	assert.Equal(t, "https://api.june.so", env["JUNE_API_URL"])
	assert.Equal(t, "june_123", env["JUNE_API_KEY"])
}

func TestEnvForUnknownEntryIsEmpty(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	env, err := m.Env(testApp("Browser", "puppeteer"))
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestForeignTopLevelKeysArePreserved(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	seed := `{"globalShortcut": "Cmd+Space", "mcpServers": {}}`
	require.NoError(t, os.WriteFile(m.Path(), []byte(seed), 0644))

	require.NoError(t, m.Install(testApp("Browser", "puppeteer")))

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `"Cmd+Space"`, string(doc["globalShortcut"]))
}

func TestStatuses(t *testing.T) {
	t.Parallel()

	installed := testApp("Browser", "puppeteer")
	notInstalled := testApp("Time", "time")
	broken := testApp("Broken", "broken")
	broken.Config.Runtime = ""

	cat, err := catalog.New([]catalog.AppDescriptor{installed, notInstalled, broken})
	require.NoError(t, err)

	m := testManager(t)
	require.NoError(t, m.Install(installed))

	statuses, err := m.Statuses(cat)
	require.NoError(t, err)

	assert.True(t, statuses.Installed["Browser"])
	assert.False(t, statuses.Installed["Time"])
	assert.False(t, statuses.Installed["Broken"])

	assert.True(t, statuses.Configured["Browser"])
	assert.True(t, statuses.Configured["Time"])
	assert.False(t, statuses.Configured["Broken"])
}
