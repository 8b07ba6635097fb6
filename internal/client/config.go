// Package client manages the Claude Desktop configuration file that Fleur
// installs integrations into.
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/fleuristes/fleur-cli/internal/runtime"
)

// ServerEntry is one entry in the config's mcpServers map. An entry with an
// empty command is a stub that only carries saved env values for an app that
// is not currently installed.
type ServerEntry struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Statuses reports per-app install and configuration state, keyed by app
// name
type Statuses struct {
	Installed  map[string]bool `json:"installed"`
	Configured map[string]bool `json:"configured"`
}

// Manager reads and writes a single claude_desktop_config.json. Top-level
// keys other than mcpServers are preserved untouched.
type Manager struct {
	path string
}

// DefaultPath returns the Claude Desktop config location for the current
// user
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
}

// New returns a manager for the config file at path
func New(path string) *Manager {
	return &Manager{path: path}
}

// Path returns the config file location this manager operates on
func (m *Manager) Path() string {
	return m.path
}

// Ensure creates the config file with an empty mcpServers object when it
// does not exist yet
func (m *Manager) Ensure() error {
	if _, err := os.Stat(m.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := map[string]json.RawMessage{"mcpServers": json.RawMessage("{}")}
	return m.save(raw, map[string]ServerEntry{})
}

// load reads the config file, returning the full top-level document plus the
// decoded mcpServers map. A missing file yields empty structures.
func (m *Manager) load() (map[string]json.RawMessage, map[string]ServerEntry, error) {
	servers := make(map[string]ServerEntry)

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, servers, nil
		}
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if rawServers, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(rawServers, &servers); err != nil {
			return nil, nil, fmt.Errorf("failed to parse mcpServers: %w", err)
		}
	}

	return raw, servers, nil
}

func (m *Manager) save(raw map[string]json.RawMessage, servers map[string]ServerEntry) error {
	encoded, err := json.Marshal(servers)
	if err != nil {
		return err
	}
	raw["mcpServers"] = encoded

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(m.path, data, 0644)
}

// Install writes the app's server entry into the config, resolving the
// runtime to a concrete command. Env values previously saved for the app
// survive, so configure-then-install and install-then-configure both work.
// Installing an already installed app rewrites the entry.
func (m *Manager) Install(app catalog.AppDescriptor) error {
	command, err := runtime.Resolve(app.Config.Runtime)
	if err != nil {
		return fmt.Errorf("cannot install %s: %w", app.Name, err)
	}

	raw, servers, err := m.load()
	if err != nil {
		return err
	}

	entry := ServerEntry{Command: command, Args: app.Config.Args}
	if existing, ok := servers[app.Config.MCPKey]; ok {
		entry.Env = existing.Env
	}
	servers[app.Config.MCPKey] = entry

	return m.save(raw, servers)
}

// Uninstall removes the app's server entry. Removing an app that is not
// installed is not an error.
func (m *Manager) Uninstall(app catalog.AppDescriptor) error {
	raw, servers, err := m.load()
	if err != nil {
		return err
	}

	if _, ok := servers[app.Config.MCPKey]; !ok {
		return nil
	}
	delete(servers, app.Config.MCPKey)

	return m.save(raw, servers)
}

// IsInstalled reports whether the app has a runnable entry in the config.
// Env-only stubs do not count as installed.
func (m *Manager) IsInstalled(app catalog.AppDescriptor) (bool, error) {
	_, servers, err := m.load()
	if err != nil {
		return false, err
	}
	entry, ok := servers[app.Config.MCPKey]
	return ok && entry.Command != "", nil
}

// SaveEnv persists env values for the app, merging over any previously
// saved values. The app does not need to be installed; a stub entry is
// created so the values are there when it is.
func (m *Manager) SaveEnv(app catalog.AppDescriptor, values map[string]string) error {
	raw, servers, err := m.load()
	if err != nil {
		return err
	}

	entry := servers[app.Config.MCPKey]
	if entry.Env == nil {
		entry.Env = make(map[string]string, len(values))
	}
	for k, v := range values {
		entry.Env[k] = v
	}
	servers[app.Config.MCPKey] = entry

	return m.save(raw, servers)
}

// Env returns the saved env values for the app. Apps with nothing saved
// yield an empty map.
func (m *Manager) Env(app catalog.AppDescriptor) (map[string]string, error) {
	_, servers, err := m.load()
	if err != nil {
		return nil, err
	}

	entry, ok := servers[app.Config.MCPKey]
	if !ok || entry.Env == nil {
		return map[string]string{}, nil
	}

	env := make(map[string]string, len(entry.Env))
	for k, v := range entry.Env {
		env[k] = v
	}
	return env, nil
}

// Statuses reports, for every app in the catalog, whether it is installed
// in the config and whether its runtime resolves to a runnable command.
func (m *Manager) Statuses(c *catalog.Catalog) (Statuses, error) {
	_, servers, err := m.load()
	if err != nil {
		return Statuses{}, err
	}

	statuses := Statuses{
		Installed:  make(map[string]bool, c.Len()),
		Configured: make(map[string]bool, c.Len()),
	}

	for _, app := range c.ListAll() {
		entry, ok := servers[app.Config.MCPKey]
		statuses.Installed[app.Name] = ok && entry.Command != ""

		_, err := runtime.Resolve(app.Config.Runtime)
		statuses.Configured[app.Name] = err == nil
	}

	return statuses, nil
}
