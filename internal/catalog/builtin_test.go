package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIsWellFormed(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.NotZero(t, c.Len())

	seen := make(map[string]struct{})
	for _, app := range c.ListAll() {
		assert.NotEmpty(t, app.Name)
		assert.NotEmpty(t, app.Description, "app %s", app.Name)
		assert.NotEmpty(t, app.Category, "app %s", app.Name)
		assert.NotEmpty(t, app.Price, "app %s", app.Name)
		assert.NotEmpty(t, app.Developer, "app %s", app.Name)
		assert.GreaterOrEqual(t, app.Stars, 0, "app %s", app.Name)
		assert.NotEmpty(t, app.Config.MCPKey, "app %s", app.Name)

		_, dup := seen[app.Name]
		assert.False(t, dup, "duplicate app name %s", app.Name)
		seen[app.Name] = struct{}{}

		light, ok := app.Icon.Resolve(false)
		assert.True(t, ok, "app %s has no light icon", app.Name)
		assert.NotEmpty(t, light)
		dark, ok := app.Icon.Resolve(true)
		assert.True(t, ok, "app %s has no dark icon", app.Name)
		assert.NotEmpty(t, dark)
	}
}

func TestBuiltinLookupsMatchListing(t *testing.T) {
	t.Parallel()

	c := Builtin()
	for _, listed := range c.ListAll() {
		found, err := c.FindByName(listed.Name)
		require.NoError(t, err)
		assert.Equal(t, listed, found)
	}
}

func TestBuiltinReturnsSameCatalog(t *testing.T) {
	t.Parallel()

	assert.Same(t, Builtin(), Builtin())
}

func TestBuiltinKnownEnvVars(t *testing.T) {
	t.Parallel()

	c := Builtin()

	specs, err := c.RequiredEnvVars("Browser")
	require.NoError(t, err)
	assert.Empty(t, specs)

	specs, err = c.RequiredEnvVars("Linear")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "LINEAR_API_KEY", specs[0].Name)

	specs, err = c.RequiredEnvVars("June")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "JUNE_API_URL", specs[0].Name)
	assert.Equal(t, "JUNE_API_KEY", specs[1].Name)
}
