package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryFixture = `[
  {
    "name": "Browser",
    "description": "Browse the web",
    "stars": 12,
    "icon": {
      "type": "url",
      "url": {"light": "https://example.com/browser.svg", "dark": "https://example.com/browser.svg"}
    },
    "category": "Utilities",
    "price": "Free",
    "developer": "Google LLC",
    "config": {"mcpKey": "puppeteer", "runtime": "npx", "args": ["-y", "@modelcontextprotocol/server-puppeteer"]}
  },
  {
    "name": "Linear",
    "description": "Manage Linear issues",
    "stars": 3,
    "icon": {
      "type": "url",
      "url": {"light": "https://example.com/linear.svg", "dark": "https://example.com/linear-dark.svg"}
    },
    "category": "Productivity",
    "price": "Free",
    "developer": "Linear",
    "config": {"mcpKey": "linear", "runtime": "npx", "args": ["-y", "linear-mcp-server"]},
    "envVars": [
      {"name": "LINEAR_API_KEY", "label": "API key", "description": "Personal API key"}
    ]
  }
]`

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data      string
		wantApps  int
		wantErrIs error
		wantErr   string
	}{
		"valid registry": {
			data:     registryFixture,
			wantApps: 2,
		},
		"not json": {
			data:    "{nope",
			wantErr: "failed to parse catalog JSON",
		},
		"duplicate names": {
			data: `[
			  {"name": "Gmail", "description": "d", "icon": {"type": "url", "url": {"light": "l", "dark": "d"}}, "category": "c", "price": "Free", "developer": "dev"},
			  {"name": "Gmail", "description": "d", "icon": {"type": "url", "url": {"light": "l", "dark": "d"}}, "category": "c", "price": "Free", "developer": "dev"}
			]`,
			wantErrIs: ErrMalformedCatalog,
			wantErr:   `duplicate app name "Gmail"`,
		},
		"unknown icon variant is tolerated": {
			data:     `[{"name": "A", "description": "d", "icon": {"type": "inline"}, "category": "c", "price": "Free", "developer": "dev"}]`,
			wantApps: 1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse([]byte(tc.data))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr)
				if tc.wantErrIs != nil {
					assert.ErrorIs(t, err, tc.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantApps, c.Len())
		})
	}
}

func TestParsePreservesEnvVarOrder(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(registryFixture))
	require.NoError(t, err)

	specs, err := c.RequiredEnvVars("Linear")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "LINEAR_API_KEY", specs[0].Name)
	assert.Equal(t, "API key", specs[0].Label)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "apps.json")
	require.NoError(t, os.WriteFile(path, []byte(registryFixture), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "catalog not found")
}

func TestFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(registryFixture))
	}))
	defer srv.Close()

	c, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestFetchNonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "registry returned")
}

func TestIconRoundTrip(t *testing.T) {
	t.Parallel()

	in := `{"type": "sprite", "spriteSheet": "future.png"}`

	var icon Icon
	require.NoError(t, json.Unmarshal([]byte(in), &icon))
	assert.Equal(t, IconType("sprite"), icon.Type)

	_, ok := icon.Resolve(false)
	assert.False(t, ok, "unknown variant must resolve to a placeholder")

	out, err := json.Marshal(icon)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "sprite"}`, string(out))
}
