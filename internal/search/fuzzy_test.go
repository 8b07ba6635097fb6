package search

import (
	"testing"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	icon := catalog.Icon{
		Type: catalog.IconTypeURL,
		URL:  &catalog.ThemedURL{Light: "l.svg", Dark: "d.svg"},
	}

	c, err := catalog.New([]catalog.AppDescriptor{
		{
			Name: "Browser", Description: "Navigate websites and take screenshots",
			Icon: icon, Category: "Utilities", Price: "Free", Developer: "Google LLC",
		},
		{
			Name: "Linear", Description: "Manage issues in your backlog",
			Icon: icon, Category: "Productivity", Price: "Free", Developer: "Linear",
		},
		{
			Name: "Slack", Description: "Send messages to your workspace",
			Icon: icon, Category: "Social", Price: "Free", Developer: "Slack Technologies",
		},
	})
	require.NoError(t, err)
	return c
}

func TestFuzzyFindsByName(t *testing.T) {
	t.Parallel()

	results := Fuzzy(fixtureCatalog(t), "linear")
	require.NotEmpty(t, results)
	assert.Equal(t, "Linear", results[0].App.Name)
}

func TestFuzzyMatchesDescription(t *testing.T) {
	t.Parallel()

	results := Fuzzy(fixtureCatalog(t), "screenshots")
	require.NotEmpty(t, results)
	assert.Equal(t, "Browser", results[0].App.Name)
}

func TestFuzzyNoMatches(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Fuzzy(fixtureCatalog(t), "zzzzqqqq"))
}

func TestSubstring(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		query string
		want  []string
	}{
		"by category":   {query: "social", want: []string{"Slack"}},
		"by developer":  {query: "google", want: []string{"Browser"}},
		"no hits":       {query: "kubernetes", want: nil},
		"catalog order": {query: "your", want: []string{"Linear", "Slack"}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			results := Substring(fixtureCatalog(t), tc.query)
			var names []string
			for _, r := range results {
				names = append(names, r.App.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}
