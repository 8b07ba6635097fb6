package search

import (
	"sort"
	"strings"

	"github.com/fleuristes/fleur-cli/internal/catalog"
	"github.com/sahilm/fuzzy"
)

// Result is one search hit
type Result struct {
	App   catalog.AppDescriptor
	Score int // Higher is better
}

// appSource adapts a descriptor list for fuzzy searching
type appSource []catalog.AppDescriptor

// String returns the searchable string for an app
func (s appSource) String(i int) string {
	app := s[i]
	parts := []string{app.Name, app.Description, app.Category, app.Developer}
	return strings.ToLower(strings.Join(parts, " "))
}

// Len returns the number of apps
func (s appSource) Len() int {
	return len(s)
}

// Fuzzy performs a fuzzy search over the catalog, best matches first
func Fuzzy(c *catalog.Catalog, query string) []Result {
	apps := appSource(c.ListAll())
	matches := fuzzy.FindFrom(strings.ToLower(query), apps)

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			App:   apps[match.Index],
			Score: match.Score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Substring performs a plain substring search over name, description,
// category, and developer
func Substring(c *catalog.Catalog, query string) []Result {
	query = strings.ToLower(query)

	var results []Result
	for _, app := range c.ListAll() {
		if matchesQuery(app, query) {
			results = append(results, Result{App: app, Score: 100})
		}
	}
	return results
}

func matchesQuery(app catalog.AppDescriptor, query string) bool {
	for _, field := range []string{app.Name, app.Description, app.Category, app.Developer} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
