package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCatalog is wrapped by every construction-time validation
	// failure. A catalog that fails validation must not be used; anything
	// depending on it should refuse to start.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrNotFound is returned by name-keyed lookups when no app matches
	ErrNotFound = errors.New("app not found")
)

// Catalog is an immutable, ordered collection of app descriptors. It is
// fully materialized at construction and safe for concurrent readers.
type Catalog struct {
	apps  []AppDescriptor
	index map[string]int
}

// New builds a catalog from the given descriptors, preserving their order.
// It fails fast with an error wrapping ErrMalformedCatalog when any
// descriptor violates the catalog invariants: names must be non-empty and
// unique, display fields must be non-empty, url icons must carry both theme
// paths, and env var declarations must be non-empty with unique names.
func New(apps []AppDescriptor) (*Catalog, error) {
	index := make(map[string]int, len(apps))

	for i, app := range apps {
		if app.Name == "" {
			return nil, fmt.Errorf("app at position %d has no name: %w", i, ErrMalformedCatalog)
		}
		if _, dup := index[app.Name]; dup {
			return nil, fmt.Errorf("duplicate app name %q: %w", app.Name, ErrMalformedCatalog)
		}
		if err := validateApp(app); err != nil {
			return nil, fmt.Errorf("app %q: %w", app.Name, err)
		}
		index[app.Name] = i
	}

	return &Catalog{apps: apps, index: index}, nil
}

func validateApp(app AppDescriptor) error {
	if app.Description == "" {
		return fmt.Errorf("description is required: %w", ErrMalformedCatalog)
	}
	if app.Category == "" {
		return fmt.Errorf("category is required: %w", ErrMalformedCatalog)
	}
	if app.Price == "" {
		return fmt.Errorf("price is required: %w", ErrMalformedCatalog)
	}
	if app.Developer == "" {
		return fmt.Errorf("developer is required: %w", ErrMalformedCatalog)
	}
	if app.Icon.Type == IconTypeURL {
		if app.Icon.URL == nil || app.Icon.URL.Light == "" || app.Icon.URL.Dark == "" {
			return fmt.Errorf("url icon needs both light and dark paths: %w", ErrMalformedCatalog)
		}
	}
	if app.EnvVars != nil && len(app.EnvVars) == 0 {
		return fmt.Errorf("envVars declared but empty: %w", ErrMalformedCatalog)
	}

	seen := make(map[string]struct{}, len(app.EnvVars))
	for _, ev := range app.EnvVars {
		if ev.Name == "" {
			return fmt.Errorf("env var with empty name: %w", ErrMalformedCatalog)
		}
		if _, dup := seen[ev.Name]; dup {
			return fmt.Errorf("duplicate env var %q: %w", ev.Name, ErrMalformedCatalog)
		}
		seen[ev.Name] = struct{}{}
	}

	return nil
}

// Len returns the number of apps in the catalog
func (c *Catalog) Len() int {
	return len(c.apps)
}

// ListAll returns every descriptor in declaration order. Order is display
// order for consumers and is stable across calls. The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) ListAll() []AppDescriptor {
	apps := make([]AppDescriptor, len(c.apps))
	copy(apps, c.apps)
	return apps
}

// FindByName returns the unique descriptor with the given name, or an error
// wrapping ErrNotFound
func (c *Catalog) FindByName(name string) (AppDescriptor, error) {
	i, ok := c.index[name]
	if !ok {
		return AppDescriptor{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return c.apps[i], nil
}

// RequiredEnvVars returns the env var specs the named app declares, in
// declaration order. Apps without declarations yield an empty slice. The
// name must exist in the catalog or an error wrapping ErrNotFound is
// returned.
func (c *Catalog) RequiredEnvVars(name string) ([]EnvVarSpec, error) {
	app, err := c.FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(app.EnvVars) == 0 {
		return []EnvVarSpec{}, nil
	}
	specs := make([]EnvVarSpec, len(app.EnvVars))
	copy(specs, app.EnvVars)
	return specs, nil
}

// Categories returns the distinct category labels in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, app := range c.apps {
		if _, ok := seen[app.Category]; ok {
			continue
		}
		seen[app.Category] = struct{}{}
		categories = append(categories, app.Category)
	}
	return categories
}
