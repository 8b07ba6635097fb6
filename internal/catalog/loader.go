package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultRegistryURL is where the hosted app registry lives
const DefaultRegistryURL = "https://raw.githubusercontent.com/fleuristes/app-registry/refs/heads/main/apps.json"

const fetchTimeout = 30 * time.Second

// Parse decodes a JSON array of descriptors and validates it into a catalog
func Parse(data []byte) (*Catalog, error) {
	var apps []AppDescriptor
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return New(apps)
}

// LoadFile loads and validates a catalog from a local JSON file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Fetch downloads and validates a catalog from a registry URL. An empty url
// means DefaultRegistryURL.
func Fetch(ctx context.Context, url string) (*Catalog, error) {
	if url == "" {
		url = DefaultRegistryURL
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch app registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry response: %w", err)
	}

	return Parse(data)
}
