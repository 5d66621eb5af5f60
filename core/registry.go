package core

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"
)

const (
	// ModUpdaterURL is a one-line document pointing at the current
	// registry location, maintained alongside Everest itself.
	ModUpdaterURL = "https://everestapi.github.io/modupdater.txt"
)

// RemoteModEntry is one row of the remote registry. Name is injected from
// the registry key, it is not a document field. Checksums is the
// authoritative identity of the published artifact; Version is advisory
// free text supplied by the mod author.
type RemoteModEntry struct {
	Name           string   `yaml:"-"`
	Version        string   `yaml:"Version"`
	Size           int64    `yaml:"Size"`
	LastUpdate     int64    `yaml:"LastUpdate"`
	URL            string   `yaml:"URL"`
	Checksums      []string `yaml:"xxHash"`
	GameBananaType string   `yaml:"GameBananaType"`
	GameBananaID   int64    `yaml:"GameBananaId"`
}

// HasMatchingChecksum reports whether the computed fingerprint is a member
// of this entry's checksum set. Both sides are compared as normalized
// lowercase hex; no prefix or partial matches.
func (e RemoteModEntry) HasMatchingChecksum(fingerprint string) bool {
	want := strings.ToLower(fingerprint)
	for _, sum := range e.Checksums {
		if strings.ToLower(sum) == want {
			return true
		}
	}
	return false
}

// Registry is the full remote catalog, keyed by mod name. It is an
// immutable snapshot for the duration of one synchronization run.
type Registry struct {
	Entries map[string]RemoteModEntry
}

// ParseRegistry decodes the serialized registry document.
func ParseRegistry(data []byte) (Registry, error) {
	entries := make(map[string]RemoteModEntry)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return Registry{}, fmt.Errorf("parsing mod registry: %w", err)
	}
	for name, entry := range entries {
		entry.Name = name
		entries[name] = entry
	}
	return Registry{Entries: entries}, nil
}

// Get looks up a registry entry by exact mod name.
func (r Registry) Get(name string) (RemoteModEntry, bool) {
	entry, ok := r.Entries[name]
	return entry, ok
}

// Search returns entries whose names fuzzy-match the query, best match
// first. An empty query returns every entry sorted by name.
func (r Registry) Search(query string) []RemoteModEntry {
	names := make([]string, 0, len(r.Entries))
	for name := range r.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	if query == "" {
		results := make([]RemoteModEntry, 0, len(names))
		for _, name := range names {
			results = append(results, r.Entries[name])
		}
		return results
	}

	matches := fuzzy.Find(query, names)
	results := make([]RemoteModEntry, 0, len(matches))
	for _, m := range matches {
		results = append(results, r.Entries[m.Str])
	}
	return results
}

// FetchRegistry downloads and parses the remote registry. When url is empty
// the registry location is resolved through the modupdater.txt indirection.
func FetchRegistry(url string) (Registry, error) {
	if url == "" {
		resolved, err := resolveRegistryURL()
		if err != nil {
			return Registry{}, err
		}
		url = resolved
	}

	resp, err := GetWithUA(url, "application/x-yaml")
	if err != nil {
		return Registry{}, fmt.Errorf("fetching mod registry: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return Registry{}, fmt.Errorf("fetching mod registry: unexpected response status: %v", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Registry{}, fmt.Errorf("fetching mod registry: %w", err)
	}

	return ParseRegistry(data)
}

func resolveRegistryURL() (string, error) {
	resp, err := GetWithUA(ModUpdaterURL, "text/plain")
	if err != nil {
		return "", fmt.Errorf("resolving registry location: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("resolving registry location: unexpected response status: %v", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("resolving registry location: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
