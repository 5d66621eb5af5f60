package core

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ModManifest is one entry of the everest.yaml manifest embedded in a mod
// archive. A manifest may declare several entries; the first one is the
// archive's identity.
type ModManifest struct {
	Name                 string       `yaml:"Name"`
	Version              string       `yaml:"Version"`
	DLL                  string       `yaml:"DLL,omitempty"`
	Dependencies         []Dependency `yaml:"Dependencies,omitempty"`
	OptionalDependencies []Dependency `yaml:"OptionalDependencies,omitempty"`
}

// Dependency names another mod this one requires (or optionally uses).
type Dependency struct {
	Name    string `yaml:"Name"`
	Version string `yaml:"Version,omitempty"`
}

// ParseManifest decodes manifest bytes into the full ordered entry list.
func ParseManifest(data []byte) ([]ModManifest, error) {
	var entries []ModManifest
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("manifest declares no entries")
	}
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("manifest entry %d has no Name", i)
		}
	}
	return entries, nil
}

// MainMod returns the manifest entry that identifies the archive.
func MainMod(entries []ModManifest) ModManifest {
	return entries[0]
}
