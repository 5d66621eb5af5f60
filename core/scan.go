package core

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// steamModsPath is where a Steam install of Celeste keeps its mods.
const steamModsPath = ".local/share/Steam/steamapps/common/Celeste/Mods"

// DefaultModsDirectory returns the conventional mods directory under the
// user's home, or empty when the home directory cannot be determined.
func DefaultModsDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, filepath.FromSlash(steamModsPath))
}

// LocalModInfo is one row of the installed-mod inventory, derived from a
// single archive. It is a disposable snapshot; every scan recomputes it.
type LocalModInfo struct {
	ArchivePath string
	ModName     string
	Version     string
	Fingerprint string
}

// Scan enumerates the zip archives directly inside dir and builds the local
// inventory, sorted ascending by mod name. Archives without a manifest, with
// a malformed manifest, or that cannot be opened are logged and skipped;
// only a missing directory fails the scan itself.
func Scan(dir string) ([]LocalModInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrMissingModsDirectory
		}
		return nil, err
	}

	var inventory []LocalModInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		info, ok := inspectArchive(path)
		if !ok {
			continue
		}
		inventory = append(inventory, info)
	}

	sort.Slice(inventory, func(i, j int) bool {
		return inventory[i].ModName < inventory[j].ModName
	})

	return inventory, nil
}

func inspectArchive(path string) (LocalModInfo, bool) {
	data, found, err := FindManifest(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("skipping unreadable archive")
		return LocalModInfo{}, false
	}
	if !found {
		log.Warn().
			Str("file", path).
			Str("manifest", ManifestFileName).
			Msg("skipping archive without a manifest")
		return LocalModInfo{}, false
	}

	entries, err := ParseManifest(data)
	if err != nil {
		merr := &ManifestError{Path: path, Err: err}
		log.Warn().Str("file", path).Err(merr).Msg("skipping archive with malformed manifest")
		return LocalModInfo{}, false
	}
	main := MainMod(entries)

	fingerprint, err := HashFile(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("skipping archive that could not be hashed")
		return LocalModInfo{}, false
	}

	return LocalModInfo{
		ArchivePath: path,
		ModName:     main.Name,
		Version:     main.Version,
		Fingerprint: fingerprint,
	}, true
}
