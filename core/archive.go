package core

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strings"
)

// ManifestFileName is the canonical name of the manifest entry inside a mod
// archive. A .yml variant and any containing subdirectory are accepted.
const ManifestFileName = "everest.yaml"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FindManifest opens the archive at path and returns the raw bytes of its
// manifest entry. The second return is false when no manifest exists, which
// is a normal outcome for archives that only bundle assets.
//
// The entry name match is case-insensitive and depth-independent. When an
// archive contains several candidates the shallowest path wins, then
// byte-wise lexical order of the full entry name; zip entry order is not
// stable enough to rely on.
func FindManifest(path string) ([]byte, bool, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, false, &ArchiveError{Path: path, Err: err}
	}
	defer zr.Close()

	var candidates []*zip.File
	for _, f := range zr.File {
		if isManifestEntry(f.Name) {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := strings.Count(candidates[i].Name, "/")
		dj := strings.Count(candidates[j].Name, "/")
		if di != dj {
			return di < dj
		}
		return candidates[i].Name < candidates[j].Name
	})

	rc, err := candidates[0].Open()
	if err != nil {
		return nil, false, &ArchiveError{Path: path, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, false, &ArchiveError{Path: path, Err: err}
	}

	return bytes.TrimPrefix(data, utf8BOM), true, nil
}

func isManifestEntry(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, "everest.yaml") && !strings.HasSuffix(lower, "everest.yml") {
		return false
	}
	// Match whole file names only, not e.g. "notreallyeverest.yaml".
	base := lower[strings.LastIndex(lower, "/")+1:]
	return base == "everest.yaml" || base == "everest.yml"
}
