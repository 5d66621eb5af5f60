package fileio

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func CreateFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		err2 := os.MkdirAll(filepath.Dir(path), os.ModePerm)
		if err2 == nil {
			f, err = os.Create(path)
		}
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// DestinationFileName derives the archive filename for a completed download
// request. The final URL path segment is preferred; registries often
// redirect to CDN hosts with opaque paths, so the response ETag is the
// fallback, and a generated name the last resort.
func DestinationFileName(resp *http.Response) string {
	name := ""
	if resp.Request != nil && resp.Request.URL != nil {
		base := path.Base(resp.Request.URL.Path)
		if base != "" && base != "." && base != "/" {
			name = base
		}
	}
	if name == "" {
		name = etagFileName(resp.Header.Get("ETag"))
	}
	if name == "" {
		name = uuid.NewString()
	}
	if !strings.EqualFold(path.Ext(name), ".zip") {
		name += ".zip"
	}
	return name
}

func etagFileName(etag string) string {
	etag = strings.TrimPrefix(etag, "W/")
	etag = strings.Trim(etag, `"`)
	etag = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return -1
	}, etag)
	return etag
}
