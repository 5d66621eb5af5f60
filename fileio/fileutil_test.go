package fileio

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFor(rawURL string, header http.Header) *http.Response {
	u, _ := url.Parse(rawURL)
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		Request: &http.Request{URL: u},
		Header:  header,
	}
}

func TestDestinationFileName(t *testing.T) {
	tests := []struct {
		name string
		resp *http.Response
		want string
	}{
		{
			name: "from final URL path",
			resp: responseFor("https://gamebanana.com/mmdl/FrogMod.zip", nil),
			want: "FrogMod.zip",
		},
		{
			name: "zip extension appended",
			resp: responseFor("https://cdn.example.com/mmdl/1298450", nil),
			want: "1298450.zip",
		},
		{
			name: "etag fallback for opaque paths",
			resp: responseFor("https://cdn.example.com/", http.Header{
				"Etag": []string{`"a1b2c3d4"`},
			}),
			want: "a1b2c3d4.zip",
		},
		{
			name: "weak etag markers stripped",
			resp: responseFor("https://cdn.example.com/", http.Header{
				"Etag": []string{`W/"a1b2/c3d4"`},
			}),
			want: "a1b2c3d4.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DestinationFileName(tt.resp))
		})
	}
}

func TestDestinationFileNameGenerated(t *testing.T) {
	// No usable path segment and no ETag: a unique placeholder is generated.
	first := DestinationFileName(responseFor("https://cdn.example.com/", nil))
	second := DestinationFileName(responseFor("https://cdn.example.com/", nil))

	assert.True(t, strings.HasSuffix(first, ".zip"))
	assert.Greater(t, len(first), len(".zip"))
	assert.NotEqual(t, first, second)
}

func TestCreateFileMakesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mod.zip")

	f, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
