package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashImpl(t *testing.T) {
	tests := []struct {
		name     string
		hashType string
		wantErr  bool
	}{
		{"xxh64", "xxh64", false},
		{"xxh64 uppercase", "XXH64", false},
		{"xxhash alias", "xxhash", false},
		{"MD5", "md5", false},
		{"SHA256", "sha256", false},
		{"Invalid hash", "invalid-hash", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetHashImpl(tt.hashType)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
		})
	}
}

func TestHashReaderEmptyInput(t *testing.T) {
	// Reference xxh64 digest of the empty input, seed 0.
	fingerprint, err := HashReader(bytes.NewReader(nil))
	assert.NoError(t, err)
	assert.Equal(t, "ef46db3751d8e999", fingerprint)
}

func TestHashReaderDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	first, err := HashReader(bytes.NewReader(data))
	require.NoError(t, err)
	second, err := HashReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
	assert.Equal(t, first, string(bytes.ToLower([]byte(first))))
}

func TestHashStringerStreaming(t *testing.T) {
	// Incremental writes must produce the same digest as a single pass.
	oneShot, err := HashReader(bytes.NewReader([]byte("hello world")))
	require.NoError(t, err)

	hasher, err := GetHashImpl(FingerprintFormat)
	require.NoError(t, err)
	_, err = hasher.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = hasher.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, oneShot, hasher.String())
}

func TestHashFile(t *testing.T) {
	data := []byte("archive content stand-in")
	path := filepath.Join(t.TempDir(), "mod.zip")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	fromFile, err := HashFile(path)
	require.NoError(t, err)
	fromReader, err := HashReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, fromReader, fromFile)
}

func TestHashFileMissing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "nope.zip"))
	assert.Error(t, err)
}
