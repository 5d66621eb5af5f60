package core

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FingerprintFormat is the hash format used for mod archive identity.
// The update registry publishes xxh64 digests for every released artifact.
const FingerprintFormat = "xxh64"

// GetHashImpl gets an implementation of hash.Hash for the given hash type string
func GetHashImpl(hashType string) (HashStringer, error) {
	switch strings.ToLower(hashType) {
	case "xxh64", "xxhash":
		return &hexStringer{xxhash.New()}, nil
	case "md5":
		return &hexStringer{md5.New()}, nil
	case "sha256":
		return &hexStringer{sha256.New()}, nil
	}
	return nil, fmt.Errorf("hash implementation %s not found", hashType)
}

// HashStringer computes a hash incrementally and formats the digest
// as a fixed-length lowercase hex string.
type HashStringer interface {
	hash.Hash
	String() string
}

type hexStringer struct {
	hash.Hash
}

func (h *hexStringer) String() string {
	return hex.EncodeToString(h.Sum(nil))
}

// HashReader consumes r to the end and returns its fingerprint.
func HashReader(r io.Reader) (string, error) {
	hasher, err := GetHashImpl(FingerprintFormat)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(hasher, r); err != nil {
		return "", err
	}
	return hasher.String(), nil
}

// HashFile returns the fingerprint of the full byte content of the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return HashReader(f)
}
