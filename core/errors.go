package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingModsDirectory aborts a scan when the managed directory does not
// exist. Every other scan failure is recovered per file.
var ErrMissingModsDirectory = errors.New("mods directory not found; verify that Everest is properly installed")

// ArchiveError reports a container that could not be opened or is
// structurally invalid. It skips one archive, never the whole scan.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("reading archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// ManifestError reports a manifest that was found but could not be parsed
// into at least one valid entry.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("parsing manifest in %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// IntegrityError reports downloaded bytes whose fingerprint is not a member
// of the registry's expected set. The failed download has already been
// rolled back when this error is returned.
type IntegrityError struct {
	File     string
	Computed string
	Expected []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("checksum verification failed for %s: computed %s, expected one of [%s]",
		e.File, e.Computed, strings.Join(e.Expected, ", "))
}
