package core

import (
	"fmt"
	"strings"

	"github.com/unascribed/FlexVer/go/flexver"
	"golang.org/x/exp/slices"
)

// UpdateTask is one unit of work for the download executor: replace (or
// freshly install) a single mod archive. Tasks only live within one
// synchronization run.
type UpdateTask struct {
	ModName          string
	CurrentVersion   string
	AvailableVersion string
	DownloadURL      string
	// ExpectedFingerprints is the registry checksum set, normalized to
	// lowercase hex.
	ExpectedFingerprints []string
	// PathToSupersede is the installed archive this task replaces, empty
	// for a fresh install.
	PathToSupersede string
	// UpdateString details the update to the user, e.g. "1.0.0 -> 1.0.1".
	UpdateString string
}

// Plan diffs the local inventory against the remote registry and returns
// the updates required to bring the collection current. Mods unknown to
// the registry are left alone. A task is produced exactly when the local
// fingerprint is absent from the registry entry's checksum set; version
// strings are advisory display data, never the comparison key.
//
// The result preserves inventory order, so a name-sorted inventory yields
// a deterministic plan.
func Plan(inventory []LocalModInfo, registry Registry) []UpdateTask {
	var tasks []UpdateTask
	for _, local := range inventory {
		entry, ok := registry.Get(local.ModName)
		if !ok {
			continue
		}

		expected := normalizeFingerprints(entry.Checksums)
		if slices.Contains(expected, strings.ToLower(local.Fingerprint)) {
			continue
		}

		tasks = append(tasks, UpdateTask{
			ModName:              local.ModName,
			CurrentVersion:       local.Version,
			AvailableVersion:     entry.Version,
			DownloadURL:          entry.URL,
			ExpectedFingerprints: expected,
			PathToSupersede:      local.ArchivePath,
			UpdateString:         FormatUpdateString(local.Version, entry.Version),
		})
	}
	return tasks
}

// InstallTask builds the task for installing a registry entry directly,
// superseding the given archive if one is already installed.
func InstallTask(entry RemoteModEntry, installed *LocalModInfo) UpdateTask {
	task := UpdateTask{
		ModName:              entry.Name,
		AvailableVersion:     entry.Version,
		DownloadURL:          entry.URL,
		ExpectedFingerprints: normalizeFingerprints(entry.Checksums),
		UpdateString:         FormatUpdateString("", entry.Version),
	}
	if installed != nil {
		task.CurrentVersion = installed.Version
		task.PathToSupersede = installed.ArchivePath
		task.UpdateString = FormatUpdateString(installed.Version, entry.Version)
	}
	return task
}

// FormatUpdateString renders the version delta of a task for display.
// Author-supplied versions are free text and may not move when a new
// artifact is published, so a non-increasing delta is shown as a
// republished artifact rather than an upgrade.
func FormatUpdateString(current, available string) string {
	switch {
	case current == "":
		return fmt.Sprintf("install %s", available)
	case flexver.Less(current, available):
		return fmt.Sprintf("%s -> %s", current, available)
	default:
		return fmt.Sprintf("%s (new artifact)", available)
	}
}

func normalizeFingerprints(sums []string) []string {
	normalized := make([]string, len(sums))
	for i, sum := range sums {
		normalized[i] = strings.ToLower(sum)
	}
	return normalized
}
