package core

import (
	"testing"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(entries ...RemoteModEntry) Registry {
	m := make(map[string]RemoteModEntry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return Registry{Entries: m}
}

func TestPlanUpToDateModYieldsNothing(t *testing.T) {
	inventory := []LocalModInfo{
		{ArchivePath: "/mods/frog.zip", ModName: "FrogMod", Version: "1.0", Fingerprint: "aaaa"},
	}
	registry := testRegistry(RemoteModEntry{
		Name: "FrogMod", Version: "1.0", Checksums: []string{"aaaa"},
	})

	assert.Empty(t, Plan(inventory, registry))
}

func TestPlanStaleModYieldsTask(t *testing.T) {
	inventory := []LocalModInfo{
		{ArchivePath: "/mods/frog.zip", ModName: "FrogMod", Version: "1.0", Fingerprint: "aaaa"},
	}
	registry := testRegistry(RemoteModEntry{
		Name:      "FrogMod",
		Version:   "1.1",
		URL:       "https://x/frog.zip",
		Checksums: []string{"bbbb"},
	})

	tasks := Plan(inventory, registry)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "FrogMod", task.ModName)
	assert.Equal(t, "1.0", task.CurrentVersion)
	assert.Equal(t, "1.1", task.AvailableVersion)
	assert.Equal(t, "https://x/frog.zip", task.DownloadURL)
	assert.Equal(t, []string{"bbbb"}, task.ExpectedFingerprints)
	assert.Equal(t, "/mods/frog.zip", task.PathToSupersede)
	assert.Equal(t, "1.0 -> 1.1", task.UpdateString)
}

func TestPlanSkipsUntrackedMods(t *testing.T) {
	inventory := []LocalModInfo{
		{ModName: "HomebrewMap", Version: "0.1", Fingerprint: "aaaa"},
	}

	assert.Empty(t, Plan(inventory, testRegistry()))
}

func TestPlanChecksumComparisonIsCaseInsensitive(t *testing.T) {
	inventory := []LocalModInfo{
		{ModName: "FrogMod", Fingerprint: "ABCD"},
	}
	registry := testRegistry(RemoteModEntry{
		Name: "FrogMod", Checksums: []string{"abcd"},
	})

	assert.Empty(t, Plan(inventory, registry))
}

func TestPlanNormalizesExpectedFingerprints(t *testing.T) {
	inventory := []LocalModInfo{
		{ModName: "FrogMod", Fingerprint: "aaaa"},
	}
	registry := testRegistry(RemoteModEntry{
		Name: "FrogMod", Checksums: []string{"BBBB", "CcCc"},
	})

	tasks := Plan(inventory, registry)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"bbbb", "cccc"}, tasks[0].ExpectedFingerprints)
}

func TestPlanPreservesInventoryOrder(t *testing.T) {
	inventory := []LocalModInfo{
		{ModName: "AlphaMod", Fingerprint: "aaaa"},
		{ModName: "ZetaMod", Fingerprint: "aaaa"},
	}
	registry := testRegistry(
		RemoteModEntry{Name: "ZetaMod", Checksums: []string{"bbbb"}},
		RemoteModEntry{Name: "AlphaMod", Checksums: []string{"bbbb"}},
	)

	tasks := Plan(inventory, registry)
	require.Len(t, tasks, 2)
	assert.Equal(t, "AlphaMod", tasks[0].ModName)
	assert.Equal(t, "ZetaMod", tasks[1].ModName)
}

func TestInstallTask(t *testing.T) {
	entry := RemoteModEntry{
		Name:      "FrogMod",
		Version:   "2.0",
		URL:       "https://x/frog.zip",
		Checksums: []string{"BBBB"},
	}

	t.Run("fresh install", func(t *testing.T) {
		task := InstallTask(entry, nil)
		assert.Equal(t, "FrogMod", task.ModName)
		assert.Empty(t, task.PathToSupersede)
		assert.Empty(t, task.CurrentVersion)
		assert.Equal(t, []string{"bbbb"}, task.ExpectedFingerprints)
		assert.Equal(t, "install 2.0", task.UpdateString)
	})

	t.Run("replacing an installed archive", func(t *testing.T) {
		installed := LocalModInfo{ArchivePath: "/mods/frog.zip", ModName: "FrogMod", Version: "1.0"}
		task := InstallTask(entry, &installed)
		assert.Equal(t, "/mods/frog.zip", task.PathToSupersede)
		assert.Equal(t, "1.0", task.CurrentVersion)
		assert.Equal(t, "1.0 -> 2.0", task.UpdateString)
	})
}

func TestFormatUpdateString(t *testing.T) {
	t.Run("upgrade", func(t *testing.T) {
		cupaloy.SnapshotT(t, FormatUpdateString("1.0.0", "1.0.1"))
	})
	t.Run("install", func(t *testing.T) {
		cupaloy.SnapshotT(t, FormatUpdateString("", "2.1"))
	})
	t.Run("republished", func(t *testing.T) {
		cupaloy.SnapshotT(t, FormatUpdateString("1.2", "1.2"))
	})
}
