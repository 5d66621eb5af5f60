package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show detailed information about an installed mod",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inventory, err := core.Scan(viper.GetString("mods-dir"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		var installed *core.LocalModInfo
		for i := range inventory {
			if inventory[i].ModName == args[0] {
				installed = &inventory[i]
				break
			}
		}
		if installed == nil {
			cmdshared.Exitf("Mod %q is not installed\n", args[0])
		}

		// The scan keeps only identity fields; reopen the archive for the
		// full manifest including dependency lists.
		data, found, err := core.FindManifest(installed.ArchivePath)
		if err != nil || !found {
			cmdshared.Exitf("No metadata available for mod %q\n", args[0])
		}
		entries, err := core.ParseManifest(data)
		if err != nil {
			cmdshared.Exitln(err)
		}
		manifest := core.MainMod(entries)

		fmt.Printf("Name: %s\n", manifest.Name)
		fmt.Printf("Version: %s\n", manifest.Version)
		fmt.Printf("Archive: %s\n", installed.ArchivePath)
		fmt.Printf("Fingerprint: %s\n", installed.Fingerprint)

		printDependencies("Dependencies", manifest.Dependencies)
		printDependencies("Optional Dependencies", manifest.OptionalDependencies)
	},
}

func printDependencies(header string, deps []core.Dependency) {
	if len(deps) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", header)
	for _, dep := range deps {
		if dep.Version != "" {
			fmt.Printf("  - %s v%s\n", dep.Name, dep.Version)
		} else {
			fmt.Printf("  - %s\n", dep.Name)
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
