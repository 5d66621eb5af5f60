package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Show a mod's entry in the remote registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := core.FetchRegistry(viper.GetString("registry-url"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		entry, ok := registry.Get(args[0])
		if !ok {
			cmdshared.Exitf("Mod %q not found in the registry\n", args[0])
		}

		fmt.Printf("%s (v%s)\n", entry.Name, entry.Version)
		fmt.Printf("Last updated: %s\n", time.Unix(entry.LastUpdate, 0).Format(time.DateOnly))
		fmt.Printf("URL: %s\n", entry.URL)
		if entry.Size > 0 {
			fmt.Printf("Size: %d bytes\n", entry.Size)
		}
		if entry.GameBananaID != 0 {
			fmt.Printf("GameBanana: %s %d\n", entry.GameBananaType, entry.GameBananaID)
		}
		fmt.Printf("Checksums: %s\n", strings.Join(entry.Checksums, ", "))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
