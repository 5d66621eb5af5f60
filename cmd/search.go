package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the remote registry for mods",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := core.FetchRegistry(viper.GetString("registry-url"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		results := registry.Search(args[0])
		if len(results) == 0 {
			fmt.Printf("No mods found matching %q\n", args[0])
			return
		}

		fmt.Printf("Found %d matching mods:\n", len(results))
		for _, entry := range results {
			fmt.Printf("\n%s (v%s)\n", entry.Name, entry.Version)
			fmt.Printf("  Last updated: %s\n", time.Unix(entry.LastUpdate, 0).Format(time.DateOnly))
			fmt.Printf("  URL: %s\n", entry.URL)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
