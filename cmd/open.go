package cmd

import (
	"fmt"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open [name]",
	Short:   "Open a mod's GameBanana page in your browser",
	Aliases: []string{"doc"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := core.FetchRegistry(viper.GetString("registry-url"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		entry, ok := registry.Get(args[0])
		if !ok {
			cmdshared.Exitf("Mod %q not found in the registry\n", args[0])
		}
		if entry.GameBananaID == 0 || entry.GameBananaType == "" {
			cmdshared.Exitf("Mod %q has no GameBanana page on record\n", args[0])
		}

		fmt.Println("Opening browser...")
		url := fmt.Sprintf("https://gamebanana.com/%ss/%d",
			strings.ToLower(entry.GameBananaType), entry.GameBananaID)
		if err := open.Start(url); err != nil {
			fmt.Println("Opening page failed, direct link:")
			fmt.Println(url)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
