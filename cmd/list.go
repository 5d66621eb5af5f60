package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the installed mods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		inventory, err := core.Scan(viper.GetString("mods-dir"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		if len(inventory) == 0 {
			fmt.Println("No mods installed")
			return
		}

		fmt.Println("Installed mods:")
		for _, mod := range inventory {
			if viper.GetBool("list.fingerprint") {
				fmt.Printf("  %s v%s (%s)\n", mod.ModName, mod.Version, mod.Fingerprint)
			} else {
				fmt.Printf("  %s v%s\n", mod.ModName, mod.Version)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("fingerprint", "f", false, "Also print each archive's content fingerprint")
	_ = viper.BindPFlag("list.fingerprint", listCmd.Flags().Lookup("fingerprint"))
}
