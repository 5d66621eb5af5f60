package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/fileio"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Check installed mods for updates, optionally installing them",
	Aliases: []string{"upgrade", "sync"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		modsDir := viper.GetString("mods-dir")

		fmt.Println("Scanning installed mods...")
		inventory, err := core.Scan(modsDir)
		if err != nil {
			cmdshared.Exitln(err)
		}

		fmt.Println("Fetching remote mod registry...")
		registry, err := core.FetchRegistry(viper.GetString("registry-url"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		tasks := core.Plan(inventory, registry)
		if len(tasks) == 0 {
			fmt.Println("All mods are up to date!")
			return
		}

		fmt.Println("Updates available:")
		for _, task := range tasks {
			fmt.Printf("  %s: %s\n", task.ModName, task.UpdateString)
		}

		if !viper.GetBool("update.install") {
			fmt.Println("\nRun with --install to install these updates")
			return
		}

		if !cmdshared.PromptYesNo(fmt.Sprintf("Install %d updates? [Y/n]: ", len(tasks))) {
			fmt.Println("Cancelled!")
			return
		}

		session := fileio.NewDownloadSession(modsDir, tasks,
			fileio.WithConcurrency(viper.GetInt("concurrency")),
		)

		// A partially successful run is a normal terminal state; every
		// failed task is reported individually and the rest still commit.
		var updated, failed int
		for dl := range session.Start() {
			if dl.Err != nil {
				failed++
				fmt.Printf("Failed to update %s: %v\n", dl.Task.ModName, dl.Err)
				continue
			}
			updated++
			fmt.Printf("Updated %s to version %s\n", dl.Task.ModName, dl.Task.AvailableVersion)
		}

		if failed > 0 {
			fmt.Printf("\n%d mods updated, %d failed\n", updated, failed)
		} else {
			fmt.Println("\nAll updates installed successfully!")
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().Bool("install", false, "Install the available updates")
	_ = viper.BindPFlag("update.install", updateCmd.Flags().Lookup("install"))
}
