package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/fileio"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:     "install [name]",
	Short:   "Download and install a mod from the registry",
	Aliases: []string{"add", "get"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		modsDir := viper.GetString("mods-dir")

		inventory, err := core.Scan(modsDir)
		if err != nil {
			cmdshared.Exitln(err)
		}

		registry, err := core.FetchRegistry(viper.GetString("registry-url"))
		if err != nil {
			cmdshared.Exitln(err)
		}

		entry, ok := registry.Get(args[0])
		if !ok {
			cmdshared.Exitf("Mod %q not found in the registry\n", args[0])
		}

		var installed *core.LocalModInfo
		for i := range inventory {
			if inventory[i].ModName == entry.Name {
				installed = &inventory[i]
				break
			}
		}
		if installed != nil && entry.HasMatchingChecksum(installed.Fingerprint) {
			fmt.Printf("%q is already up to date!\n", entry.Name)
			return
		}

		task := core.InstallTask(entry, installed)
		fmt.Printf("Installing %s (%s)...\n", task.ModName, task.UpdateString)

		session := fileio.NewDownloadSession(modsDir,
			[]core.UpdateTask{task},
			fileio.WithConcurrency(viper.GetInt("concurrency")),
		)
		for dl := range session.Start() {
			if dl.Err != nil {
				cmdshared.Exitln(dl.Err)
			}
			fmt.Printf("Installed %s v%s (%s)\n", dl.Task.ModName, dl.Task.AvailableVersion, dl.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
