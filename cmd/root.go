package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leocov-dev/everup/config"
	"github.com/leocov-dev/everup/core"
	"github.com/leocov-dev/everup/fileio"
	"github.com/leocov-dev/everup/internal/cmdshared"
)

var rootCmd = &cobra.Command{
	Use:   "everup",
	Short: "Manage Celeste mods against the Everest update registry",
	Long: "everup scans the installed mod archives, compares their content " +
		"fingerprints against the remote Everest update registry, and replaces " +
		"stale archives with verified downloads.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		cmdshared.Exitln(err)
	}
}

func init() {
	fs := rootCmd.PersistentFlags()
	fs.String("mods-dir", core.DefaultModsDirectory(), "Directory containing the installed mod archives")
	fs.String("registry-url", "", "Registry document URL (default: resolved through modupdater.txt)")
	fs.IntP("concurrency", "j", fileio.DefaultConcurrency, "Maximum simultaneous downloads (0 = unbounded)")
	fs.BoolP("yes", "y", false, "Assume yes for all prompts")
	fs.BoolP("verbose", "v", false, "Enable debug logging")
	fs.BoolP("quiet", "q", false, "Only log errors")
	bindFlags(fs)
	_ = viper.BindPFlag("non-interactive", fs.Lookup("yes"))

	viper.SetEnvPrefix("everup")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}

// Log level precedence: --verbose wins over --quiet, default is info.
// Command output itself stays on stdout; logging is diagnostics only.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level := zerolog.InfoLevel
	if viper.GetBool("quiet") {
		level = zerolog.ErrorLevel
	}
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
