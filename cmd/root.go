package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/zommation/internal/config"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/mj1618/zommation/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zommation",
	Short: "Design screen regions, swipes and action scripts for screen automation",
	Long: `zommation edits a design document of named screen regions, one swipe gesture
and an ordered list of actions, and exports it as a Lua automation script or as
ZomBroX JSON.

The document lives in a YAML file (--file, default from the config file) that
every command loads and saves.`,
	SilenceUsage: true,
}

// settings is the loaded configuration, available to every RunE.
var settings = config.Defaults()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Design document file (default from config, else zommation.yaml)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/zommation/config.toml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		logging.SetVerbose(verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = loaded
		logging.WithField("config", settings.Path).Debug("settings loaded")
		return nil
	}
}
