package cmd

import (
	"github.com/mj1618/zommation/internal/config"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(settings)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file holding the defaults",
	Long: `Write a settings file holding the defaults to --config, or to
~/.config/zommation/config.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := rootCmd.PersistentFlags().GetString("config")
		written, err := config.Init(path, force)
		if err != nil {
			return err
		}
		settings = written
		return output.Print(written)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
