package cmd

import (
	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/imaging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the screen, regions, swipe and actions of the document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		return output.Print(edit.Summarize(doc))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default screen and preset regions and clear everything else",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyStep("reset", nil)
	},
}

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Set the reference screenshot used by snapshot, color and preview",
}

var backgroundSetCmd = &cobra.Command{
	Use:   "set IMAGE",
	Short: "Set the background image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := imaging.LoadImage(args[0]); err != nil {
			return err
		}
		return applyStep("set_background", map[string]interface{}{"path": args[0]})
	},
}

var backgroundClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the background image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyStep("set_background", map[string]interface{}{"path": ""})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(backgroundCmd)
	backgroundCmd.AddCommand(backgroundSetCmd)
	backgroundCmd.AddCommand(backgroundClearCmd)
}
