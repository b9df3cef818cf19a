package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Change the target screen resolution",
}

var screenSetCmd = &cobra.Command{
	Use:   "set WIDTH HEIGHT",
	Short: "Set the screen resolution",
	Long: `Set the screen resolution all coordinates refer to. Existing regions keep their
rectangles; any that no longer fit are listed (see also "region check").`,
	Args: cobra.ExactArgs(2),
	RunE: runScreenSet,
}

func init() {
	rootCmd.AddCommand(screenCmd)
	screenCmd.AddCommand(screenSetCmd)
}

func runScreenSet(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	return applyStep("set_screen", map[string]interface{}{"width": width, "height": height})
}
