package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Set or clear the document's swipe gesture",
}

var swipeSetCmd = &cobra.Command{
	Use:   "set X,Y X,Y",
	Short: "Set the swipe start and end points",
	Long: `Set the swipe start and end points. With --region the gesture targets that
region, and when the region is click-constrained both points are clamped into it.

Examples:
  zommation swipe set 100,1200 600,1200
  zommation swipe set 10,1100 700,1100 --region pad --duration 0.6`,
	Args: cobra.ExactArgs(2),
	RunE: runSwipeSet,
}

var swipeDurationCmd = &cobra.Command{
	Use:   "duration SECONDS",
	Short: "Change the swipe duration",
	Args:  cobra.ExactArgs(1),
	RunE:  runSwipeDuration,
}

var swipeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the swipe; swipe actions export as skipped",
	Args:  cobra.NoArgs,
	RunE:  runSwipeClear,
}

func init() {
	rootCmd.AddCommand(swipeCmd)
	swipeCmd.AddCommand(swipeSetCmd)
	swipeCmd.AddCommand(swipeDurationCmd)
	swipeCmd.AddCommand(swipeClearCmd)

	swipeSetCmd.Flags().String("region", "", "Target region of the swipe")
	swipeSetCmd.Flags().Float64("duration", 0, "Swipe duration in seconds (default: keep current, else config)")
}

func runSwipeSet(cmd *cobra.Command, args []string) error {
	params := map[string]interface{}{"from": args[0], "to": args[1]}
	setIfChanged(cmd, params, "region", "region")
	setIfChanged(cmd, params, "duration", "duration")
	return applyStep("set_swipe", params)
}

func runSwipeDuration(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	return applyStep("set_swipe_duration", map[string]interface{}{"duration": seconds})
}

func runSwipeClear(cmd *cobra.Command, args []string) error {
	return applyStep("clear_swipe", nil)
}
