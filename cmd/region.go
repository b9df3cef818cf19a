package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

// RegionCheckResult is the output of `region check`.
type RegionCheckResult struct {
	OK          bool         `yaml:"ok"            json:"ok"`
	Screen      model.Screen `yaml:"screen"        json:"screen"`
	OutOfBounds []string     `yaml:"out_of_bounds" json:"outOfBounds"`
}

var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Add, move, delete and list named screen regions",
}

var regionAddCmd = &cobra.Command{
	Use:   "add NAME X,Y,W,H",
	Short: "Add a region",
	Long: `Add a named region. The rectangle must lie inside the screen and the name must
be unique.

Examples:
  zommation region add btn_start 100,200,50,50
  zommation region add pad 0,1000,720,400 --constrained`,
	Args: cobra.ExactArgs(2),
	RunE: runRegionAdd,
}

var regionDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a region; actions that used it become unassigned",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegionDelete,
}

var regionMoveCmd = &cobra.Command{
	Use:   "move NAME X,Y,W,H",
	Short: "Move or resize a region",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegionMove,
}

var regionConstrainCmd = &cobra.Command{
	Use:   "constrain NAME",
	Short: "Clamp swipe points that target this region into it",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegionConstrain,
}

var regionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List regions",
	Args:  cobra.NoArgs,
	RunE:  runRegionList,
}

var regionCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report regions that no longer fit the screen",
	Long:  "Report regions that no longer fit the screen. Exits with an error when any are found.",
	Args:  cobra.NoArgs,
	RunE:  runRegionCheck,
}

func init() {
	rootCmd.AddCommand(regionCmd)
	regionCmd.AddCommand(regionAddCmd)
	regionCmd.AddCommand(regionDeleteCmd)
	regionCmd.AddCommand(regionMoveCmd)
	regionCmd.AddCommand(regionConstrainCmd)
	regionCmd.AddCommand(regionListCmd)
	regionCmd.AddCommand(regionCheckCmd)

	regionAddCmd.Flags().Bool("constrained", false, "Mark the region click-constrained")
	regionConstrainCmd.Flags().Bool("off", false, "Remove the constraint instead")
	regionListCmd.Flags().Bool("table", false, "Print a text table instead of YAML/JSON")
}

func runRegionAdd(cmd *cobra.Command, args []string) error {
	constrained, _ := cmd.Flags().GetBool("constrained")
	return applyStep("add_region", map[string]interface{}{
		"name":              args[0],
		"rect":              args[1],
		"click_constrained": constrained,
	})
}

func runRegionDelete(cmd *cobra.Command, args []string) error {
	return applyStep("delete_region", map[string]interface{}{"name": args[0]})
}

func runRegionMove(cmd *cobra.Command, args []string) error {
	return applyStep("move_region", map[string]interface{}{"name": args[0], "rect": args[1]})
}

func runRegionConstrain(cmd *cobra.Command, args []string) error {
	off, _ := cmd.Flags().GetBool("off")
	return applyStep("constrain_region", map[string]interface{}{"name": args[0], "constrained": !off})
}

func runRegionList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	regions := doc.Regions()
	if regions == nil {
		regions = []model.Region{}
	}

	if table, _ := cmd.Flags().GetBool("table"); table {
		rows := make([][]string, 0, len(regions))
		for _, r := range regions {
			fits := "yes"
			if !doc.Screen().Contains(r.Rect) {
				fits = "no"
			}
			rows = append(rows, []string{r.Name, strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.W), strconv.Itoa(r.H), strconv.FormatBool(r.ClickConstrained), fits})
		}
		output.Table(cmd.OutOrStdout(), []string{"Name", "X", "Y", "W", "H", "Constrained", "Fits"}, rows)
		return nil
	}
	return output.Print(regions)
}

func runRegionCheck(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	out := doc.OutOfBoundsRegions()
	if out == nil {
		out = []string{}
	}
	if err := output.Print(RegionCheckResult{OK: len(out) == 0, Screen: doc.Screen(), OutOfBounds: out}); err != nil {
		return err
	}
	if len(out) > 0 {
		return fmt.Errorf("%w: %d region(s) outside screen %s", model.ErrOutOfBounds, len(out), doc.Screen())
	}
	return nil
}
