package cmd

import (
	"strconv"
	"strings"

	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Edit the ordered action list",
}

var actionAddCmd = &cobra.Command{
	Use:   "add TYPE",
	Short: "Add an action",
	Long: `Add an action to the list, at the end or at --index.

Types: ` + kindList() + `

Click, ClickImage and ImageExists take --region (and --image). Unset
--threshold and --timeout fall back to the config defaults.

Examples:
  zommation action add click --region btn_start --image start.png
  zommation action add wait --duration 2.5
  zommation action add log --message "round done"
  zommation action add keyevent --key back
  zommation action add swipe --index 0`,
	Args: cobra.ExactArgs(1),
	RunE: runActionAdd,
}

var actionRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Remove the action at INDEX (0-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  runActionRemove,
}

var actionMoveCmd = &cobra.Command{
	Use:   "move FROM TO",
	Short: "Move the action at FROM so it ends up at TO",
	Args:  cobra.ExactArgs(2),
	RunE:  runActionMove,
}

var actionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List actions in execution order",
	Args:  cobra.NoArgs,
	RunE:  runActionList,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.AddCommand(actionAddCmd)
	actionCmd.AddCommand(actionRemoveCmd)
	actionCmd.AddCommand(actionMoveCmd)
	actionCmd.AddCommand(actionListCmd)

	actionAddCmd.Flags().String("region", "", "Region the action targets")
	actionAddCmd.Flags().String("image", "", "Template image file name")
	actionAddCmd.Flags().Float64("threshold", 0, "Match threshold in [0,1] (default from config)")
	actionAddCmd.Flags().Float64("timeout", 0, "Match timeout in seconds (default from config)")
	actionAddCmd.Flags().Float64("duration", 0, "Wait duration in seconds")
	actionAddCmd.Flags().String("message", "", "Log message")
	actionAddCmd.Flags().String("key", "", "Key name for keyevent ("+strings.Join(model.KeyNames(), ", ")+")")
	actionAddCmd.Flags().Int("index", -1, "Insert position (0-based, default: append)")

	actionListCmd.Flags().Bool("table", false, "Print a text table instead of YAML/JSON")
}

func kindList() string {
	names := make([]string, len(model.Kinds))
	for i, k := range model.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func runActionAdd(cmd *cobra.Command, args []string) error {
	params := map[string]interface{}{"type": args[0]}
	for _, name := range []string{"region", "image", "threshold", "timeout", "duration", "message", "key", "index"} {
		setIfChanged(cmd, params, name, name)
	}
	return applyStep("add_action", params)
}

func runActionRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	return applyStep("remove_action", map[string]interface{}{"index": index})
}

func runActionMove(cmd *cobra.Command, args []string) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	return applyStep("move_action", map[string]interface{}{"from": from, "to": to})
}

func runActionList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	entries := edit.ListActions(doc)

	if table, _ := cmd.Flags().GetBool("table"); table {
		rows := make([][]string, 0, len(entries))
		for i, a := range doc.Actions() {
			region := ""
			if t, ok := a.(model.Targeted); ok {
				region = t.RegionName()
			}
			rows = append(rows, []string{strconv.Itoa(i), string(a.Kind()), region, entries[i].Description})
		}
		output.Table(cmd.OutOrStdout(), []string{"#", "Type", "Region", "Description"}, rows)
		return nil
	}
	return output.Print(entries)
}
