package cmd

import (
	"fmt"

	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/mj1618/zommation/internal/profile"
	"github.com/spf13/cobra"
)

// InitResult is the output of `init`.
type InitResult struct {
	OK      bool         `yaml:"ok"      json:"ok"`
	Action  string       `yaml:"action"  json:"action"`
	File    string       `yaml:"file"    json:"file"`
	Screen  model.Screen `yaml:"screen"  json:"screen"`
	Regions int          `yaml:"regions" json:"regions"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new design document with the default screen and preset regions",
	Long: `Create a new design document at --file holding the default 720x1520 screen and
the preset regions (Upper_Half, Lower_Half, quadrants, Main, ...).

Examples:
  zommation init
  zommation -f game.yaml init --width 1080 --height 1920`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Int("width", model.DefaultScreenWidth, "Screen width")
	initCmd.Flags().Int("height", model.DefaultScreenHeight, "Screen height")
	initCmd.Flags().Bool("force", false, "Overwrite an existing document")
}

func runInit(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	force, _ := cmd.Flags().GetBool("force")

	path := documentPath()
	if profile.Exists(path) && !force {
		return fmt.Errorf("document %s already exists (use --force to overwrite)", path)
	}

	doc, err := newDocument(width, height)
	if err != nil {
		return err
	}
	if err := saveDocument(doc); err != nil {
		return err
	}
	return output.Print(InitResult{
		OK:      true,
		Action:  "init",
		File:    path,
		Screen:  doc.Screen(),
		Regions: len(doc.Regions()),
	})
}

// newDocument returns a fresh document whose preset regions are laid out for
// a width x height screen.
func newDocument(width, height int) (*model.Document, error) {
	doc := model.New()
	if doc.Screen() == (model.Screen{Width: width, Height: height}) {
		return doc, nil
	}
	for _, r := range doc.Regions() {
		if err := doc.DeleteRegion(r.Name); err != nil {
			return nil, err
		}
	}
	if err := doc.SetScreen(width, height); err != nil {
		return nil, err
	}
	for _, r := range model.PresetRegions(doc.Screen()) {
		if err := doc.AddRegion(r.Name, r.Rect, r.ClickConstrained); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
