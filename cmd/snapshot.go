package cmd

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/mj1618/zommation/internal/imaging"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SnapshotResult is the output of `snapshot take`.
type SnapshotResult struct {
	OK     bool       `yaml:"ok"     json:"ok"`
	Action string     `yaml:"action" json:"action"`
	Region string     `yaml:"region" json:"region"`
	Rect   model.Rect `yaml:"rect"   json:"rect"`
	Grey   bool       `yaml:"grey"   json:"grey"`
	Name   string     `yaml:"name"   json:"name"`
	Path   string     `yaml:"path"   json:"path"`
}

// LastSnapshotResult is the output of `snapshot last`.
type LastSnapshotResult struct {
	Dir  string `yaml:"dir"  json:"dir"`
	Name string `yaml:"name" json:"name"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Crop template images out of the background screenshot",
}

var snapshotTakeCmd = &cobra.Command{
	Use:   "take REGION NAME",
	Short: "Save the part of the background under REGION as NAME.png",
	Long: `Save the part of the background image under REGION as NAME.png in the snapshot
folder. The saved file name can be used as --image for click actions.

Examples:
  zommation snapshot take btn_start start
  zommation snapshot take Main main --grey --background shot.png`,
	Args: cobra.ExactArgs(2),
	RunE: runSnapshotTake,
}

var snapshotLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the most recently saved snapshot",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotLast,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotList,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotTakeCmd)
	snapshotCmd.AddCommand(snapshotLastCmd)
	snapshotCmd.AddCommand(snapshotListCmd)

	snapshotCmd.PersistentFlags().String("dir", "", "Snapshot folder (default from config)")
	snapshotTakeCmd.Flags().String("background", "", "Image to crop (default: the document background)")
	snapshotTakeCmd.Flags().Bool("grey", false, "Save as 8-bit greyscale (default from config)")
}

func snapshotDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	return settings.SnapshotDir
}

// backgroundImage loads --background, falling back to the document's image.
func backgroundImage(cmd *cobra.Command, doc *model.Document) (image.Image, error) {
	path, _ := cmd.Flags().GetString("background")
	if path == "" {
		path = doc.Background()
	}
	if path == "" {
		return nil, fmt.Errorf("no background image (pass --background or run \"zommation background set IMAGE\")")
	}
	return imaging.LoadImage(path)
}

func runSnapshotTake(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	region, ok := doc.Region(args[0])
	if !ok {
		return fmt.Errorf("%w: region %q not found", model.ErrUnresolvedReference, args[0])
	}
	bg, err := backgroundImage(cmd, doc)
	if err != nil {
		return err
	}

	grey := settings.Grey
	if cmd.Flags().Changed("grey") {
		grey, _ = cmd.Flags().GetBool("grey")
	}
	img, err := imaging.CropSnapshot(bg, region.Rect, grey)
	if err != nil {
		return err
	}
	path, err := imaging.SaveSnapshot(snapshotDir(cmd), args[1], img)
	if err != nil {
		return err
	}
	logging.WithFields(logrus.Fields{"region": region.Name, "path": path, "grey": grey}).Debug("snapshot saved")
	b := img.Bounds()
	return output.Print(SnapshotResult{
		OK:     true,
		Action: "snapshot",
		Region: region.Name,
		Rect:   model.Rect{X: region.X, Y: region.Y, W: b.Dx(), H: b.Dy()},
		Grey:   grey,
		Name:   filepath.Base(path),
		Path:   path,
	})
}

func runSnapshotLast(cmd *cobra.Command, args []string) error {
	dir := snapshotDir(cmd)
	name, err := imaging.LatestSnapshot(dir)
	if err != nil {
		return err
	}
	return output.Print(LastSnapshotResult{Dir: dir, Name: name})
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	snaps, err := imaging.ListSnapshots(snapshotDir(cmd))
	if err != nil {
		return err
	}
	if snaps == nil {
		snaps = []imaging.SnapshotInfo{}
	}
	return output.Print(snaps)
}
