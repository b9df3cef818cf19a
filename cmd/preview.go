package cmd

import (
	"fmt"
	"image"

	"github.com/mj1618/zommation/internal/imaging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

// PreviewResult is the output of `preview`.
type PreviewResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Output string `yaml:"output" json:"output"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the regions and swipe over the background as a PNG",
	Long: `Render the document at screen resolution: the background image stretched to the
screen, every region outlined, and the swipe as a dashed line from a red start
dot to a green end dot.

Examples:
  zommation preview --output preview.png
  zommation preview --output preview.png --select btn_start --labels`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("output", "o", "preview.png", "PNG file to write")
	previewCmd.Flags().String("background", "", "Background image (default: the document background)")
	previewCmd.Flags().String("select", "", "Region to highlight")
	previewCmd.Flags().Bool("labels", false, "Draw region names")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	selected, _ := cmd.Flags().GetString("select")
	labels, _ := cmd.Flags().GetBool("labels")

	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if selected != "" {
		if _, ok := doc.Region(selected); !ok {
			return fmt.Errorf("region %q not found", selected)
		}
	}

	// Without a background the preview is drawn on a blank canvas.
	var bg image.Image
	if bgPath, _ := cmd.Flags().GetString("background"); bgPath != "" || doc.Background() != "" {
		if bg, err = backgroundImage(cmd, doc); err != nil {
			return err
		}
	}

	img := imaging.RenderPreview(bg, doc, imaging.PreviewOptions{Selected: selected, Labels: labels})
	if err := imaging.SavePNG(path, img); err != nil {
		return err
	}
	return output.Print(PreviewResult{
		OK:     true,
		Action: "preview",
		Output: path,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	})
}
