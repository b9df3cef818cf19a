package cmd

import (
	"strconv"

	"github.com/mj1618/zommation/internal/imaging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

// ColorResult is the output of the color commands.
type ColorResult struct {
	X         *int   `yaml:"x,omitempty"         json:"x,omitempty"`
	Y         *int   `yaml:"y,omitempty"         json:"y,omitempty"`
	Hex       string `yaml:"hex"                 json:"hex"`
	R         uint8  `yaml:"r"                   json:"r"`
	G         uint8  `yaml:"g"                   json:"g"`
	B         uint8  `yaml:"b"                   json:"b"`
	Text      string `yaml:"text"                json:"text"`
	Clipboard bool   `yaml:"clipboard,omitempty" json:"clipboard,omitempty"`
}

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Read pixel colors from the background image",
}

var colorPickCmd = &cobra.Command{
	Use:   "pick X Y",
	Short: "Print the color of the background pixel at X,Y",
	Long: `Print the color of the background pixel at X,Y as "#rrggbb  (r,g,b)".
Coordinates outside the image are clamped to its edge.`,
	Args: cobra.ExactArgs(2),
	RunE: runColorPick,
}

var colorParseCmd = &cobra.Command{
	Use:   "parse HEX",
	Short: "Print the RGB components of a #rrggbb or #rgb color",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorParse,
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.AddCommand(colorPickCmd)
	colorCmd.AddCommand(colorParseCmd)

	colorPickCmd.Flags().String("background", "", "Image to sample (default: the document background)")
	colorPickCmd.Flags().Bool("clipboard", false, "Copy the color text to the clipboard")
}

func colorResult(c imaging.Color) ColorResult {
	return ColorResult{Hex: c.Hex(), R: c.R, G: c.G, B: c.B, Text: c.String()}
}

func runColorPick(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	bg, err := backgroundImage(cmd, doc)
	if err != nil {
		return err
	}

	c := imaging.PickColor(bg, x, y)
	result := colorResult(c)
	result.X, result.Y = &x, &y
	if clip, _ := cmd.Flags().GetBool("clipboard"); clip {
		if err := copyToClipboard(c.String()); err != nil {
			return err
		}
		result.Clipboard = true
	}
	return output.Print(result)
}

func runColorParse(cmd *cobra.Command, args []string) error {
	c, err := imaging.ParseHexColor(args[0])
	if err != nil {
		return err
	}
	return output.Print(colorResult(c))
}
