package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/export"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
)

// ExportResult is the output of an export written to a file or the clipboard.
type ExportResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Action    string `yaml:"action"              json:"action"`
	Output    string `yaml:"output,omitempty"    json:"output,omitempty"`
	Clipboard bool   `yaml:"clipboard,omitempty" json:"clipboard,omitempty"`
	Bytes     int    `yaml:"bytes"               json:"bytes"`
}

// ImportResult is the output of `import`.
type ImportResult struct {
	OK      bool   `yaml:"ok"      json:"ok"`
	Action  string `yaml:"action"  json:"action"`
	Source  string `yaml:"source"  json:"source"`
	File    string `yaml:"file"    json:"file"`
	Regions int    `yaml:"regions" json:"regions"`
	Actions int    `yaml:"actions" json:"actions"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the document as a Lua script or ZomBroX JSON",
}

var exportLuaCmd = &cobra.Command{
	Use:   "lua",
	Short: "Export the action list as a Lua automation script",
	Long: `Export the action list as a Lua script, one statement per action. Actions whose
region or swipe is missing export as a comment line.

Without --output or --clipboard the script is written to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		return writeExport(cmd, "export_lua", []byte(export.ToLua(doc)))
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the document as ZomBroX JSON",
	Long: `Export the screen, regions, swipe and actions as ZomBroX JSON. The file can be
loaded back with "zommation import".

Without --output or --clipboard the JSON is written to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		data, err := export.ToJSON(doc)
		if err != nil {
			return err
		}
		return writeExport(cmd, "export_json", data)
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE.json",
	Short: "Replace the document with a ZomBroX JSON export",
	Long: `Replace the document's screen, regions, swipe and actions with the contents of
a ZomBroX JSON export. The background image setting is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportLuaCmd)
	exportCmd.AddCommand(exportJSONCmd)
	rootCmd.AddCommand(importCmd)

	for _, c := range []*cobra.Command{exportLuaCmd, exportJSONCmd} {
		c.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
		c.Flags().Bool("clipboard", false, "Copy to the clipboard")
	}
}

func writeExport(cmd *cobra.Command, action string, data []byte) error {
	path, _ := cmd.Flags().GetString("output")
	clip, _ := cmd.Flags().GetBool("clipboard")

	if path == "" && !clip {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if path != "" {
		if err := output.WriteFileAtomic(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if clip {
		if err := copyToClipboard(string(data)); err != nil {
			return err
		}
	}
	return output.Print(ExportResult{OK: true, Action: action, Output: path, Clipboard: clip, Bytes: len(data)})
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	imported, err := export.ParseJSON(data)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	current, err := loadDocument()
	if err != nil {
		return err
	}
	imported.SetBackground(current.Background())
	if out := imported.OutOfBoundsRegions(); len(out) > 0 {
		logging.Warn("imported regions outside screen %s: %s", imported.Screen(), strings.Join(out, ", "))
	}
	if err := saveDocument(imported); err != nil {
		return err
	}

	summary := edit.Summarize(imported)
	return output.Print(ImportResult{
		OK:      true,
		Action:  "import",
		Source:  args[0],
		File:    documentPath(),
		Regions: len(summary.Regions),
		Actions: len(summary.Actions),
	})
}
