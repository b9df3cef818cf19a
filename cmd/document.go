package cmd

import (
	"fmt"

	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"github.com/mj1618/zommation/internal/profile"
	"github.com/spf13/cobra"
)

// documentPath resolves the design document file: --file, then the config.
func documentPath() string {
	if path, _ := rootCmd.PersistentFlags().GetString("file"); path != "" {
		return path
	}
	return settings.DocumentPath
}

// editDefaults are the parameter defaults from the config file.
func editDefaults() edit.Defaults {
	return edit.Defaults{
		Threshold:     settings.Threshold,
		Timeout:       settings.Timeout,
		SwipeDuration: settings.SwipeDuration,
	}
}

// loadDocument reads the design document, or starts a fresh one when the
// file does not exist yet.
func loadDocument() (*model.Document, error) {
	path := documentPath()
	doc, err := profile.LoadOrNew(path)
	if err != nil {
		return nil, err
	}
	logging.WithField("file", path).Debug("document loaded")
	return doc, nil
}

func saveDocument(doc *model.Document) error {
	path := documentPath()
	if err := profile.Save(path, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	logging.WithField("file", path).Debug("document saved")
	return nil
}

// applyStep loads the document, applies one editing step, saves and prints
// the result. The file is not written when the step fails.
func applyStep(step string, params map[string]interface{}) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	result, err := edit.Apply(doc, step, params, editDefaults())
	if err != nil {
		return err
	}
	if err := saveDocument(doc); err != nil {
		return err
	}
	return output.Print(result)
}

// setIfChanged copies a flag into params only when the user set it, so
// absent flags fall back to the step defaults.
func setIfChanged(cmd *cobra.Command, params map[string]interface{}, flag, key string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil || !f.Changed {
		return
	}
	switch f.Value.Type() {
	case "bool":
		v, _ := cmd.Flags().GetBool(flag)
		params[key] = v
	case "int":
		v, _ := cmd.Flags().GetInt(flag)
		params[key] = v
	case "float64":
		v, _ := cmd.Flags().GetFloat64(flag)
		params[key] = v
	default:
		params[key] = f.Value.String()
	}
}
