package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mj1618/zommation/internal/edit"
	"github.com/mj1618/zommation/internal/logging"
	"github.com/mj1618/zommation/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DoResult is the YAML output of a batch do command.
type DoResult struct {
	OK        bool              `yaml:"ok"              json:"ok"`
	Action    string            `yaml:"action"          json:"action"`
	Steps     int               `yaml:"steps"           json:"steps"`
	Completed int               `yaml:"completed"       json:"completed"`
	Saved     bool              `yaml:"saved"           json:"saved"`
	Error     string            `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []edit.StepResult `yaml:"results"         json:"results"`
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Apply multiple editing steps in a batch",
	Long: `Apply a sequence of editing steps from a YAML list on stdin.

Each step is a step name with its parameters as a map. Steps run in order and
by default execution stops on the first error. The document is saved only when
every step succeeded, unless --keep-partial is set.

Supported step types: ` + strings.Join(edit.StepNames(), ", ") + `

Example:
  zommation do <<'EOF'
  - set_screen: { width: 1080, height: 1920 }
  - add_region: { name: btn_start, rect: "100,200,50,50" }
  - add_action: { type: click, region: btn_start, image: start.png }
  - set_swipe: { from: "100,1200", to: "600,1200", duration: 0.5 }
  - add_action: { type: swipe }
  - add_action: { type: wait, duration: 2 }
  EOF`,
	Args: cobra.NoArgs,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
	doCmd.Flags().Bool("keep-partial", false, "Save the steps that succeeded even when a step failed")
	doCmd.Flags().Bool("dry-run", false, "Apply the steps and report, but do not save")
}

// batchStep is one parsed `- name: {params}` entry.
type batchStep struct {
	Name   string
	Params map[string]interface{}
}

func parseSteps(data []byte) ([]batchStep, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("no steps provided on stdin, pipe a YAML list of steps")
	}
	var rawSteps []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &rawSteps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(rawSteps) == 0 {
		return nil, fmt.Errorf("no steps provided, expected a YAML list of steps")
	}
	steps := make([]batchStep, 0, len(rawSteps))
	for i, step := range rawSteps {
		if len(step) != 1 {
			return nil, fmt.Errorf("step %d: expected exactly one step name, got %d", i+1, len(step))
		}
		for name, params := range step {
			steps = append(steps, batchStep{Name: name, Params: params})
		}
	}
	return steps, nil
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")
	keepPartial, _ := cmd.Flags().GetBool("keep-partial")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	steps, err := parseSteps(data)
	if err != nil {
		return err
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}
	defaults := editDefaults()

	results := make([]edit.StepResult, 0, len(steps))
	completed := 0
	var lastErr string
	for i, step := range steps {
		result, err := edit.Apply(doc, step.Name, step.Params, defaults)
		result.Step = i + 1
		results = append(results, result)
		if err != nil {
			lastErr = fmt.Sprintf("step %d: %s", i+1, err.Error())
			logging.WithField("step", i+1).Debug(err.Error())
			if stopOnError {
				break
			}
			continue
		}
		completed++
	}

	allOK := lastErr == ""
	saved := false
	if !dryRun && (allOK || keepPartial) {
		if err := saveDocument(doc); err != nil {
			return err
		}
		saved = true
	}

	if err := output.Print(DoResult{
		OK:        allOK,
		Action:    "do",
		Steps:     len(steps),
		Completed: completed,
		Saved:     saved,
		Error:     lastErr,
		Results:   results,
	}); err != nil {
		return err
	}
	if !allOK {
		return fmt.Errorf("batch failed: %s", lastErr)
	}
	return nil
}
