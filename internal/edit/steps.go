package edit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mj1618/zommation/internal/model"
)

// StepResult is the output for a single editing step.
type StepResult struct {
	Step    int    `yaml:"step,omitempty"    json:"step,omitempty"`
	OK      bool   `yaml:"ok"                json:"ok"`
	Action  string `yaml:"action"            json:"action"`
	Error   string `yaml:"error,omitempty"   json:"error,omitempty"`
	Region  string `yaml:"region,omitempty"  json:"region,omitempty"`
	Index   *int   `yaml:"index,omitempty"   json:"index,omitempty"`
	Detail  string `yaml:"detail,omitempty"  json:"detail,omitempty"`
	Actions int    `yaml:"actions"           json:"actions"`
}

type stepFunc func(doc *model.Document, params map[string]interface{}, d Defaults) (StepResult, error)

var steps = map[string]stepFunc{
	"set_screen":         stepSetScreen,
	"add_region":         stepAddRegion,
	"delete_region":      stepDeleteRegion,
	"move_region":        stepMoveRegion,
	"constrain_region":   stepConstrainRegion,
	"set_swipe":          stepSetSwipe,
	"set_swipe_duration": stepSetSwipeDuration,
	"clear_swipe":        stepClearSwipe,
	"add_action":         stepAddAction,
	"remove_action":      stepRemoveAction,
	"move_action":        stepMoveAction,
	"reset":              stepReset,
	"set_background":     stepSetBackground,
}

// StepNames returns the supported step names, sorted.
func StepNames() []string {
	names := make([]string, 0, len(steps))
	for name := range steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeStep maps "add-region" and "Add_Region" to "add_region".
func NormalizeStep(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
}

// Apply runs the named step against doc. Action names the step in the
// result; on error doc is unchanged.
func Apply(doc *model.Document, step string, params map[string]interface{}, d Defaults) (StepResult, error) {
	name := NormalizeStep(step)
	fn, ok := steps[name]
	if !ok {
		return StepResult{Action: step}, fmt.Errorf("unknown step type %q (supported: %s)", step, strings.Join(StepNames(), ", "))
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	result, err := fn(doc, params, d)
	result.Action = name
	result.Actions = doc.Len()
	result.OK = err == nil
	if err != nil {
		result.Error = err.Error()
	}
	return result, err
}

func stepSetScreen(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	w, err := requireInt(params, "width")
	if err != nil {
		return StepResult{}, err
	}
	h, err := requireInt(params, "height")
	if err != nil {
		return StepResult{}, err
	}
	if err := doc.SetScreen(w, h); err != nil {
		return StepResult{}, err
	}
	result := StepResult{Detail: doc.Screen().String()}
	if out := doc.OutOfBoundsRegions(); len(out) > 0 {
		result.Detail += "; out of bounds: " + strings.Join(out, ", ")
	}
	return result, nil
}

func stepAddRegion(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	name := StringParam(params, "name", "")
	rect, err := rectParam(params)
	if err != nil {
		return StepResult{Region: name}, err
	}
	constrained := BoolParam(params, "click_constrained", false)
	if err := doc.AddRegion(name, rect, constrained); err != nil {
		return StepResult{Region: name}, err
	}
	return StepResult{Region: name, Detail: rect.String()}, nil
}

func stepDeleteRegion(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	name := StringParam(params, "name", "")
	return StepResult{Region: name}, doc.DeleteRegion(name)
}

func stepMoveRegion(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	name := StringParam(params, "name", "")
	rect, err := rectParam(params)
	if err != nil {
		return StepResult{Region: name}, err
	}
	if err := doc.SetRegionRect(name, rect); err != nil {
		return StepResult{Region: name}, err
	}
	return StepResult{Region: name, Detail: rect.String()}, nil
}

func stepConstrainRegion(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	name := StringParam(params, "name", "")
	on := BoolParam(params, "constrained", true)
	if err := doc.SetClickConstrained(name, on); err != nil {
		return StepResult{Region: name}, err
	}
	return StepResult{Region: name, Detail: fmt.Sprintf("click_constrained=%v", on)}, nil
}

func stepSetSwipe(doc *model.Document, params map[string]interface{}, d Defaults) (StepResult, error) {
	from, err := pointParam(params, "from", "sx", "sy")
	if err != nil {
		return StepResult{}, err
	}
	to, err := pointParam(params, "to", "ex", "ey")
	if err != nil {
		return StepResult{}, err
	}
	region := StringParam(params, "region", "")
	duration, err := optionalFloat(params, "duration")
	if err != nil {
		return StepResult{}, err
	}
	if err := SetSwipe(doc, from, to, region, duration, d); err != nil {
		return StepResult{Region: region}, err
	}
	s, _ := doc.Swipe()
	return StepResult{Region: region, Detail: fmt.Sprintf("%s -> %s in %vs", s.Start, s.End, s.Duration)}, nil
}

func stepSetSwipeDuration(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	duration, err := requireFloat(params, "duration")
	if err != nil {
		return StepResult{}, err
	}
	return StepResult{Detail: fmt.Sprintf("%vs", duration)}, doc.SetSwipeDuration(duration)
}

func stepClearSwipe(doc *model.Document, _ map[string]interface{}, _ Defaults) (StepResult, error) {
	doc.ClearSwipe()
	return StepResult{}, nil
}

func stepAddAction(doc *model.Document, params map[string]interface{}, d Defaults) (StepResult, error) {
	def, err := actionDefParam(params)
	if err != nil {
		return StepResult{}, err
	}
	index, err := optionalInt(params, "index")
	if err != nil {
		return StepResult{}, err
	}
	at := -1
	if index != nil {
		at = *index
	}
	at, err = AddAction(doc, def, at, d)
	if err != nil {
		return StepResult{Region: def.Region}, err
	}
	return StepResult{Region: def.Region, Index: &at, Detail: model.Describe(doc.Actions()[at])}, nil
}

func stepRemoveAction(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	index, err := requireInt(params, "index")
	if err != nil {
		return StepResult{}, err
	}
	a, err := doc.RemoveAction(index)
	if err != nil {
		return StepResult{Index: &index}, err
	}
	return StepResult{Index: &index, Detail: model.Describe(a)}, nil
}

func stepMoveAction(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	from, err := requireInt(params, "from")
	if err != nil {
		return StepResult{}, err
	}
	to, err := requireInt(params, "to")
	if err != nil {
		return StepResult{}, err
	}
	if err := doc.ReorderAction(from, to); err != nil {
		return StepResult{}, err
	}
	return StepResult{Index: &to, Detail: fmt.Sprintf("moved %d to %d", from, to)}, nil
}

func stepReset(doc *model.Document, _ map[string]interface{}, _ Defaults) (StepResult, error) {
	doc.Reset()
	return StepResult{}, nil
}

func stepSetBackground(doc *model.Document, params map[string]interface{}, _ Defaults) (StepResult, error) {
	path := StringParam(params, "path", "")
	doc.SetBackground(path)
	return StepResult{Detail: path}, nil
}

func actionDefParam(params map[string]interface{}) (model.ActionDef, error) {
	def := model.ActionDef{
		Type:   StringParam(params, "type", ""),
		Region: StringParam(params, "region", ""),
		Image:  StringParam(params, "image", ""),
		Key:    StringParam(params, "key", ""),
	}
	if def.Type == "" {
		return def, fmt.Errorf("%w: type is required", model.ErrInvalidParameter)
	}
	var err error
	if def.Threshold, err = optionalFloat(params, "threshold"); err != nil {
		return def, err
	}
	if def.Timeout, err = optionalFloat(params, "timeout"); err != nil {
		return def, err
	}
	if def.Duration, err = optionalFloat(params, "duration"); err != nil {
		return def, err
	}
	if _, ok := params["message"]; ok {
		msg := StringParam(params, "message", "")
		def.Message = &msg
	}
	return def, nil
}

// rectParam reads either rect: "x,y,w,h" or the four x, y, w, h values.
func rectParam(params map[string]interface{}) (model.Rect, error) {
	if s := StringParam(params, "rect", ""); s != "" {
		return model.ParseRect(s)
	}
	var vals [4]int
	for i, key := range []string{"x", "y", "w", "h"} {
		v, err := requireInt(params, key)
		if err != nil {
			return model.Rect{}, fmt.Errorf("%w (or pass rect: \"x,y,w,h\")", err)
		}
		vals[i] = v
	}
	return model.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// pointParam reads either key: "x,y" or the two separate coordinates.
func pointParam(params map[string]interface{}, key, xKey, yKey string) (model.Point, error) {
	if s := StringParam(params, key, ""); s != "" {
		return model.ParsePoint(s)
	}
	x, err := requireInt(params, xKey)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w (or pass %s: \"x,y\")", err, key)
	}
	y, err := requireInt(params, yKey)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w (or pass %s: \"x,y\")", err, key)
	}
	return model.Point{X: x, Y: y}, nil
}

// Parameter extraction helpers for step maps. Values may come from YAML
// (int, float64, string) or JSON (float64).

// StringParam returns params[key] as a string, or defaultVal when absent.
func StringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// IntParam returns params[key] as an int, or defaultVal when absent or not a number.
func IntParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, err := optionalInt(params, key); err == nil && v != nil {
		return *v
	}
	return defaultVal
}

// FloatParam returns params[key] as a float64, or defaultVal when absent or not a number.
func FloatParam(params map[string]interface{}, key string, defaultVal float64) float64 {
	if v, err := optionalFloat(params, key); err == nil && v != nil {
		return *v
	}
	return defaultVal
}

// BoolParam returns params[key] as a bool, or defaultVal when absent.
func BoolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return defaultVal
}

func optionalInt(params map[string]interface{}, key string) (*int, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case float64:
		if x != float64(int(x)) {
			return nil, fmt.Errorf("%w: %s must be a whole number, got %v", model.ErrInvalidParameter, key, x)
		}
		n = int(x)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number, got %q", model.ErrInvalidParameter, key, x)
		}
		n = parsed
	default:
		return nil, fmt.Errorf("%w: %s must be a number, got %v", model.ErrInvalidParameter, key, v)
	}
	return &n, nil
}

func requireInt(params map[string]interface{}, key string) (int, error) {
	v, err := optionalInt(params, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: %s is required", model.ErrInvalidParameter, key)
	}
	return *v, nil
}

func optionalFloat(params map[string]interface{}, key string) (*float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number, got %q", model.ErrInvalidParameter, key, x)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("%w: %s must be a number, got %v", model.ErrInvalidParameter, key, v)
	}
	return &f, nil
}

func requireFloat(params map[string]interface{}, key string) (float64, error) {
	v, err := optionalFloat(params, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: %s is required", model.ErrInvalidParameter, key)
	}
	return *v, nil
}
