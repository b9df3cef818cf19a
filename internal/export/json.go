package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mj1618/zommation/internal/model"
)

// File is the top-level ZomBroX JSON object.
type File struct {
	Resolution Resolution `json:"resolution"`
	Regions    []Region   `json:"regions"`
	Swipe      *Swipe     `json:"swipe,omitempty"`
	Actions    []Action   `json:"actions"`
}

// Resolution is the screen size the coordinates refer to.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Region is a named rectangle.
type Region struct {
	Name             string `json:"name"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	W                int    `json:"w"`
	H                int    `json:"h"`
	ClickConstrained bool   `json:"clickConstrained"`
}

// Swipe is the single swipe gesture.
type Swipe struct {
	Start    model.Point `json:"start"`
	End      model.Point `json:"end"`
	Region   string      `json:"region,omitempty"`
	Duration float64     `json:"duration"`
}

// Action is one entry of the actions array. Type selects which of the other
// fields are present. Geometry (x, y, w, h, from, to) is resolved at export
// time and omitted when the action has no region or the document no swipe.
type Action struct {
	Type      string   `json:"type"`
	Region    string   `json:"region,omitempty"`
	Image     string   `json:"image,omitempty"`
	X         *int     `json:"x,omitempty"`
	Y         *int     `json:"y,omitempty"`
	W         *int     `json:"w,omitempty"`
	H         *int     `json:"h,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
	Timeout   *float64 `json:"timeout,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	From      *[2]int  `json:"from,omitempty"`
	To        *[2]int  `json:"to,omitempty"`
	Message   *string  `json:"message,omitempty"`
	Key       string   `json:"key,omitempty"`
	KeyCode   *int     `json:"keycode,omitempty"`
}

// ToJSON renders doc as indented ZomBroX JSON with a trailing newline.
func ToJSON(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Build(doc)); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Build converts doc into its wire representation.
func Build(doc *model.Document) File {
	screen := doc.Screen()
	f := File{
		Resolution: Resolution{Width: screen.Width, Height: screen.Height},
		Regions:    []Region{},
		Actions:    []Action{},
	}
	for _, r := range doc.Regions() {
		f.Regions = append(f.Regions, Region{Name: r.Name, X: r.X, Y: r.Y, W: r.W, H: r.H, ClickConstrained: r.ClickConstrained})
	}
	if s, ok := doc.Swipe(); ok {
		f.Swipe = &Swipe{Start: s.Start, End: s.End, Region: s.Region, Duration: s.Duration}
	}
	for _, a := range doc.Actions() {
		f.Actions = append(f.Actions, wireAction(doc, a))
	}
	return f
}

func wireAction(doc *model.Document, a model.Action) Action {
	def := model.DefOf(a)
	w := Action{
		Type:      def.Type,
		Region:    def.Region,
		Image:     def.Image,
		Threshold: def.Threshold,
		Timeout:   def.Timeout,
		Duration:  def.Duration,
		Message:   def.Message,
		Key:       def.Key,
	}

	switch v := a.(type) {
	case model.Targeted:
		if r, ok := resolve(doc, v.RegionName()); ok {
			w.X, w.Y, w.W, w.H = intPtr(r.X), intPtr(r.Y), intPtr(r.W), intPtr(r.H)
		}
	case model.Swipe:
		if s, ok := doc.Swipe(); ok {
			w.From = &[2]int{s.Start.X, s.Start.Y}
			w.To = &[2]int{s.End.X, s.End.Y}
			w.Duration = model.Float(s.Duration)
		}
	case model.KeyEvent:
		if code, ok := model.KeyCode(v.Key); ok {
			w.KeyCode = intPtr(code)
		}
	}
	return w
}

// ParseJSON rebuilds a document from ZomBroX JSON. Geometry baked into
// actions is ignored; regions, the swipe and the actions are replayed through
// the document operations so every invariant is checked.
func ParseJSON(data []byte) (*model.Document, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return FromFile(f)
}

// FromFile rebuilds a document from its wire representation.
func FromFile(f File) (*model.Document, error) {
	s := model.State{
		Screen:  model.Screen{Width: f.Resolution.Width, Height: f.Resolution.Height},
		Regions: make([]model.Region, 0, len(f.Regions)),
		Actions: make([]model.ActionDef, 0, len(f.Actions)),
	}
	for _, r := range f.Regions {
		s.Regions = append(s.Regions, model.Region{
			Name:             r.Name,
			Rect:             model.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
			ClickConstrained: r.ClickConstrained,
		})
	}
	if f.Swipe != nil {
		s.Swipe = &model.SwipeDef{Start: f.Swipe.Start, End: f.Swipe.End, Region: f.Swipe.Region, Duration: f.Swipe.Duration}
	}
	for _, w := range f.Actions {
		s.Actions = append(s.Actions, actionDef(w))
	}
	return model.FromState(s)
}

func actionDef(w Action) model.ActionDef {
	def := model.ActionDef{
		Type:      w.Type,
		Region:    w.Region,
		Image:     w.Image,
		Threshold: w.Threshold,
		Timeout:   w.Timeout,
		Duration:  w.Duration,
		Message:   w.Message,
		Key:       w.Key,
	}
	if def.Key == "" && w.KeyCode != nil {
		def.Key = strconv.Itoa(*w.KeyCode)
	}
	return def
}

func intPtr(v int) *int {
	return &v
}
