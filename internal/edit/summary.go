package edit

import "github.com/mj1618/zommation/internal/model"

// Summary is the human and agent readable view of a document.
type Summary struct {
	Screen      model.Screen    `yaml:"screen"                 json:"screen"`
	Background  string          `yaml:"background,omitempty"   json:"background,omitempty"`
	Regions     []model.Region  `yaml:"regions"                json:"regions"`
	OutOfBounds []string        `yaml:"out_of_bounds,omitempty" json:"outOfBounds,omitempty"`
	Swipe       *model.SwipeDef `yaml:"swipe,omitempty"        json:"swipe,omitempty"`
	Actions     []ActionEntry   `yaml:"actions"                json:"actions"`
}

// ActionEntry is one listed action.
type ActionEntry struct {
	Index       int    `yaml:"index"       json:"index"`
	Description string `yaml:"description" json:"description"`
}

// Summarize returns the Summary of doc.
func Summarize(doc *model.Document) Summary {
	s := Summary{
		Screen:      doc.Screen(),
		Background:  doc.Background(),
		Regions:     doc.Regions(),
		OutOfBounds: doc.OutOfBoundsRegions(),
		Actions:     ListActions(doc),
	}
	if s.Regions == nil {
		s.Regions = []model.Region{}
	}
	if sw, ok := doc.Swipe(); ok {
		s.Swipe = &sw
	}
	return s
}

// ListActions describes the actions in execution order.
func ListActions(doc *model.Document) []ActionEntry {
	entries := make([]ActionEntry, 0, doc.Len())
	for i, a := range doc.Actions() {
		entries = append(entries, ActionEntry{Index: i, Description: model.Describe(a)})
	}
	return entries
}
