package model

import "fmt"

// State is the plain-data form of a Document, used by the profile file and
// the JSON importer.
type State struct {
	Screen     Screen      `yaml:"screen"`
	Background string      `yaml:"background,omitempty"`
	Regions    []Region    `yaml:"regions"`
	Swipe      *SwipeDef   `yaml:"swipe,omitempty"`
	Actions    []ActionDef `yaml:"actions"`
}

// State returns a snapshot of d.
func (d *Document) State() State {
	s := State{
		Screen:     d.screen,
		Background: d.background,
		Regions:    d.Regions(),
		Actions:    make([]ActionDef, 0, len(d.actions)),
	}
	if d.regions == nil {
		s.Regions = []Region{}
	}
	if sw, ok := d.Swipe(); ok {
		s.Swipe = &sw
	}
	for _, a := range d.actions {
		s.Actions = append(s.Actions, DefOf(a))
	}
	return s
}

// FromState rebuilds a document by replaying s through the editing
// operations, so a State that breaks an invariant is rejected. Regions and
// swipe points outside s.Screen are accepted, because shrinking the screen
// legitimately leaves them there.
func FromState(s State) (*Document, error) {
	d := &Document{screen: DefaultScreen()}

	width, height := s.Screen.Width, s.Screen.Height
	if width > 0 && height > 0 {
		for i, r := range s.Regions {
			right, bottom, ok := r.Extent()
			if !ok {
				return nil, fmt.Errorf("regions[%d]: %w: rect %s overflows", i, ErrOutOfBounds, r.Rect)
			}
			width, height = max(width, right), max(height, bottom)
		}
		if s.Swipe != nil {
			width = max(width, s.Swipe.Start.X, s.Swipe.End.X)
			height = max(height, s.Swipe.Start.Y, s.Swipe.End.Y)
		}
	}
	if err := d.SetScreen(width, height); err != nil {
		return nil, err
	}

	for i, r := range s.Regions {
		if err := d.AddRegion(r.Name, r.Rect, r.ClickConstrained); err != nil {
			return nil, fmt.Errorf("regions[%d]: %w", i, err)
		}
	}
	if s.Swipe != nil {
		if err := d.SetSwipe(*s.Swipe); err != nil {
			return nil, fmt.Errorf("swipe: %w", err)
		}
	}
	if err := d.SetScreen(s.Screen.Width, s.Screen.Height); err != nil {
		return nil, err
	}

	for i, def := range s.Actions {
		a, err := BuildAction(def)
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		if err := d.AppendAction(a); err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
	}
	d.background = s.Background
	return d, nil
}
