package model

import (
	"fmt"
	"slices"
)

// SwipeDef is the document's single swipe gesture. Region is a name key and
// may be empty.
type SwipeDef struct {
	Start    Point   `yaml:"start"            json:"start"`
	End      Point   `yaml:"end"              json:"end"`
	Region   string  `yaml:"region,omitempty" json:"region,omitempty"`
	Duration float64 `yaml:"duration"         json:"duration"`
}

// Document is the complete design state exported as one script. The zero
// value is not usable; create documents with New.
//
// Every mutating method either succeeds completely or leaves the document
// unchanged.
type Document struct {
	screen     Screen
	regions    []Region
	swipe      *SwipeDef
	actions    []Action
	background string
}

// New returns a document with the default screen and the preset regions.
func New() *Document {
	d := &Document{}
	d.Reset()
	return d
}

// Reset restores the default screen and preset regions and clears the swipe,
// the actions and the background.
func (d *Document) Reset() {
	d.screen = DefaultScreen()
	d.regions = PresetRegions(d.screen)
	d.swipe = nil
	d.actions = nil
	d.background = ""
}

// Clone returns an independent copy of d.
func (d *Document) Clone() *Document {
	c := &Document{
		screen:     d.screen,
		regions:    slices.Clone(d.regions),
		background: d.background,
	}
	for _, a := range d.actions {
		copied, _ := BuildAction(DefOf(a))
		c.actions = append(c.actions, copied)
	}
	if d.swipe != nil {
		s := *d.swipe
		c.swipe = &s
	}
	return c
}

// Screen returns the current resolution.
func (d *Document) Screen() Screen {
	return d.screen
}

// SetScreen replaces the resolution. Existing regions keep their rectangles.
func (d *Document) SetScreen(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: screen %dx%d must be positive", ErrInvalidDimension, width, height)
	}
	d.screen = Screen{Width: width, Height: height}
	return nil
}

// Regions returns the regions in insertion order.
func (d *Document) Regions() []Region {
	return slices.Clone(d.regions)
}

// Region looks up a region by name.
func (d *Document) Region(name string) (Region, bool) {
	i := d.regionIndex(name)
	if i < 0 {
		return Region{}, false
	}
	return d.regions[i], true
}

func (d *Document) regionIndex(name string) int {
	return slices.IndexFunc(d.regions, func(r Region) bool { return r.Name == name })
}

// AddRegion appends a region. The rectangle must fit the current screen.
func (d *Document) AddRegion(name string, rect Rect, clickConstrained bool) error {
	if name == "" {
		return fmt.Errorf("%w: region name is empty", ErrInvalidParameter)
	}
	if d.regionIndex(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if err := d.checkRect(rect); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	d.regions = append(d.regions, Region{Name: name, Rect: rect, ClickConstrained: clickConstrained})
	return nil
}

// SetRegionRect moves or resizes an existing region.
func (d *Document) SetRegionRect(name string, rect Rect) error {
	i := d.regionIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: region %q not found", ErrUnresolvedReference, name)
	}
	if err := d.checkRect(rect); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	d.regions[i].Rect = rect
	return nil
}

// SetClickConstrained changes whether interactions with a region are limited to clicks.
func (d *Document) SetClickConstrained(name string, constrained bool) error {
	i := d.regionIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: region %q not found", ErrUnresolvedReference, name)
	}
	d.regions[i].ClickConstrained = constrained
	return nil
}

func (d *Document) checkRect(r Rect) error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidDimension, r.W, r.H)
	}
	if !d.screen.Contains(r) {
		return fmt.Errorf("%w: rect %s outside screen %s", ErrOutOfBounds, r, d.screen)
	}
	return nil
}

// DeleteRegion removes a region. Actions and the swipe that reference it
// stay in place and become unassigned.
func (d *Document) DeleteRegion(name string) error {
	i := d.regionIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: region %q not found", ErrUnresolvedReference, name)
	}
	d.regions = slices.Delete(d.regions, i, i+1)
	for j, a := range d.actions {
		if t, ok := a.(Targeted); ok && t.RegionName() == name {
			d.actions[j] = t.withRegion("")
		}
	}
	if d.swipe != nil && d.swipe.Region == name {
		d.swipe.Region = ""
	}
	return nil
}

// OutOfBoundsRegions returns the names of regions that no longer fit the
// screen, which happens after the resolution shrinks.
func (d *Document) OutOfBoundsRegions() []string {
	var names []string
	for _, r := range d.regions {
		if !d.screen.Contains(r.Rect) {
			names = append(names, r.Name)
		}
	}
	return names
}

// Swipe returns the swipe definition, if any.
func (d *Document) Swipe() (SwipeDef, bool) {
	if d.swipe == nil {
		return SwipeDef{}, false
	}
	return *d.swipe, true
}

// SetSwipePoints replaces the swipe. target may be empty; when it names a
// click-constrained region both points are clamped into that region. The
// duration of an existing swipe is kept.
func (d *Document) SetSwipePoints(start, end Point, target string) error {
	if target != "" {
		if r, ok := d.Region(target); ok && r.ClickConstrained {
			start, end = r.Clamp(start), r.Clamp(end)
		}
	}
	duration := DefaultSwipeDuration
	if d.swipe != nil {
		duration = d.swipe.Duration
	}
	return d.SetSwipe(SwipeDef{Start: start, End: end, Region: target, Duration: duration})
}

// SetSwipe replaces the swipe with s as given, without clamping.
func (d *Document) SetSwipe(s SwipeDef) error {
	for _, p := range []Point{s.Start, s.End} {
		if !d.screen.ContainsPoint(p) {
			return fmt.Errorf("%w: swipe point %s outside screen %s", ErrOutOfBounds, p, d.screen)
		}
	}
	if s.Region != "" {
		if _, ok := d.Region(s.Region); !ok {
			return fmt.Errorf("%w: swipe region %q not found", ErrUnresolvedReference, s.Region)
		}
	}
	if !ValidDuration(s.Duration) {
		return fmt.Errorf("%w: swipe duration %v must be a positive number", ErrInvalidParameter, s.Duration)
	}
	d.swipe = &s
	return nil
}

// SetSwipeDuration sets the gesture duration in seconds. A swipe must exist.
func (d *Document) SetSwipeDuration(seconds float64) error {
	if d.swipe == nil {
		return fmt.Errorf("%w: no swipe points set", ErrInvalidParameter)
	}
	if !ValidDuration(seconds) {
		return fmt.Errorf("%w: swipe duration %v must be a positive number", ErrInvalidParameter, seconds)
	}
	d.swipe.Duration = seconds
	return nil
}

// ClearSwipe removes the swipe definition.
func (d *Document) ClearSwipe() {
	d.swipe = nil
}

// Actions returns the actions in execution order.
func (d *Document) Actions() []Action {
	return slices.Clone(d.actions)
}

// Len returns the number of actions.
func (d *Document) Len() int {
	return len(d.actions)
}

// InsertAction inserts a at index, which may equal Len to append.
func (d *Document) InsertAction(index int, a Action) error {
	if index < 0 || index > len(d.actions) {
		return fmt.Errorf("%w: insert at %d, have %d actions", ErrIndexOutOfRange, index, len(d.actions))
	}
	if err := d.checkAction(a); err != nil {
		return err
	}
	d.actions = slices.Insert(d.actions, index, a)
	return nil
}

// AppendAction adds a at the end of the action list.
func (d *Document) AppendAction(a Action) error {
	return d.InsertAction(len(d.actions), a)
}

func (d *Document) checkAction(a Action) error {
	if a == nil {
		return fmt.Errorf("%w: nil action", ErrInvalidParameter)
	}
	if err := a.validate(); err != nil {
		return err
	}
	if t, ok := a.(Targeted); ok && t.RegionName() != "" {
		if _, found := d.Region(t.RegionName()); !found {
			return fmt.Errorf("%w: %s targets region %q", ErrUnresolvedReference, a.Kind(), t.RegionName())
		}
	}
	return nil
}

// RemoveAction deletes the action at index and returns it.
func (d *Document) RemoveAction(index int) (Action, error) {
	if index < 0 || index >= len(d.actions) {
		return nil, fmt.Errorf("%w: remove %d, have %d actions", ErrIndexOutOfRange, index, len(d.actions))
	}
	a := d.actions[index]
	d.actions = slices.Delete(d.actions, index, index+1)
	return a, nil
}

// ReorderAction moves the action at from so that it ends up at index to.
func (d *Document) ReorderAction(from, to int) error {
	n := len(d.actions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d, have %d actions", ErrIndexOutOfRange, from, to, n)
	}
	a := d.actions[from]
	d.actions = slices.Delete(d.actions, from, from+1)
	d.actions = slices.Insert(d.actions, to, a)
	return nil
}

// Background returns the decorative background image path.
func (d *Document) Background() string {
	return d.background
}

// SetBackground records the background image path. It is never exported.
func (d *Document) SetBackground(path string) {
	d.background = path
}
