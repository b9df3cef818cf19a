package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default screen resolution of a fresh document.
const (
	DefaultScreenWidth  = 720
	DefaultScreenHeight = 1520
)

// Screen is the coordinate space all regions and points are expressed in.
type Screen struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// DefaultScreen returns the resolution used by New and Reset.
func DefaultScreen() Screen {
	return Screen{Width: DefaultScreenWidth, Height: DefaultScreenHeight}
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Contains reports whether r lies entirely inside the screen.
func (s Screen) Contains(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.W <= s.Width-r.X && r.H <= s.Height-r.Y
}

// ContainsPoint reports whether p lies inside the screen (edges inclusive).
func (s Screen) ContainsPoint(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= s.Width && p.Y <= s.Height
}

// Rect is an axis-aligned rectangle: origin plus width and height.
type Rect struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// RectFromCorners builds the rectangle spanned by two corner points in any order,
// the way a drag on the canvas produces one.
func RectFromCorners(a, b Point) Rect {
	x, y := min(a.X, b.X), min(a.Y, b.Y)
	return Rect{X: x, Y: y, W: abs(b.X - a.X), H: abs(b.Y - a.Y)}
}

// Bounds returns the corners as [x1, y1, x2, y2].
func (r Rect) Bounds() [4]int {
	return [4]int{r.X, r.Y, r.X + r.W, r.Y + r.H}
}

// Extent returns the right and bottom edges of r. ok is false when either
// edge does not fit in an int.
func (r Rect) Extent() (right, bottom int, ok bool) {
	if !addFits(r.X, r.W) || !addFits(r.Y, r.H) {
		return 0, 0, false
	}
	return r.X + r.W, r.Y + r.H, true
}

func addFits(a, b int) bool {
	if b > 0 {
		return a <= math.MaxInt-b
	}
	return a >= math.MinInt-b
}

// Clamp moves p to the nearest point inside r (edges inclusive).
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: min(max(p.X, r.X), r.X+r.W),
		Y: min(max(p.Y, r.Y), r.Y+r.H),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

// Point is a single screen coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParseRect parses "x,y,w,h".
func ParseRect(s string) (Rect, error) {
	vals, err := parseInts(s, 4, "x,y,w,h")
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	vals, err := parseInts(s, 2, "x,y")
	if err != nil {
		return Point{}, err
	}
	return Point{X: vals[0], Y: vals[1]}, nil
}

func parseInts(s string, n int, layout string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q: expected %s", ErrInvalidParameter, s, layout)
	}
	vals := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidParameter, s, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
