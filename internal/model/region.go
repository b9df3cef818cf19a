package model

// Region is a named rectangular area of the simulated screen.
type Region struct {
	Name             string `yaml:"name"              json:"name"`
	Rect             `yaml:",inline"`
	ClickConstrained bool `yaml:"click_constrained,omitempty" json:"clickConstrained"`
}

type preset struct {
	name string
	fn   func(w, h int) Rect
}

// presets seed every new or reset document. They are ordinary regions once created.
var presets = []preset{
	{"Upper_Half", func(w, h int) Rect { return Rect{0, 0, w, h / 2} }},
	{"Lower_Half", func(w, h int) Rect { return Rect{0, h / 2, w, h / 2} }},
	{"Upper_Left", func(w, h int) Rect { return Rect{0, 0, w / 2, h / 2} }},
	{"Upper_Right", func(w, h int) Rect { return Rect{w / 2, 0, w / 2, h / 2} }},
	{"Lower_Left", func(w, h int) Rect { return Rect{0, h / 2, w / 2, h / 2} }},
	{"Lower_Right", func(w, h int) Rect { return Rect{w / 2, h / 2, w / 2, h / 2} }},
	{"Home_Screen_Region", func(w, h int) Rect { return Rect{w/2 - 20, 0, 40, 40} }},
	{"Lower_Most_Half", func(w, h int) Rect { return Rect{0, h - h/14, w, h / 14} }},
	{"Agnes_Region", func(w, h int) Rect {
		return Rect{0, int(float64(h) * 0.08), int(float64(w) * 0.30), int(float64(h) * 0.42)}
	}},
	{"Main", func(w, h int) Rect { return Rect{0, 0, w, h / 2} }},
}

// PresetRegions computes the preset library for a screen.
func PresetRegions(s Screen) []Region {
	regions := make([]Region, 0, len(presets))
	for _, p := range presets {
		regions = append(regions, Region{Name: p.name, Rect: p.fn(s.Width, s.Height)})
	}
	return regions
}
