package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	d := New()
	assert.Equal(t, Screen{Width: 720, Height: 1520}, d.Screen())
	assert.Len(t, d.Regions(), len(presets))
	assert.Empty(t, d.Actions())
	_, ok := d.Swipe()
	assert.False(t, ok)
	assert.Empty(t, d.Background())
}

func TestPresetRegions(t *testing.T) {
	regions := PresetRegions(Screen{Width: 720, Height: 1520})
	byName := make(map[string]Rect)
	for _, r := range regions {
		byName[r.Name] = r.Rect
		assert.False(t, r.ClickConstrained, "preset %s", r.Name)
	}

	tests := []struct {
		name string
		want Rect
	}{
		{"Upper_Half", Rect{0, 0, 720, 760}},
		{"Lower_Half", Rect{0, 760, 720, 760}},
		{"Upper_Right", Rect{360, 0, 360, 760}},
		{"Home_Screen_Region", Rect{340, 0, 40, 40}},
		{"Lower_Most_Half", Rect{0, 1412, 720, 108}},
		{"Agnes_Region", Rect{0, 121, 216, 638}},
		{"Main", Rect{0, 0, 720, 760}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, byName[tt.name])
		})
	}
}

func TestSetScreen_KeepsRegions(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1080, 1920}, {100, 50}, {4000, 3000}}
	for _, s := range sizes {
		d := New()
		require.NoError(t, d.AddRegion("btn", Rect{10, 20, 30, 40}, false))
		before := d.Regions()

		require.NoError(t, d.SetScreen(s[0], s[1]))
		assert.Equal(t, Screen{Width: s[0], Height: s[1]}, d.Screen())
		assert.Equal(t, before, d.Regions())
	}
}

func TestSetScreen_InvalidDimension(t *testing.T) {
	tests := [][2]int{{0, 100}, {100, 0}, {-1, 100}, {100, -5}}
	for _, s := range tests {
		d := New()
		err := d.SetScreen(s[0], s[1])
		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.Equal(t, DefaultScreen(), d.Screen())
	}
}

func TestAddRegion(t *testing.T) {
	d := New()
	require.NoError(t, d.SetScreen(1080, 1920))
	require.NoError(t, d.AddRegion("btn_start", Rect{100, 200, 50, 50}, true))

	r, ok := d.Region("btn_start")
	require.True(t, ok)
	assert.Equal(t, Rect{100, 200, 50, 50}, r.Rect)
	assert.True(t, r.ClickConstrained)

	regions := d.Regions()
	assert.Equal(t, "btn_start", regions[len(regions)-1].Name, "new regions are appended")
}

func TestAddRegion_DuplicateNameLeavesRegionsUnchanged(t *testing.T) {
	d := New()
	require.NoError(t, d.AddRegion("btn", Rect{0, 0, 10, 10}, false))
	before := d.Regions()

	err := d.AddRegion("btn", Rect{5, 5, 20, 20}, true)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, d.Regions())

	err = d.AddRegion("Upper_Half", Rect{5, 5, 20, 20}, true)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, d.Regions())
}

func TestAddRegion_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		rect    Rect
		wantErr error
	}{
		{"negative x", "a", Rect{-1, 0, 10, 10}, ErrOutOfBounds},
		{"past right edge", "a", Rect{715, 0, 10, 10}, ErrOutOfBounds},
		{"past bottom edge", "a", Rect{0, 1515, 10, 10}, ErrOutOfBounds},
		{"zero width", "a", Rect{0, 0, 0, 10}, ErrInvalidDimension},
		{"negative height", "a", Rect{0, 0, 10, -3}, ErrInvalidDimension},
		{"width overflows", "a", Rect{1, 0, math.MaxInt, 10}, ErrOutOfBounds},
		{"height overflows", "a", Rect{0, 5, 10, math.MaxInt}, ErrOutOfBounds},
		{"empty name", "", Rect{0, 0, 10, 10}, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			before := d.Regions()
			err := d.AddRegion(tt.region, tt.rect, false)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, d.Regions())
		})
	}
}

func TestAddRegion_FullScreenFits(t *testing.T) {
	d := New()
	assert.NoError(t, d.AddRegion("all", Rect{0, 0, 720, 1520}, false))
}

func TestDeleteRegion_SoftInvalidatesReferences(t *testing.T) {
	d := New()
	require.NoError(t, d.AddRegion("btn", Rect{10, 10, 50, 50}, false))
	require.NoError(t, d.AppendAction(ClickImage{Region: "btn", Threshold: Float(0.8)}))
	require.NoError(t, d.AppendAction(Wait{Duration: 2}))
	require.NoError(t, d.AppendAction(ImageExists{Region: "btn", Threshold: 0.9, Timeout: 3}))
	require.NoError(t, d.AppendAction(Click{Region: "Main"}))
	require.NoError(t, d.SetSwipePoints(Point{10, 10}, Point{20, 20}, "btn"))

	require.NoError(t, d.DeleteRegion("btn"))

	_, ok := d.Region("btn")
	assert.False(t, ok)
	actions := d.Actions()
	require.Len(t, actions, 4, "actions are never removed by region deletion")
	assert.Equal(t, ClickImage{Region: "", Threshold: Float(0.8)}, actions[0])
	assert.Equal(t, Wait{Duration: 2}, actions[1])
	assert.Equal(t, ImageExists{Region: "", Threshold: 0.9, Timeout: 3}, actions[2])
	assert.Equal(t, Click{Region: "Main"}, actions[3])

	s, ok := d.Swipe()
	require.True(t, ok)
	assert.Empty(t, s.Region)
	assert.Equal(t, Point{10, 10}, s.Start)
}

func TestDeleteRegion_Unknown(t *testing.T) {
	d := New()
	before := d.Regions()
	assert.ErrorIs(t, d.DeleteRegion("nope"), ErrUnresolvedReference)
	assert.Equal(t, before, d.Regions())
}

func TestSetRegionRect(t *testing.T) {
	d := New()
	require.NoError(t, d.SetRegionRect("Main", Rect{1, 2, 3, 4}))
	r, _ := d.Region("Main")
	assert.Equal(t, Rect{1, 2, 3, 4}, r.Rect)

	assert.ErrorIs(t, d.SetRegionRect("Main", Rect{0, 0, 9999, 4}), ErrOutOfBounds)
	assert.ErrorIs(t, d.SetRegionRect("missing", Rect{0, 0, 1, 1}), ErrUnresolvedReference)
	r, _ = d.Region("Main")
	assert.Equal(t, Rect{1, 2, 3, 4}, r.Rect)
}

func TestOutOfBoundsRegions_AfterShrink(t *testing.T) {
	d := New()
	require.NoError(t, d.SetScreen(360, 760))
	names := d.OutOfBoundsRegions()
	assert.Contains(t, names, "Lower_Half")
	assert.Contains(t, names, "Upper_Half")
	assert.NotContains(t, names, "Upper_Left")
}

func TestSetSwipePoints(t *testing.T) {
	d := New()
	require.NoError(t, d.SetSwipePoints(Point{100, 1000}, Point{100, 200}, ""))
	s, ok := d.Swipe()
	require.True(t, ok)
	assert.Equal(t, SwipeDef{Start: Point{100, 1000}, End: Point{100, 200}, Duration: DefaultSwipeDuration}, s)

	require.NoError(t, d.SetSwipeDuration(1.5))
	require.NoError(t, d.SetSwipePoints(Point{1, 2}, Point{3, 4}, "Main"))
	s, _ = d.Swipe()
	assert.Equal(t, 1.5, s.Duration, "duration survives new points")
	assert.Equal(t, "Main", s.Region)
}

func TestSetSwipePoints_Errors(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.SetSwipePoints(Point{-1, 0}, Point{3, 4}, ""), ErrOutOfBounds)
	assert.ErrorIs(t, d.SetSwipePoints(Point{0, 0}, Point{3, 4000}, ""), ErrOutOfBounds)
	assert.ErrorIs(t, d.SetSwipePoints(Point{0, 0}, Point{3, 4}, "ghost"), ErrUnresolvedReference)
	_, ok := d.Swipe()
	assert.False(t, ok)
	assert.ErrorIs(t, d.SetSwipeDuration(1), ErrInvalidParameter)

	require.NoError(t, d.SetSwipePoints(Point{0, 0}, Point{3, 4}, ""))
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, d.SetSwipeDuration(v), ErrInvalidParameter, "duration %v", v)
		assert.ErrorIs(t, d.SetSwipe(SwipeDef{End: Point{1, 1}, Duration: v}), ErrInvalidParameter, "duration %v", v)
	}
	s, _ := d.Swipe()
	assert.Equal(t, DefaultSwipeDuration, s.Duration)
}

func TestSetSwipePoints_ClampsIntoConstrainedRegion(t *testing.T) {
	d := New()
	require.NoError(t, d.AddRegion("pad", Rect{100, 100, 50, 50}, true))
	require.NoError(t, d.SetSwipePoints(Point{0, 0}, Point{500, 120}, "pad"))
	s, _ := d.Swipe()
	assert.Equal(t, Point{100, 100}, s.Start)
	assert.Equal(t, Point{150, 120}, s.End)
}

func TestSetSwipe_NoClamp(t *testing.T) {
	d := New()
	require.NoError(t, d.SetClickConstrained("Home_Screen_Region", true))
	s := SwipeDef{Start: Point{X: 0, Y: 1500}, End: Point{X: 700, Y: 10}, Region: "Home_Screen_Region", Duration: 1.5}
	require.NoError(t, d.SetSwipe(s))
	got, ok := d.Swipe()
	require.True(t, ok)
	assert.Equal(t, s, got)

	tests := []struct {
		name    string
		swipe   SwipeDef
		wantErr error
	}{
		{"outside screen", SwipeDef{Start: Point{X: 721, Y: 0}, Duration: 1}, ErrOutOfBounds},
		{"unknown region", SwipeDef{Region: "nope", Duration: 1}, ErrUnresolvedReference},
		{"zero duration", SwipeDef{}, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.SetSwipe(tt.swipe), tt.wantErr)
			got, _ := d.Swipe()
			assert.Equal(t, s, got, "failed SetSwipe must not change the swipe")
		})
	}
}

func TestInsertAction_Order(t *testing.T) {
	d := New()
	require.NoError(t, d.AppendAction(Wait{Duration: 1}))
	require.NoError(t, d.AppendAction(Wait{Duration: 3}))
	require.NoError(t, d.InsertAction(1, Wait{Duration: 2}))
	require.NoError(t, d.InsertAction(0, Log{Message: "start"}))

	assert.Equal(t, []Action{Log{Message: "start"}, Wait{Duration: 1}, Wait{Duration: 2}, Wait{Duration: 3}}, d.Actions())
}

func TestInsertAction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		action  Action
		wantErr error
	}{
		{"negative index", -1, Wait{}, ErrIndexOutOfRange},
		{"past end", 1, Wait{}, ErrIndexOutOfRange},
		{"unknown region", 0, Click{Region: "ghost"}, ErrUnresolvedReference},
		{"threshold too high", 0, ClickImage{Region: "Main", Threshold: Float(1.2)}, ErrInvalidParameter},
		{"negative timeout", 0, ImageExists{Region: "Main", Threshold: 0.5, Timeout: -1}, ErrInvalidParameter},
		{"negative wait", 0, Wait{Duration: -2}, ErrInvalidParameter},
		{"unknown key", 0, KeyEvent{Key: "hyperspace"}, ErrInvalidParameter},
		{"nil", 0, nil, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			err := d.InsertAction(tt.index, tt.action)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, d.Len())
		})
	}
}

func TestInsertAction_UnassignedAllowed(t *testing.T) {
	d := New()
	assert.NoError(t, d.AppendAction(ClickImage{}))
}

func TestRemoveAction(t *testing.T) {
	d := New()
	require.NoError(t, d.AppendAction(Wait{Duration: 1}))
	require.NoError(t, d.AppendAction(Wait{Duration: 2}))

	a, err := d.RemoveAction(0)
	require.NoError(t, err)
	assert.Equal(t, Wait{Duration: 1}, a)
	assert.Equal(t, []Action{Wait{Duration: 2}}, d.Actions())

	_, err = d.RemoveAction(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = d.RemoveAction(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestReorderAction(t *testing.T) {
	seq := func() *Document {
		d := New()
		for i := 0; i < 4; i++ {
			require.NoError(t, d.AppendAction(Wait{Duration: float64(i)}))
		}
		return d
	}
	durations := func(d *Document) []float64 {
		var out []float64
		for _, a := range d.Actions() {
			out = append(out, a.(Wait).Duration)
		}
		return out
	}

	d := seq()
	require.NoError(t, d.ReorderAction(0, 3))
	assert.Equal(t, []float64{1, 2, 3, 0}, durations(d))

	d = seq()
	require.NoError(t, d.ReorderAction(3, 1))
	assert.Equal(t, []float64{0, 3, 1, 2}, durations(d))

	d = seq()
	assert.ErrorIs(t, d.ReorderAction(0, 4), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.ReorderAction(-1, 0), ErrIndexOutOfRange)
	assert.Equal(t, []float64{0, 1, 2, 3}, durations(d))
}

func TestReset(t *testing.T) {
	d := New()
	require.NoError(t, d.SetScreen(1080, 1920))
	require.NoError(t, d.AddRegion("x", Rect{0, 0, 5, 5}, false))
	require.NoError(t, d.DeleteRegion("Main"))
	require.NoError(t, d.AppendAction(Log{Message: "hi"}))
	require.NoError(t, d.SetSwipePoints(Point{1, 1}, Point{2, 2}, ""))
	d.SetBackground("bg.png")

	d.Reset()
	assert.Equal(t, New(), d)
}

func TestClone_Independent(t *testing.T) {
	d := New()
	require.NoError(t, d.AppendAction(ClickImage{Region: "Main", Threshold: Float(0.7)}))
	require.NoError(t, d.SetSwipePoints(Point{1, 1}, Point{2, 2}, "Main"))

	c := d.Clone()
	assert.Equal(t, d, c)

	require.NoError(t, c.DeleteRegion("Main"))
	_, ok := d.Region("Main")
	assert.True(t, ok)
	s, _ := d.Swipe()
	assert.Equal(t, "Main", s.Region)
	assert.Equal(t, "Main", d.Actions()[0].(ClickImage).Region)
}

func TestErrorsWrapContext(t *testing.T) {
	d := New()
	err := d.AddRegion("Main", Rect{0, 0, 1, 1}, false)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.Contains(t, err.Error(), `"Main"`)
}
