package edit

import (
	"math"
	"testing"

	"github.com/mj1618/zommation/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyActionDefaults(t *testing.T) {
	custom := Defaults{Threshold: 0.8, Timeout: 30, SwipeDuration: 1}

	got := ApplyActionDefaults(model.ActionDef{Type: "clickimage"}, custom)
	assert.Equal(t, 0.8, *got.Threshold)
	assert.Equal(t, 30.0, *got.Timeout)

	got = ApplyActionDefaults(model.ActionDef{Type: "exists", Threshold: model.Float(0.5)}, custom)
	assert.Equal(t, 0.5, *got.Threshold, "explicit values win")
	assert.Equal(t, 30.0, *got.Timeout)

	got = ApplyActionDefaults(model.ActionDef{Type: "clickimage"}, ModelDefaults())
	assert.Nil(t, got.Threshold, "stock defaults stay implicit")
	assert.Nil(t, got.Timeout)

	got = ApplyActionDefaults(model.ActionDef{Type: "wait"}, custom)
	assert.Nil(t, got.Threshold)
}

func TestAddAction(t *testing.T) {
	doc := model.New()
	i, err := AddAction(doc, model.ActionDef{Type: "wait"}, -1, ModelDefaults())
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = AddAction(doc, model.ActionDef{Type: "log", Message: strPtr("first")}, 0, ModelDefaults())
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, model.Log{Message: "first"}, doc.Actions()[0])

	_, err = AddAction(doc, model.ActionDef{Type: "click", Region: "nope"}, -1, ModelDefaults())
	assert.ErrorIs(t, err, model.ErrUnresolvedReference)
	_, err = AddAction(doc, model.ActionDef{Type: "wait"}, 9, ModelDefaults())
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
	assert.Equal(t, 2, doc.Len())
}

func TestSetSwipe_Durations(t *testing.T) {
	custom := Defaults{Threshold: 0.9, Timeout: 15, SwipeDuration: 1.5}
	doc := model.New()

	require.NoError(t, SetSwipe(doc, model.Point{X: 1, Y: 1}, model.Point{X: 2, Y: 2}, "", nil, custom))
	s, _ := doc.Swipe()
	assert.Equal(t, 1.5, s.Duration, "new swipe takes the configured duration")

	require.NoError(t, doc.SetSwipeDuration(3))
	require.NoError(t, SetSwipe(doc, model.Point{X: 5, Y: 5}, model.Point{X: 6, Y: 6}, "", nil, custom))
	s, _ = doc.Swipe()
	assert.Equal(t, 3.0, s.Duration, "existing duration is kept")

	require.NoError(t, SetSwipe(doc, model.Point{X: 5, Y: 5}, model.Point{X: 6, Y: 6}, "", model.Float(0.2), custom))
	s, _ = doc.Swipe()
	assert.Equal(t, 0.2, s.Duration)

	err := SetSwipe(doc, model.Point{X: 7, Y: 7}, model.Point{X: 8, Y: 8}, "", model.Float(0), custom)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
	s, _ = doc.Swipe()
	assert.Equal(t, model.Point{X: 5, Y: 5}, s.Start, "failed call leaves the swipe untouched")

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := SetSwipe(doc, model.Point{X: 7, Y: 7}, model.Point{X: 8, Y: 8}, "", model.Float(v), custom)
		assert.ErrorIs(t, err, model.ErrInvalidParameter, "duration %v", v)
	}
	s, _ = doc.Swipe()
	assert.Equal(t, 0.2, s.Duration)
}

func TestSummarize(t *testing.T) {
	doc := model.New()
	require.NoError(t, doc.AppendAction(model.Click{Region: "Main"}))
	require.NoError(t, doc.AppendAction(model.Wait{Duration: 2}))
	require.NoError(t, doc.SetScreen(100, 100))

	s := Summarize(doc)
	assert.Equal(t, model.Screen{Width: 100, Height: 100}, s.Screen)
	assert.Contains(t, s.OutOfBounds, "Main")
	assert.Nil(t, s.Swipe)
	assert.Equal(t, []ActionEntry{
		{Index: 0, Description: "Click @ Main"},
		{Index: 1, Description: "Wait 2s"},
	}, s.Actions)
}

func strPtr(s string) *string {
	return &s
}
