// Package edit applies named editing steps to a design document. The batch
// command, the MCP tools and the individual CLI commands all go through it,
// so every surface validates parameters and applies configured defaults the
// same way.
package edit

import (
	"fmt"

	"github.com/mj1618/zommation/internal/model"
)

// Defaults are the values used for parameters the caller leaves out.
type Defaults struct {
	Threshold     float64
	Timeout       float64
	SwipeDuration float64
}

// ModelDefaults returns the built-in defaults.
func ModelDefaults() Defaults {
	return Defaults{
		Threshold:     model.DefaultThreshold,
		Timeout:       model.DefaultTimeout,
		SwipeDuration: model.DefaultSwipeDuration,
	}
}

// ApplyActionDefaults fills the unset match parameters of def from d. Values
// equal to the built-in defaults stay unset, so exports of documents edited
// with the stock configuration do not change.
func ApplyActionDefaults(def model.ActionDef, d Defaults) model.ActionDef {
	kind, err := model.ParseKind(def.Type)
	if err != nil {
		return def
	}
	switch kind {
	case model.KindClick, model.KindClickImage, model.KindImageExists:
		if def.Threshold == nil && d.Threshold != model.DefaultThreshold {
			def.Threshold = model.Float(d.Threshold)
		}
		if def.Timeout == nil && d.Timeout != model.DefaultTimeout {
			def.Timeout = model.Float(d.Timeout)
		}
	}
	return def
}

// AddAction builds def, applying d, and inserts it at index. A negative index
// appends. It returns the index the action ended up at.
func AddAction(doc *model.Document, def model.ActionDef, index int, d Defaults) (int, error) {
	a, err := model.BuildAction(ApplyActionDefaults(def, d))
	if err != nil {
		return 0, err
	}
	if index < 0 {
		index = doc.Len()
	}
	if err := doc.InsertAction(index, a); err != nil {
		return 0, err
	}
	return index, nil
}

// SetSwipe replaces the swipe points. duration overrides the gesture length;
// when nil an existing swipe keeps its duration and a new one gets
// d.SwipeDuration. The document is unchanged on error.
func SetSwipe(doc *model.Document, from, to model.Point, region string, duration *float64, d Defaults) error {
	if duration != nil && !model.ValidDuration(*duration) {
		return fmt.Errorf("%w: swipe duration %v must be a positive number", model.ErrInvalidParameter, *duration)
	}
	_, had := doc.Swipe()
	if err := doc.SetSwipePoints(from, to, region); err != nil {
		return err
	}
	switch {
	case duration != nil:
		return doc.SetSwipeDuration(*duration)
	case !had && d.SwipeDuration > 0 && d.SwipeDuration != model.DefaultSwipeDuration:
		return doc.SetSwipeDuration(d.SwipeDuration)
	}
	return nil
}
