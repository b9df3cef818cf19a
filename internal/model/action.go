package model

import (
	"fmt"
	"math"
)

// Defaults applied when an optional image-match parameter is not set.
const (
	DefaultThreshold     = 0.9
	DefaultTimeout       = 15.0
	DefaultWait          = 1.0
	DefaultSwipeDuration = 0.4
)

// Kind discriminates the Action variants.
type Kind string

const (
	KindClick       Kind = "Click"
	KindClickImage  Kind = "ClickImage"
	KindImageExists Kind = "ImageExists"
	KindWait        Kind = "Wait"
	KindSwipe       Kind = "Swipe"
	KindLog         Kind = "Log"
	KindKeyEvent    Kind = "KeyEvent"
)

// Kinds lists every action kind in display order.
var Kinds = []Kind{KindClick, KindClickImage, KindImageExists, KindWait, KindSwipe, KindLog, KindKeyEvent}

// Action is one ordered step of the exported script. The concrete types are
// Click, ClickImage, ImageExists, Wait, Swipe, Log and KeyEvent.
type Action interface {
	Kind() Kind
	validate() error
}

// Targeted is implemented by the actions that look up a region by name.
// An empty RegionName means the action is unassigned.
type Targeted interface {
	Action
	RegionName() string
	withRegion(name string) Action
}

// Click clicks inside a region, optionally matching an image first.
type Click struct {
	Region    string
	Image     string
	Threshold *float64
	Timeout   *float64
}

// ClickImage waits for an image inside a region and clicks it.
type ClickImage struct {
	Region    string
	Image     string
	Threshold *float64
	Timeout   *float64
}

// ImageExists checks whether an image is visible inside a region.
type ImageExists struct {
	Region    string
	Image     string
	Threshold float64
	Timeout   float64
}

// Wait pauses for Duration seconds.
type Wait struct {
	Duration float64
}

// Swipe performs the document's swipe gesture.
type Swipe struct{}

// Log writes a message to the engine log.
type Log struct {
	Message string
}

// KeyEvent sends a hardware key, by name ("back", "home") or decimal key code.
type KeyEvent struct {
	Key string
}

func (Click) Kind() Kind       { return KindClick }
func (ClickImage) Kind() Kind  { return KindClickImage }
func (ImageExists) Kind() Kind { return KindImageExists }
func (Wait) Kind() Kind        { return KindWait }
func (Swipe) Kind() Kind       { return KindSwipe }
func (Log) Kind() Kind         { return KindLog }
func (KeyEvent) Kind() Kind    { return KindKeyEvent }

func (a Click) RegionName() string       { return a.Region }
func (a ClickImage) RegionName() string  { return a.Region }
func (a ImageExists) RegionName() string { return a.Region }

func (a Click) withRegion(name string) Action {
	a.Region = name
	return a
}

func (a ClickImage) withRegion(name string) Action {
	a.Region = name
	return a
}

func (a ImageExists) withRegion(name string) Action {
	a.Region = name
	return a
}

// EffectiveThreshold returns the threshold, or DefaultThreshold when unset.
func (a Click) EffectiveThreshold() float64 { return floatOr(a.Threshold, DefaultThreshold) }

// EffectiveTimeout returns the timeout, or DefaultTimeout when unset.
func (a Click) EffectiveTimeout() float64 { return floatOr(a.Timeout, DefaultTimeout) }

// EffectiveThreshold returns the threshold, or DefaultThreshold when unset.
func (a ClickImage) EffectiveThreshold() float64 { return floatOr(a.Threshold, DefaultThreshold) }

// EffectiveTimeout returns the timeout, or DefaultTimeout when unset.
func (a ClickImage) EffectiveTimeout() float64 { return floatOr(a.Timeout, DefaultTimeout) }

func (a Click) validate() error      { return validateMatch(a.Threshold, a.Timeout) }
func (a ClickImage) validate() error { return validateMatch(a.Threshold, a.Timeout) }
func (a ImageExists) validate() error {
	return validateMatch(&a.Threshold, &a.Timeout)
}

func (a Wait) validate() error {
	if !finite(a.Duration) || a.Duration < 0 {
		return fmt.Errorf("%w: wait duration %v must be a non-negative number", ErrInvalidParameter, a.Duration)
	}
	return nil
}

func (Swipe) validate() error { return nil }
func (Log) validate() error   { return nil }

func (a KeyEvent) validate() error {
	if _, ok := KeyCode(a.Key); !ok {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidParameter, a.Key)
	}
	return nil
}

func validateMatch(threshold, timeout *float64) error {
	if threshold != nil && !(*threshold >= 0 && *threshold <= 1) {
		return fmt.Errorf("%w: threshold %v not in [0, 1]", ErrInvalidParameter, *threshold)
	}
	if timeout != nil && (!finite(*timeout) || *timeout < 0) {
		return fmt.Errorf("%w: timeout %v must be a non-negative number", ErrInvalidParameter, *timeout)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidDuration reports whether v is usable as a swipe duration: a finite
// number of seconds above zero.
func ValidDuration(v float64) bool {
	return finite(v) && v > 0
}

// Float returns a pointer to v, for the optional action parameters.
func Float(v float64) *float64 {
	return &v
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
