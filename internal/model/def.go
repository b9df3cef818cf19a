package model

import (
	"fmt"
	"strings"
)

// ActionDef is the flat description of an action shared by every editing
// surface: command flags, batch steps, MCP arguments, the profile file and
// JSON import. Fields that do not apply to Type are ignored.
type ActionDef struct {
	Type      string   `yaml:"type"                json:"type"`
	Region    string   `yaml:"region,omitempty"    json:"region,omitempty"`
	Image     string   `yaml:"image,omitempty"     json:"image,omitempty"`
	Threshold *float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Timeout   *float64 `yaml:"timeout,omitempty"   json:"timeout,omitempty"`
	Duration  *float64 `yaml:"duration,omitempty"  json:"duration,omitempty"`
	Message   *string  `yaml:"message,omitempty"   json:"message,omitempty"`
	Key       string   `yaml:"key,omitempty"       json:"key,omitempty"`
}

// kindAliases maps lower-cased type names, including the legacy designer's
// action names, to kinds.
var kindAliases = map[string]Kind{
	"click":         KindClick,
	"clickimage":    KindClickImage,
	"click_image":   KindClickImage,
	"waitclick":     KindClickImage,
	"imageexists":   KindImageExists,
	"image_exists":  KindImageExists,
	"exists":        KindImageExists,
	"wait":          KindWait,
	"sleep":         KindWait,
	"swipe":         KindSwipe,
	"log":           KindLog,
	"logger":        KindLog,
	"toast":         KindLog,
	"keyevent":      KindKeyEvent,
	"key_event":     KindKeyEvent,
	"keyevent_back": KindKeyEvent,
}

// ParseKind resolves a type name case-insensitively.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown action type %q", ErrInvalidParameter, s)
}

// BuildAction converts a definition into a validated Action.
func BuildAction(def ActionDef) (Action, error) {
	kind, err := ParseKind(def.Type)
	if err != nil {
		return nil, err
	}

	var a Action
	switch kind {
	case KindClick:
		a = Click{Region: def.Region, Image: def.Image, Threshold: copyFloat(def.Threshold), Timeout: copyFloat(def.Timeout)}
	case KindClickImage:
		a = ClickImage{Region: def.Region, Image: def.Image, Threshold: copyFloat(def.Threshold), Timeout: copyFloat(def.Timeout)}
	case KindImageExists:
		a = ImageExists{
			Region:    def.Region,
			Image:     def.Image,
			Threshold: floatOr(def.Threshold, DefaultThreshold),
			Timeout:   floatOr(def.Timeout, DefaultTimeout),
		}
	case KindWait:
		a = Wait{Duration: floatOr(def.Duration, DefaultWait)}
	case KindSwipe:
		a = Swipe{}
	case KindLog:
		msg := ""
		if def.Message != nil {
			msg = *def.Message
		}
		a = Log{Message: msg}
	case KindKeyEvent:
		key := def.Key
		if key == "" && strings.EqualFold(def.Type, "keyevent_back") {
			key = "back"
		}
		if key == "" {
			return nil, fmt.Errorf("%w: keyevent needs a key", ErrInvalidParameter)
		}
		a = KeyEvent{Key: strings.ToLower(key)}
	default:
		return nil, fmt.Errorf("%w: unsupported action type %q", ErrInvalidParameter, kind)
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// DefOf converts an Action back into its definition. BuildAction(DefOf(a))
// reproduces a.
func DefOf(a Action) ActionDef {
	def := ActionDef{Type: string(a.Kind())}
	switch v := a.(type) {
	case Click:
		def.Region, def.Image = v.Region, v.Image
		def.Threshold, def.Timeout = copyFloat(v.Threshold), copyFloat(v.Timeout)
	case ClickImage:
		def.Region, def.Image = v.Region, v.Image
		def.Threshold, def.Timeout = copyFloat(v.Threshold), copyFloat(v.Timeout)
	case ImageExists:
		def.Region, def.Image = v.Region, v.Image
		def.Threshold, def.Timeout = Float(v.Threshold), Float(v.Timeout)
	case Wait:
		def.Duration = Float(v.Duration)
	case Swipe:
	case Log:
		msg := v.Message
		def.Message = &msg
	case KeyEvent:
		def.Key = v.Key
	}
	return def
}

// Describe returns a one-line summary of an action for listings.
func Describe(a Action) string {
	var b strings.Builder
	b.WriteString(string(a.Kind()))
	switch v := a.(type) {
	case Click:
		describeTarget(&b, v.Region, v.Image)
	case ClickImage:
		describeTarget(&b, v.Region, v.Image)
	case ImageExists:
		describeTarget(&b, v.Region, v.Image)
	case Wait:
		fmt.Fprintf(&b, " %vs", v.Duration)
	case Log:
		fmt.Fprintf(&b, " %q", v.Message)
	case KeyEvent:
		fmt.Fprintf(&b, " %s", v.Key)
	}
	return b.String()
}

func describeTarget(b *strings.Builder, region, image string) {
	if image != "" {
		fmt.Fprintf(b, " [%s]", image)
	}
	if region == "" {
		b.WriteString(" @ (unassigned)")
		return
	}
	fmt.Fprintf(b, " @ %s", region)
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}
