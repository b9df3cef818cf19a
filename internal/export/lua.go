package export

import (
	"fmt"
	"strings"

	"github.com/mj1618/zommation/internal/model"
)

// LuaHeader is the first line of every generated script.
const LuaHeader = "-- Generated by Region & Swipe Designer"

// ToLua renders doc as a standalone Lua script: a header, a table of region
// definitions, then one line per action in execution order. Actions whose
// region or swipe cannot be resolved become a comment line, so line N of the
// action block always corresponds to action N.
func ToLua(doc *model.Document) string {
	var b strings.Builder
	screen := doc.Screen()

	fmt.Fprintln(&b, LuaHeader)
	fmt.Fprintf(&b, "-- Screen %dx%d\n", screen.Width, screen.Height)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "-- Regions")
	fmt.Fprintln(&b, "local regions = {}")
	for _, r := range doc.Regions() {
		fmt.Fprintf(&b, "regions[%s] = Region(%d, %d, %d, %d)\n", luaQuote(r.Name), r.X, r.Y, r.W, r.H)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "-- Actions")
	for _, a := range doc.Actions() {
		fmt.Fprintln(&b, luaStatement(doc, a))
	}
	return b.String()
}

func luaStatement(doc *model.Document, a model.Action) string {
	switch v := a.(type) {
	case model.Click:
		return luaMatch(doc, "clickimage", v.Region, v.Image, v.EffectiveThreshold(), v.EffectiveTimeout())
	case model.ClickImage:
		return luaMatch(doc, "clickimage", v.Region, v.Image, v.EffectiveThreshold(), v.EffectiveTimeout())
	case model.ImageExists:
		return luaMatch(doc, "exists", v.Region, v.Image, v.Threshold, v.Timeout)
	case model.Swipe:
		s, ok := doc.Swipe()
		if !ok {
			return "-- swipe skipped: no swipe points set"
		}
		return fmt.Sprintf("swipe(%d, %d, %d, %d, %s)", s.Start.X, s.Start.Y, s.End.X, s.End.Y, formatNumber(s.Duration))
	case model.Wait:
		return fmt.Sprintf("wait(%s)", formatNumber(v.Duration))
	case model.Log:
		return fmt.Sprintf("log(%s)", luaQuote(v.Message))
	case model.KeyEvent:
		code, _ := model.KeyCode(v.Key)
		return fmt.Sprintf("keyevent(%d) -- %s", code, luaComment(v.Key))
	default:
		return fmt.Sprintf("-- unsupported action %s", a.Kind())
	}
}

func luaMatch(doc *model.Document, fn, region, image string, threshold, timeout float64) string {
	r, ok := resolve(doc, region)
	if !ok {
		return fmt.Sprintf("-- %s skipped: no region assigned", fn)
	}
	call := fmt.Sprintf("%s(%d, %d, %d, %d, %s, %s", fn, r.X, r.Y, r.W, r.H, formatNumber(threshold), formatNumber(timeout))
	if image != "" {
		call += ", " + luaQuote(image)
	}
	return call + ")"
}

// resolve looks up a region reference. Empty and dangling names both miss.
func resolve(doc *model.Document, name string) (model.Region, bool) {
	if name == "" {
		return model.Region{}, false
	}
	return doc.Region(name)
}
