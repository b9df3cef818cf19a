package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mj1618/zommation/internal/model"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	canvasColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	regionColor    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	selectedColor  = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	swipeStart     = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	swipeEnd       = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	swipeLineColor = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	textColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	outlineColor   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xc8}
)

const dotRadius = 5

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	// Selected names a region drawn highlighted. Empty highlights nothing.
	Selected string
	// Labels draws region names above their outlines.
	Labels bool
}

// RenderPreview draws the document at screen resolution: bg (may be nil)
// stretched to the screen, every region outlined, and the swipe as a red
// start dot, a green end dot and a dashed line between them.
func RenderPreview(bg image.Image, doc *model.Document, opts PreviewOptions) *image.RGBA {
	screen := doc.Screen()
	canvas := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(canvasColor), image.Point{}, draw.Src)
	if bg != nil {
		xdraw.CatmullRom.Scale(canvas, canvas.Bounds(), bg, bg.Bounds(), xdraw.Src, nil)
	}

	for _, r := range doc.Regions() {
		c, width := regionColor, 1
		if r.Name == opts.Selected {
			c, width = selectedColor, 2
		}
		for i := 0; i < width; i++ {
			drawRectangle(canvas, r.X+i, r.Y+i, r.X+r.W-i, r.Y+r.H-i, c)
		}
		if opts.Labels {
			drawTextWithOutline(canvas, r.Name, r.X+2, r.Y-4, textColor, outlineColor)
		}
	}

	if s, ok := doc.Swipe(); ok {
		drawDashedLine(canvas, s.Start, s.End, swipeLineColor)
		drawDot(canvas, s.Start, dotRadius, swipeStart)
		drawDot(canvas, s.End, dotRadius, swipeEnd)
	}
	return canvas
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws the outline of the half-open rectangle [x1,x2)x[y1,y2),
// clipped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := max(x1, bounds.Min.X); x < min(x2, bounds.Max.X); x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := max(y1, bounds.Min.Y); y < min(y2, bounds.Max.Y); y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

func drawDot(img *image.RGBA, p model.Point, r int, c color.Color) {
	bounds := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			if x, y := p.X+dx, p.Y+dy; isWithinBounds(bounds, x, y) {
				img.Set(x, y, c)
			}
		}
	}
}

// drawDashedLine draws a two pixel wide Bresenham line, 8 pixels on and 4 off.
func drawDashedLine(img *image.RGBA, a, b model.Point, c color.Color) {
	bounds := img.Bounds()
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy
	x, y := a.X, a.Y
	for step := 0; ; step++ {
		if step%12 < 8 {
			for _, o := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
				if isWithinBounds(bounds, x+o[0], y+o[1]) {
					img.Set(x+o[0], y+o[1], c)
				}
			}
		}
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawTextWithOutline draws text with its baseline at (x, y) and a one pixel
// outline for legibility on any background.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13 glyphs have a 11 pixel ascent.
	y = max(y, 11)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(x+dx, y+dy),
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
