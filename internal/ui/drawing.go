package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

// Every primitive goes through a package variable so tests can override it
// and capture draw calls without a graphics context.

var drawRect = func(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

var drawLine = func(dst *ebiten.Image, a, b utils.Point, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

// drawDisc renders a filled circle with a ring around it.
var drawDisc = func(dst *ebiten.Image, center utils.Point, r float64, fill, ring color.Color, ringWidth float64) {
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(r), fill, true)
	vector.StrokeCircle(dst, float32(center.X), float32(center.Y), float32(r), float32(ringWidth), ring, true)
}

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawText prints s with its top-left corner at (x, y) using the basic font.
var drawText = func(dst *ebiten.Image, s string, x, y int, c color.Color) {
	var op text.DrawOptions
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, uiFace, &op)
}

// drawCaption renders s centered on (cx, cy), scaled by scale.
var drawCaption = func(dst *ebiten.Image, s string, cx, cy, scale float64, c color.Color) {
	var op text.DrawOptions
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterNearest
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, uiFace, &op)
}

var debugPrint = ebitenutil.DebugPrint

// textWidth is the pixel width of s in the basic font.
func textWidth(s string) int {
	w, _ := text.Measure(s, uiFace, 0)
	return int(w)
}
