package ui

import (
	"image/color"

	"github.com/ingyamilmolinar/quadrants/core/model"
)

var (
	colBackground = color.RGBA{250, 250, 246, 255}
	colEdge       = color.RGBA{40, 40, 48, 255}
	colVertexFill = color.RGBA{240, 240, 240, 255}
	colVertexRing = color.RGBA{30, 30, 36, 255}
	colHeldRing   = color.RGBA{90, 90, 110, 255}
	colHUD        = color.RGBA{70, 70, 80, 255}

	colShutterA = color.RGBA{28, 28, 36, 255}
	colShutterB = color.RGBA{44, 44, 56, 255}
	colCaption  = color.RGBA{250, 250, 246, 255}

	colEndBG   = color.RGBA{20, 20, 30, 255}
	colEndText = color.RGBA{240, 240, 240, 255}
)

var colorOf = map[model.Color]color.RGBA{
	model.Red:    {220, 50, 47, 255},
	model.Yellow: {241, 196, 15, 255},
	model.Green:  {46, 160, 67, 255},
	model.Blue:   {38, 110, 220, 255},
}

// ringColor is the outline of a vertex: its assigned color, or the neutral
// ring while it has none.
func ringColor(c model.Color, held bool) color.Color {
	if rgba, ok := colorOf[c]; ok {
		return rgba
	}
	if held {
		return colHeldRing
	}
	return colVertexRing
}

// bandColor cycles through the corner palette for the swipe bands.
func bandColor(i int) color.Color {
	return colorOf[model.CornerColors[i%len(model.CornerColors)]]
}
