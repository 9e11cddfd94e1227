package model

import "github.com/ingyamilmolinar/quadrants/internal/utils"

// Region is a colored square drop target anchored in a canvas corner.
type Region struct {
	Color   Color
	TopLeft utils.Point
	Size    float64
}

// Contains reports whether p lies in the region, edges included.
func (r Region) Contains(p utils.Point) bool {
	return utils.InSquare(p, r.TopLeft, r.Size)
}

// Regions are kept in construction order; lookups are first match wins.
type Regions []Region

// fractalCells is the fill order of the 3x3 corner grid, counted from the
// corner itself. Five cells make the X pattern.
var fractalCells = [MaxDensity][2]int{{0, 0}, {2, 0}, {0, 2}, {1, 1}, {2, 2}}

// BuildRegions tiles each canvas corner with density squares of the corner's
// color. Density 1 is one cornerSize square; higher densities use cells of a
// 3x3 grid over the same corner square.
func BuildRegions(canvas utils.Size, cornerSize float64, density int) Regions {
	if density < MinDensity {
		density = MinDensity
	}
	if density > MaxDensity {
		density = MaxDensity
	}
	cell := cornerSize
	if density > 1 {
		cell = cornerSize / 3
	}

	out := make(Regions, 0, 4*density)
	for corner, col := range CornerColors {
		right := corner == 1 || corner == 3
		bottom := corner == 2 || corner == 3
		for k := 0; k < density; k++ {
			cx, cy := float64(fractalCells[k][0]), float64(fractalCells[k][1])
			if density == 1 {
				cx, cy = 0, 0
			}
			x := cx * cell
			if right {
				x = canvas.W - (cx+1)*cell
			}
			y := cy * cell
			if bottom {
				y = canvas.H - (cy+1)*cell
			}
			out = append(out, Region{Color: col, TopLeft: utils.Pt(x, y), Size: cell})
		}
	}
	return out
}

// ColorAt returns the color of the first region containing p, or None.
func (rs Regions) ColorAt(p utils.Point) Color {
	for _, r := range rs {
		if r.Contains(p) {
			return r.Color
		}
	}
	return None
}
