package model

import "github.com/pkg/errors"

// Color is the color assigned to a vertex by dropping it on a corner region.
type Color uint8

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
)

// CornerColors is the fixed corner palette in construction order:
// top-left, top-right, bottom-left, bottom-right.
var CornerColors = [4]Color{Red, Yellow, Green, Blue}

func (c Color) String() string {
	switch c {
	case None:
		return "none"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// CheckColoring reports whether every vertex is colored and no two
// neighbors share a color. It rechecks the whole graph on every call.
func CheckColoring(vertices []*Vertex) bool {
	for _, v := range vertices {
		if v.Color == None {
			return false
		}
		for _, n := range v.Neighbors {
			if n.Color == None || n.Color == v.Color {
				return false
			}
		}
	}
	return true
}

// ErrNotFourColorable means no assignment of the corner colors is proper.
var ErrNotFourColorable = errors.New("model: graph needs more than four colors")

// FourColoring finds a proper coloring with the corner palette by
// backtracking over the vertices in slice order.
func FourColoring(g *Graph) (map[VertexID]Color, error) {
	out := make(map[VertexID]Color, len(g.Vertices))
	if !colorFrom(g.Vertices, 0, out) {
		return nil, wrapf(ErrNotFourColorable, "puzzle %q", g.Name)
	}
	return out, nil
}

func colorFrom(vs []*Vertex, i int, out map[VertexID]Color) bool {
	if i == len(vs) {
		return true
	}
	v := vs[i]
next:
	for _, c := range CornerColors {
		for _, n := range v.Neighbors {
			if out[n.ID] == c {
				continue next
			}
		}
		out[v.ID] = c
		if colorFrom(vs, i+1, out) {
			return true
		}
	}
	delete(out, v.ID)
	return false
}
