package model

import (
	"math"

	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

const InvalidVertexID VertexID = -1

type VertexID int

// Vertex is a draggable graph node. Only Pos, Color and Z change during play.
type Vertex struct {
	ID        VertexID
	Pos       utils.Point
	Radius    float64
	Color     Color
	Z         int
	Neighbors []*Vertex
}

// NeighborIDs lists the ids of v's neighbors in definition order.
func (v *Vertex) NeighborIDs() []VertexID {
	ids := make([]VertexID, len(v.Neighbors))
	for i, n := range v.Neighbors {
		ids[i] = n.ID
	}
	return ids
}

// Contains reports whether p is strictly inside the vertex circle.
func (v *Vertex) Contains(p utils.Point) bool {
	return utils.Distance(p, v.Pos) < v.Radius
}

type Edge struct{ A, B *Vertex }

// Graph is one playable puzzle instance. Its structure is fixed once built;
// a new puzzle gets a new Graph.
type Graph struct {
	Vertices []*Vertex
	Edges    []Edge
	Name     string
	Density  int
}

// VertexByID returns the vertex with the given id, or nil.
func (g *Graph) VertexByID(id VertexID) *Vertex {
	for _, v := range g.Vertices {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// MaxZ folds over the vertices and returns the highest Z, or -1 when empty.
func (g *Graph) MaxZ() int {
	return g.maxZExcept(nil)
}

func (g *Graph) maxZExcept(skip *Vertex) int {
	max := -1
	for _, v := range g.Vertices {
		if v == skip {
			continue
		}
		if v.Z > max {
			max = v.Z
		}
	}
	return max
}

// MaxZOthers is MaxZ ignoring v.
func (g *Graph) MaxZOthers(v *Vertex) int { return g.maxZExcept(v) }

// Topmost returns the vertex containing p with the highest Z. Equal Z goes to
// the vertex that comes later in the slice since it is drawn last.
func (g *Graph) Topmost(p utils.Point) *Vertex {
	var hit *Vertex
	for _, v := range g.Vertices {
		if !v.Contains(p) {
			continue
		}
		if hit == nil || v.Z >= hit.Z {
			hit = v
		}
	}
	return hit
}

// Layout describes where a freshly built graph is placed on the canvas.
type Layout struct {
	Center       utils.Point
	Radius       float64 // circle the vertices sit on
	VertexRadius float64
}

// Draft holds allocated vertices whose neighbor references are not resolved
// yet. ResolveNeighbors is the only way to turn it into a Graph.
type Draft struct {
	def      Definition
	vertices []*Vertex
	index    map[VertexID]*Vertex
}

// Allocate validates def and places its vertices evenly on the layout circle
// at angle 2πi/n in definition order. Z starts at the creation index.
func Allocate(def Definition, l Layout) (*Draft, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	n := len(def.VertexIDs)
	d := &Draft{
		def:      def,
		vertices: make([]*Vertex, 0, n),
		index:    make(map[VertexID]*Vertex, n),
	}
	for i, id := range def.VertexIDs {
		angle := 2 * math.Pi * float64(i) / float64(n)
		v := &Vertex{
			ID:     id,
			Pos:    utils.Pt(l.Center.X+math.Cos(angle)*l.Radius, l.Center.Y+math.Sin(angle)*l.Radius),
			Radius: l.VertexRadius,
			Color:  None,
			Z:      i,
		}
		d.vertices = append(d.vertices, v)
		d.index[id] = v
	}
	return d, nil
}

// ResolveNeighbors turns neighbor ids into references and derives the edges.
func (d *Draft) ResolveNeighbors() (*Graph, error) {
	for i, v := range d.vertices {
		ids := d.def.Neighbors[i]
		v.Neighbors = make([]*Vertex, 0, len(ids))
		for _, id := range ids {
			n, ok := d.index[id]
			if !ok {
				// unreachable after Validate
				return nil, wrapf(ErrUnknownNeighbor, "vertex %d lists %d", v.ID, id)
			}
			v.Neighbors = append(v.Neighbors, n)
		}
	}
	g := &Graph{
		Vertices: d.vertices,
		Edges:    make([]Edge, 0, len(d.def.Edges)),
		Name:     d.def.Name,
		Density:  d.def.Density,
	}
	for _, e := range d.def.Edges {
		g.Edges = append(g.Edges, Edge{A: d.index[e[0]], B: d.index[e[1]]})
	}
	return g, nil
}

// Build is Allocate followed by ResolveNeighbors.
func Build(def Definition, l Layout) (*Graph, error) {
	d, err := Allocate(def, l)
	if err != nil {
		return nil, err
	}
	return d.ResolveNeighbors()
}
