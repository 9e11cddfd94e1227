package model

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

var testLayout = Layout{Center: utils.Pt(320, 240), Radius: 80, VertexRadius: 20}

func completeDef(n int) Definition {
	def := Definition{Name: fmt.Sprintf("K%d", n), Density: 1}
	for i := 0; i < n; i++ {
		def.VertexIDs = append(def.VertexIDs, VertexID(i))
		var nbrs []VertexID
		for j := 0; j < n; j++ {
			if j != i {
				nbrs = append(nbrs, VertexID(j))
			}
			if j > i {
				def.Edges = append(def.Edges, [2]VertexID{VertexID(i), VertexID(j)})
			}
		}
		def.Neighbors = append(def.Neighbors, nbrs)
	}
	return def
}

func cycleDef(n int) Definition {
	def := Definition{Name: fmt.Sprintf("C%d", n), Density: 2}
	for i := 0; i < n; i++ {
		def.VertexIDs = append(def.VertexIDs, VertexID(i))
		prev, next := VertexID((i+n-1)%n), VertexID((i+1)%n)
		def.Neighbors = append(def.Neighbors, []VertexID{prev, next})
		def.Edges = append(def.Edges, [2]VertexID{VertexID(i), next})
	}
	return def
}

func TestBuildPlacesVerticesOnCircle(t *testing.T) {
	g, err := Build(completeDef(4), testLayout)
	require.NoError(t, err)
	require.Len(t, g.Vertices, 4)

	for i, v := range g.Vertices {
		angle := 2 * math.Pi * float64(i) / 4
		assert.InDelta(t, 320+math.Cos(angle)*80, v.Pos.X, 1e-9)
		assert.InDelta(t, 240+math.Sin(angle)*80, v.Pos.Y, 1e-9)
		assert.Equal(t, i, v.Z, "z starts at creation index")
		assert.Equal(t, None, v.Color)
		assert.Equal(t, 20.0, v.Radius)
	}
	assert.Len(t, g.Edges, 6)
	assert.Equal(t, "K4", g.Name)
}

func TestBuildResolvesSymmetricNeighbors(t *testing.T) {
	g, err := Build(cycleDef(6), testLayout)
	require.NoError(t, err)
	for _, v := range g.Vertices {
		require.Len(t, v.Neighbors, 2)
		for _, n := range v.Neighbors {
			assert.NotEqual(t, v.ID, n.ID)
			assert.Contains(t, n.NeighborIDs(), v.ID)
		}
	}
	for _, e := range g.Edges {
		assert.Contains(t, e.A.Neighbors, e.B)
		assert.Contains(t, e.B.Neighbors, e.A)
	}
}

func TestTwoStepBuilder(t *testing.T) {
	d, err := Allocate(cycleDef(3), testLayout)
	require.NoError(t, err)
	for _, v := range d.vertices {
		assert.Nil(t, v.Neighbors, "neighbors unresolved before ResolveNeighbors")
	}
	g, err := d.ResolveNeighbors()
	require.NoError(t, err)
	assert.Len(t, g.VertexByID(1).Neighbors, 2)
}

func TestTopmostPrefersHigherZ(t *testing.T) {
	g, err := Build(completeDef(3), testLayout)
	require.NoError(t, err)
	a, b := g.Vertices[0], g.Vertices[1]
	b.Pos = utils.Pt(a.Pos.X+10, a.Pos.Y)
	probe := utils.Pt(a.Pos.X+5, a.Pos.Y)

	a.Z, b.Z = 7, 3
	assert.Same(t, a, g.Topmost(probe))
	a.Z, b.Z = 3, 7
	assert.Same(t, b, g.Topmost(probe))
}

func TestTopmostBoundary(t *testing.T) {
	g, err := Build(completeDef(3), testLayout)
	require.NoError(t, err)
	v := g.Vertices[0]
	assert.Same(t, v, g.Topmost(v.Pos), "center always hits")
	assert.Nil(t, g.Topmost(utils.Pt(v.Pos.X+v.Radius, v.Pos.Y)), "distance == radius misses")
	assert.Same(t, v, g.Topmost(utils.Pt(v.Pos.X+v.Radius-0.001, v.Pos.Y)))
}

func TestMaxZ(t *testing.T) {
	g, err := Build(completeDef(4), testLayout)
	require.NoError(t, err)
	assert.Equal(t, 3, g.MaxZ())
	assert.Equal(t, 2, g.MaxZOthers(g.Vertices[3]))
	assert.Equal(t, -1, (&Graph{}).MaxZ())
}
