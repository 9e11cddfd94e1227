package engine

import (
	"cmp"
	"slices"

	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

type VertexView struct {
	ID     model.VertexID
	Pos    utils.Point
	Radius float64
	Color  model.Color
	Z      int
	Held   bool
}

type EdgeView struct{ A, B utils.Point }

// Snapshot is the read-only view the renderer draws from each frame.
type Snapshot struct {
	Canvas   utils.Size
	Vertices []VertexView // ascending Z, i.e. draw order
	Edges    []EdgeView
	Regions  model.Regions

	Phase     sequence.Phase
	Shutter   []sequence.Rect
	Caption   float64 // 0 when no caption is shown
	Bands     []sequence.Rect
	EndScreen bool

	Level  int // 1-based
	Levels int
	Name   string
	Tick   int64
}

func (e *Engine) Snapshot() Snapshot {
	g := e.ctrl.Graph()
	held, isHeld := e.ctrl.Active()

	s := Snapshot{
		Canvas:    e.cfg.Canvas,
		Vertices:  make([]VertexView, 0, len(g.Vertices)),
		Edges:     make([]EdgeView, 0, len(g.Edges)),
		Regions:   e.ctrl.Regions(),
		Phase:     e.seq.Phase(),
		EndScreen: e.seq.EndArmed(),
		Level:     e.Level(),
		Levels:    e.levels.Len(),
		Name:      g.Name,
		Tick:      e.ticks,
	}
	for _, v := range g.Vertices {
		s.Vertices = append(s.Vertices, VertexView{
			ID:     v.ID,
			Pos:    v.Pos,
			Radius: v.Radius,
			Color:  v.Color,
			Z:      v.Z,
			Held:   isHeld && v.ID == held,
		})
	}
	// stable: equal Z keeps slice order, matching hit-test priority
	slices.SortStableFunc(s.Vertices, func(a, b VertexView) int { return cmp.Compare(a.Z, b.Z) })
	for _, ed := range g.Edges {
		s.Edges = append(s.Edges, EdgeView{A: ed.A.Pos, B: ed.B.Pos})
	}

	sh := e.seq.Shutter()
	switch s.Phase {
	case sequence.Transitioning:
		s.Shutter = sh.Blocks()
		s.Caption = sh.Caption()
	case sequence.Swiping:
		// until the swap the cover still hides the solved puzzle
		s.Shutter = sh.Blocks()
		s.Caption = sh.Caption()
		s.Bands = e.seq.Swipe().Bands()
	}
	return s
}
