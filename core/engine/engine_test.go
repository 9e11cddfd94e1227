package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/quadrants/core/levels"
	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/core/pointer"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

var testLogger = game_log.Discard()

func testConfig() Config {
	return Config{
		Canvas:       utils.Size{W: 640, H: 480},
		VertexRadius: 20,
		LayoutRadius: 80,
		CornerSize:   150,
		Tuning:       sequence.DefaultTuning(),
	}
}

func newEngine(t *testing.T, defs []model.Definition) *Engine {
	t.Helper()
	set, err := levels.New(defs, testLogger)
	require.NoError(t, err)
	e, err := New(testConfig(), set, testLogger)
	require.NoError(t, err)
	return e
}

func builtin(t *testing.T) []model.Definition {
	t.Helper()
	defs, err := levels.Builtin()
	require.NoError(t, err)
	return defs
}

// cornerTarget is a point inside the corner cell every density keeps.
func cornerTarget(c model.Color, i int) utils.Point {
	off := 15 + float64(i*3)
	switch c {
	case model.Red:
		return utils.Pt(off, off)
	case model.Yellow:
		return utils.Pt(640-off, off)
	case model.Green:
		return utils.Pt(off, 480-off)
	default:
		return utils.Pt(640-off, 480-off)
	}
}

func drag(t *testing.T, e *Engine, from, to utils.Point) {
	t.Helper()
	require.NoError(t, e.Tick(pointer.State{X: from.X, Y: from.Y, Down: true}))
	require.NoError(t, e.Tick(pointer.State{X: to.X, Y: to.Y, Down: true}))
	require.NoError(t, e.Tick(pointer.State{X: to.X, Y: to.Y}))
}

func solveCurrent(t *testing.T, e *Engine) {
	t.Helper()
	g := e.Controller().Graph()
	colors, err := model.FourColoring(g)
	require.NoError(t, err)
	for i, v := range g.Vertices {
		drag(t, e, v.Pos, cornerTarget(colors[v.ID], i))
	}
}

// idle ticks until the phase leaves cur.
func idle(t *testing.T, e *Engine, cur sequence.Phase) sequence.Phase {
	t.Helper()
	for i := 0; i < 10000; i++ {
		require.NoError(t, e.Tick(pointer.State{}))
		if e.Phase() != cur {
			return e.Phase()
		}
	}
	t.Fatalf("stuck in %s", cur)
	return cur
}

func TestNewLoadsFirstPuzzle(t *testing.T) {
	e := newEngine(t, builtin(t))
	s := e.Snapshot()
	assert.Equal(t, "Four corners", s.Name)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 5, s.Levels)
	assert.Len(t, s.Vertices, 4)
	assert.Len(t, s.Edges, 6)
	assert.Len(t, s.Regions, 4)
	assert.Equal(t, sequence.Idle, s.Phase)
	assert.False(t, s.EndScreen)
}

func TestNewRejectsBadTuning(t *testing.T) {
	set, err := levels.New(builtin(t), testLogger)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Tuning.SwipeSpeed = 0
	_, err = New(cfg, set, testLogger)
	assert.Error(t, err)
}

func TestSolveStartsWinSequenceOnSameTick(t *testing.T) {
	e := newEngine(t, builtin(t))
	solveCurrent(t, e)
	assert.Equal(t, sequence.Transitioning, e.Phase())
	assert.False(t, e.Solved(), "solved consumed by the win sequence")
}

func TestPointerIgnoredDuringWinSequence(t *testing.T) {
	e := newEngine(t, builtin(t))
	solveCurrent(t, e)
	v := e.Controller().Graph().Vertices[0]
	before := v.Pos
	drag(t, e, before, utils.Pt(320, 240))
	assert.Equal(t, before, v.Pos)
}

func TestSwapHappensUnderCover(t *testing.T) {
	e := newEngine(t, builtin(t))
	solveCurrent(t, e)
	assert.Equal(t, sequence.Swiping, idle(t, e, sequence.Transitioning))

	old := e.Controller()
	for e.Controller() == old {
		require.NoError(t, e.Tick(pointer.State{}))
		require.Equal(t, sequence.Swiping, e.Phase(), "swap happens before the swipe ends")
	}
	s := e.Snapshot()
	assert.Equal(t, "Honeycomb", s.Name)
	assert.Equal(t, 2, s.Level)
	assert.Nil(t, s.Shutter, "shutter reset at the swap")
	assert.NotEmpty(t, s.Bands)
	for _, b := range s.Bands {
		assert.LessOrEqual(t, b.Y, 0.0)
		assert.GreaterOrEqual(t, b.Y+b.H, 480.0)
	}
	assert.Len(t, s.Regions, 4*2)

	assert.Equal(t, sequence.Idle, idle(t, e, sequence.Swiping))
	for _, v := range e.Snapshot().Vertices {
		assert.Equal(t, model.None, v.Color, "new puzzle starts uncolored")
	}
}

func TestPlayThroughWholeSetEndsGame(t *testing.T) {
	defs := builtin(t)
	e := newEngine(t, defs)
	for i := range defs {
		require.Equal(t, sequence.Idle, e.Phase(), "puzzle %d playable", i+1)
		require.Equal(t, defs[i].Name, e.Snapshot().Name)

		solveCurrent(t, e)
		phases := []sequence.Phase{sequence.Idle, e.Phase()}
		for p := e.Phase(); p == sequence.Transitioning || p == sequence.Swiping; p = e.Phase() {
			phases = append(phases, idle(t, e, p))
		}
		if i < len(defs)-1 {
			assert.Equal(t, []sequence.Phase{sequence.Idle, sequence.Transitioning, sequence.Swiping, sequence.Idle}, phases)
		} else {
			assert.Equal(t, []sequence.Phase{sequence.Idle, sequence.Transitioning, sequence.Swiping, sequence.Ended}, phases)
		}
	}

	s := e.Snapshot()
	assert.True(t, s.EndScreen)
	assert.Equal(t, sequence.Ended, s.Phase)

	// nothing moves after the end
	v := e.Controller().Graph().Vertices[0]
	pos, col, z := v.Pos, v.Color, v.Z
	drag(t, e, pos, utils.Pt(320, 240))
	drag(t, e, utils.Pt(320, 240), cornerTarget(model.Blue, 0))
	assert.Equal(t, pos, v.Pos)
	assert.Equal(t, col, v.Color)
	assert.Equal(t, z, v.Z)
	assert.Equal(t, sequence.Ended, e.Phase())
}

func TestSnapshotDrawOrderFollowsZ(t *testing.T) {
	e := newEngine(t, builtin(t))
	g := e.Controller().Graph()
	first := g.Vertices[0]
	require.NoError(t, e.Tick(pointer.State{X: first.Pos.X, Y: first.Pos.Y, Down: true}))

	s := e.Snapshot()
	last := s.Vertices[len(s.Vertices)-1]
	assert.Equal(t, first.ID, last.ID, "held vertex drawn last")
	assert.True(t, last.Held)
	for i := 1; i < len(s.Vertices); i++ {
		assert.LessOrEqual(t, s.Vertices[i-1].Z, s.Vertices[i].Z)
	}
	// the graph's own order is untouched
	assert.Same(t, first, g.Vertices[0])
}

func TestSolvesPuzzleNeedingBacktracking(t *testing.T) {
	edges := [][2]model.VertexID{{0, 2}, {1, 3}, {2, 3}, {1, 4}, {2, 4}, {3, 4}, {0, 5}, {2, 5}, {3, 5}, {4, 5}}
	def := model.Definition{Name: "k4+2", Density: 1, Edges: edges, Neighbors: make([][]model.VertexID, 6)}
	for i := 0; i < 6; i++ {
		def.VertexIDs = append(def.VertexIDs, model.VertexID(i))
	}
	for _, ed := range edges {
		def.Neighbors[ed[0]] = append(def.Neighbors[ed[0]], ed[1])
		def.Neighbors[ed[1]] = append(def.Neighbors[ed[1]], ed[0])
	}

	e := newEngine(t, []model.Definition{def})
	solveCurrent(t, e)
	assert.Equal(t, sequence.Transitioning, e.Phase())
}

func TestLevelTracksSequencer(t *testing.T) {
	e := newEngine(t, builtin(t))
	assert.Equal(t, 1, e.Level())
	solveCurrent(t, e)
	for e.Phase() != sequence.Idle {
		idle(t, e, e.Phase())
	}
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, e.Snapshot().Level, e.Level())
}
