package engine

import (
	"fmt"

	"github.com/ingyamilmolinar/quadrants/core/levels"
	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/core/play"
	"github.com/ingyamilmolinar/quadrants/core/pointer"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

// Config is the geometry snapshot the engine is built with. Resizing the
// canvas mid-session is not supported.
type Config struct {
	Canvas       utils.Size
	VertexRadius float64
	LayoutRadius float64
	CornerSize   float64
	Tuning       sequence.Tuning
}

// Engine owns the active puzzle and the win sequence. Everything runs on the
// caller's goroutine, one Tick per frame.
type Engine struct {
	cfg    Config
	levels *levels.Sequencer
	ctrl   *play.Controller
	seq    *sequence.Orchestrator
	logger *game_log.Logger
	ticks  int64
}

// New loads the first puzzle of set.
func New(cfg Config, set *levels.Sequencer, logger *game_log.Logger) (*Engine, error) {
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e := &Engine{cfg: cfg, levels: set, logger: logger}
	e.seq = sequence.NewOrchestrator(e, cfg.Canvas, cfg.Tuning, logger)

	def, ok := set.Advance()
	if !ok {
		return nil, fmt.Errorf("engine: %w", levels.ErrEmptySet)
	}
	if err := e.load(def); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) load(def model.Definition) error {
	layout := model.Layout{
		Center:       utils.Pt(e.cfg.Canvas.W/2, e.cfg.Canvas.H/2),
		Radius:       e.cfg.LayoutRadius,
		VertexRadius: e.cfg.VertexRadius,
	}
	g, err := model.Build(def, layout)
	if err != nil {
		return fmt.Errorf("engine: load %q: %w", def.Name, err)
	}
	rs := model.BuildRegions(e.cfg.Canvas, e.cfg.CornerSize, def.Density)
	e.ctrl = play.NewController(g, rs, e.logger)
	e.logger.Infof("[ENGINE] Loaded puzzle %d/%d %q: %d vertices, %d edges, %d regions",
		e.levels.Index(), e.levels.Len(), def.Name, len(g.Vertices), len(g.Edges), len(rs))
	return nil
}

// Tick runs one frame: pointer handling while the puzzle is playable, then
// the win sequence.
func (e *Engine) Tick(p pointer.State) error {
	e.ticks++
	if e.seq.Interactive() {
		e.ctrl.Tick(p)
	}
	return e.seq.Tick()
}

func (e *Engine) Solved() bool { return e.ctrl.Solved() }
func (e *Engine) ResetSolved() { e.ctrl.ResetSolved() }

// Swap installs the next puzzle. Called by the win sequence while the canvas
// is covered.
func (e *Engine) Swap() (bool, error) {
	def, ok := e.levels.Advance()
	if !ok {
		return false, nil
	}
	return true, e.load(def)
}

func (e *Engine) Phase() sequence.Phase      { return e.seq.Phase() }
func (e *Engine) Controller() *play.Controller { return e.ctrl }
func (e *Engine) Ticks() int64                { return e.ticks }

// Level is the 1-based index of the puzzle on screen.
func (e *Engine) Level() int { return e.levels.Index() }
