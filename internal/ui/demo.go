package ui

import (
	"github.com/ingyamilmolinar/quadrants/core/engine"
	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

const dragSteps = 8

type step struct {
	x, y int
	down bool
}

// autoplay scripts pointer input that solves each puzzle with a
// four-coloring, one drag per vertex.
type autoplay struct {
	logger  *game_log.Logger
	steps   []step
	last    step
	planned int // level the current script was built for
}

func newAutoplay(logger *game_log.Logger) *autoplay {
	return &autoplay{logger: logger}
}

// next returns the scripted pointer for this frame. It fails when the
// current puzzle has no solution, since the script would never finish.
func (a *autoplay) next(eng *engine.Engine) (int, int, bool, error) {
	if len(a.steps) == 0 && eng.Phase() == sequence.Idle && eng.Level() != a.planned {
		a.planned = eng.Level()
		if err := a.plan(eng.Controller().Graph(), eng.Controller().Regions()); err != nil {
			return 0, 0, false, err
		}
	}
	if len(a.steps) == 0 {
		return a.last.x, a.last.y, false, nil
	}
	a.last, a.steps = a.steps[0], a.steps[1:]
	return a.last.x, a.last.y, a.last.down, nil
}

func (a *autoplay) plan(g *model.Graph, rs model.Regions) error {
	colors, err := model.FourColoring(g)
	if err != nil {
		a.logger.Errorf("[DEMO] %v", err)
		return err
	}
	targets := make(map[model.Color]utils.Point, len(model.CornerColors))
	for _, r := range rs {
		if _, seen := targets[r.Color]; !seen {
			targets[r.Color] = utils.Pt(r.TopLeft.X+r.Size/2, r.TopLeft.Y+r.Size/2)
		}
	}
	for _, v := range g.Vertices {
		a.drag(v.Pos, targets[colors[v.ID]])
	}
	a.logger.Debugf("[DEMO] planned %d steps for %q", len(a.steps), g.Name)
	return nil
}

func (a *autoplay) drag(from, to utils.Point) {
	at := func(p utils.Point, down bool) step { return step{int(p.X), int(p.Y), down} }
	a.steps = append(a.steps, at(from, false), at(from, true))
	for i := 1; i < dragSteps; i++ {
		t := float64(i) / dragSteps
		p := utils.Pt(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
		a.steps = append(a.steps, at(p, true))
	}
	a.steps = append(a.steps, at(to, true), at(to, false))
}
