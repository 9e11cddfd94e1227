// Package ui is the ebiten front end: it samples the pointer, ticks the
// engine and paints the engine snapshot.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/quadrants/core/engine"
	"github.com/ingyamilmolinar/quadrants/core/pointer"
	"github.com/ingyamilmolinar/quadrants/core/sequence"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

const (
	edgeWidth  = 3.0
	ringWidth  = 4.0
	hudMargin  = 6
	demoLinger = 120 // frames the end screen stays up before a demo run exits
)

type Game struct {
	eng    *engine.Engine
	ptr    *pointer.Tracker
	logger *game_log.Logger

	width, height int

	down    bool // raw button state last frame
	held    bool // tracker holds a press that started on the canvas
	leaving bool // release owed for a drag that left the canvas

	debug     bool
	demo      *autoplay
	endFrames int
	lastPhase sequence.Phase
	frame     int64
}

// New wraps eng in an ebiten.Game sized to the engine canvas.
func New(eng *engine.Engine, logger *game_log.Logger) *Game {
	c := eng.Snapshot().Canvas
	g := &Game{
		eng:       eng,
		ptr:       pointer.NewTracker(c),
		logger:    logger,
		width:     int(c.W),
		height:    int(c.H),
		lastPhase: eng.Phase(),
	}
	g.initJS()
	logger.Infof("[GAME] canvas %dx%d", g.width, g.height)
	return g
}

// EnableDemo makes the game play itself and stop shortly after the end
// screen.
func (g *Game) EnableDemo() {
	g.demo = newAutoplay(g.logger)
	g.logger.Infof("[DEMO] autoplay enabled")
}

func (g *Game) Update() error {
	if isKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	x, y, down := pointerInput()
	if g.demo != nil {
		var err error
		if x, y, down, err = g.demo.next(g.eng); err != nil {
			return err
		}
	}
	g.feed(x, y, down)

	if err := g.eng.Tick(g.ptr.Sample()); err != nil {
		g.logger.Errorf("[GAME] tick %d: %v", g.frame, err)
		return err
	}
	g.frame++

	if p := g.eng.Phase(); p != g.lastPhase {
		g.logger.Debugf("[GAME] frame %d: %s -> %s", g.frame, g.lastPhase, p)
		g.lastPhase = p
	}
	g.reportStateJS()

	if g.demo != nil && g.lastPhase == sequence.Ended {
		g.endFrames++
		if g.endFrames >= demoLinger {
			g.logger.Infof("[DEMO] finished after %d frames", g.frame)
			return ebiten.Termination
		}
	}
	return nil
}

// feed turns the raw button level into tracker events. Presses only count
// when they start on the canvas. A drag that leaves the canvas moves to the
// clamped edge on that frame and is released on the next, so the drop
// happens at the edge.
func (g *Game) feed(x, y int, down bool) {
	inside := inCanvas(x, y, g.width, g.height)
	fx, fy := float64(x), float64(y)

	if g.leaving {
		g.ptr.Leave()
		g.leaving = false
	}
	switch {
	case down && !g.down && inside:
		g.ptr.Press(fx, fy)
		g.held = true
	case down && g.held:
		g.ptr.Move(fx, fy)
		if !inside {
			g.held = false
			g.leaving = true
		}
	case !down && g.held:
		g.ptr.Move(fx, fy)
		g.ptr.Release()
		g.held = false
	}
	g.down = down
}

func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.eng.Snapshot()
	drawRect(screen, 0, 0, s.Canvas.W, s.Canvas.H, colBackground)

	for _, r := range s.Regions {
		drawRect(screen, r.TopLeft.X, r.TopLeft.Y, r.Size, r.Size, colorOf[r.Color])
	}
	for _, e := range s.Edges {
		drawLine(screen, e.A, e.B, edgeWidth, colEdge)
	}
	for _, v := range s.Vertices {
		drawDisc(screen, v.Pos, v.Radius, colVertexFill, ringColor(v.Color, v.Held), ringWidth)
	}
	g.drawHUD(screen, s)

	if s.EndScreen {
		g.drawEnd(screen, s)
	}
	for i, b := range s.Shutter {
		c := colShutterA
		if i%2 == 1 {
			c = colShutterB
		}
		drawRect(screen, b.X, b.Y, b.W, b.H, c)
	}
	if s.Caption > 0 && len(s.Shutter) > 0 {
		drawCaption(screen, "Solved!", s.Canvas.W/2, s.Canvas.H/2, s.Caption, colCaption)
	}
	for i, b := range s.Bands {
		drawRect(screen, b.X, b.Y, b.W, b.H, bandColor(i))
	}

	if g.debug {
		debugPrint(screen, fmt.Sprintf("TPS %.0f  frame %d  tick %d\nphase %s  level %d/%d\nvertices %d  edges %d",
			ebiten.ActualTPS(), g.frame, s.Tick, s.Phase, s.Level, s.Levels, len(s.Vertices), len(s.Edges)))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	label := fmt.Sprintf("%d/%d  %s", s.Level, s.Levels, s.Name)
	x := (int(s.Canvas.W) - textWidth(label)) / 2
	drawText(screen, label, x, hudMargin, colHUD)
}

func (g *Game) drawEnd(screen *ebiten.Image, s engine.Snapshot) {
	drawRect(screen, 0, 0, s.Canvas.W, s.Canvas.H, colEndBG)
	lines := []string{"All puzzles solved", fmt.Sprintf("%d of %d", s.Levels, s.Levels), "Thanks for playing"}
	center := utils.Pt(s.Canvas.W/2, s.Canvas.H/2)
	for i, l := range lines {
		y := int(center.Y) + (i-1)*24
		drawText(screen, l, int(center.X)-textWidth(l)/2, y, colEndText)
	}
}
