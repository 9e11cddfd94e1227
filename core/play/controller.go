package play

import (
	"github.com/ingyamilmolinar/quadrants/core/model"
	"github.com/ingyamilmolinar/quadrants/core/pointer"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
)

// Controller turns pointer state into pick-up, drag and drop on one graph.
type Controller struct {
	graph   *model.Graph
	regions model.Regions
	logger  *game_log.Logger

	active model.VertexID // InvalidVertexID while nothing is held
	solved bool
	drops  int
}

func NewController(g *model.Graph, rs model.Regions, logger *game_log.Logger) *Controller {
	return &Controller{
		graph:   g,
		regions: rs,
		logger:  logger,
		active:  model.InvalidVertexID,
	}
}

func (c *Controller) Graph() *model.Graph    { return c.graph }
func (c *Controller) Regions() model.Regions { return c.regions }

// Active returns the held vertex id and whether one is held.
func (c *Controller) Active() (model.VertexID, bool) {
	return c.active, c.active != model.InvalidVertexID
}

func (c *Controller) Solved() bool { return c.solved }

// ResetSolved clears the flag once the win sequence has picked it up.
func (c *Controller) ResetSolved() { c.solved = false }

// Drops counts completed drops on this graph.
func (c *Controller) Drops() int { return c.drops }

// Tick applies one frame of pointer state.
func (c *Controller) Tick(p pointer.State) {
	if p.Down {
		c.drag(p)
		return
	}
	if v := c.graph.VertexByID(c.active); v != nil {
		c.drop(v)
	}
	c.active = model.InvalidVertexID
}

func (c *Controller) drag(p pointer.State) {
	v := c.graph.VertexByID(c.active)
	if v == nil {
		v = c.graph.Topmost(p.Pos())
		if v == nil {
			return
		}
		c.active = v.ID
		v.Z = c.graph.MaxZ() + 1
		c.logger.Debugf("[PLAY] Picked up vertex %d at (%.0f,%.0f) z=%d", v.ID, p.X, p.Y, v.Z)
	} else if other := c.graph.MaxZOthers(v); other >= v.Z {
		v.Z = other + 1
	}
	v.Pos = p.Pos()
}

func (c *Controller) drop(v *model.Vertex) {
	v.Color = c.regions.ColorAt(v.Pos)
	c.drops++
	c.solved = model.CheckColoring(c.graph.Vertices)
	c.logger.Debugf("[PLAY] Dropped vertex %d at (%.0f,%.0f) color=%s solved=%t", v.ID, v.Pos.X, v.Pos.Y, v.Color, c.solved)
	if c.solved {
		c.logger.Infof("[PLAY] Puzzle %q solved after %d drops", c.graph.Name, c.drops)
	}
}
