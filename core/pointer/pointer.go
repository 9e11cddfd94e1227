// Package pointer buffers raw pointer events into the plain state the puzzle
// logic reads once per tick. Events between ticks collapse to the latest
// value.
package pointer

import "github.com/ingyamilmolinar/quadrants/internal/utils"

// State is what the puzzle controller sees on a tick.
type State struct {
	X, Y     float64
	Down     bool
	Pressed  bool // went down since the previous Sample
	Released bool // went up since the previous Sample
}

func (s State) Pos() utils.Point { return utils.Pt(s.X, s.Y) }

// Tracker owns the buffered pointer state for one canvas.
type Tracker struct {
	bounds   utils.Size
	x, y     float64
	down     bool
	sampled  bool // value of down at the last Sample
	pressed  bool
	released bool
}

func NewTracker(bounds utils.Size) *Tracker {
	return &Tracker{bounds: bounds}
}

func (t *Tracker) clamp(x, y float64) {
	t.x = utils.Clamp(x, 0, t.bounds.W)
	t.y = utils.Clamp(y, 0, t.bounds.H)
}

// Press records a button press at (x, y).
func (t *Tracker) Press(x, y float64) {
	t.clamp(x, y)
	if !t.down {
		t.down = true
		t.pressed = true
	}
}

// Move updates the position. Moves with the button up are ignored, the last
// pressed position stays current.
func (t *Tracker) Move(x, y float64) {
	if t.down {
		t.clamp(x, y)
	}
}

// Release records the button going up.
func (t *Tracker) Release() {
	if t.down {
		t.down = false
		t.released = true
	}
}

// Leave handles the pointer leaving the canvas, which counts as a release.
func (t *Tracker) Leave() { t.Release() }

// Sample returns the buffered state and resets the edge flags.
func (t *Tracker) Sample() State {
	s := State{
		X:        t.x,
		Y:        t.y,
		Down:     t.down,
		Pressed:  t.pressed || (t.down && !t.sampled),
		Released: t.released || (!t.down && t.sampled),
	}
	t.pressed, t.released = false, false
	t.sampled = t.down
	return s
}
