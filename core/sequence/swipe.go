package sequence

import "github.com/ingyamilmolinar/quadrants/internal/utils"

// Swipe is a set of vertical color bands falling through the canvas.
type Swipe struct {
	canvas  utils.Size
	bands   int
	speed   float64
	length  float64
	top     float64
	running bool
	covered bool // latched once per run
}

func NewSwipe(canvas utils.Size, t Tuning) *Swipe {
	return &Swipe{
		canvas: canvas,
		bands:  t.SwipeBands,
		speed:  t.SwipeSpeed,
		length: t.SwipeLength * canvas.H,
	}
}

// Start places the bands just above the canvas.
func (w *Swipe) Start() {
	w.top = -w.length
	w.running = true
	w.covered = false
}

// Tick moves the bands down. cover is true on exactly one tick per run: the
// first one where the leading edge reaches the bottom of the canvas. The
// bands are snapped so that frame shows the canvas fully covered. exited
// reports that the trailing edge has left the canvas.
func (w *Swipe) Tick() (cover, exited bool) {
	if !w.running {
		return false, false
	}
	w.top += w.speed
	if !w.covered && w.top+w.length >= w.canvas.H {
		w.top = w.canvas.H - w.length
		w.covered = true
		cover = true
	}
	if w.top >= w.canvas.H {
		w.running = false
		exited = true
	}
	return cover, exited
}

func (w *Swipe) Running() bool { return w.running }
func (w *Swipe) Covered() bool { return w.covered }

// Top is the y of the trailing (upper) edge of the bands.
func (w *Swipe) Top() float64 { return w.top }

// Bands returns the band rectangles for the current frame.
func (w *Swipe) Bands() []Rect {
	if !w.running {
		return nil
	}
	bw := w.canvas.W / float64(w.bands)
	out := make([]Rect, w.bands)
	for i := range out {
		out[i] = Rect{X: float64(i) * bw, Y: w.top, W: bw, H: w.length}
	}
	return out
}
