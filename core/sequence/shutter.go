package sequence

import (
	"math"

	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct{ X, Y, W, H float64 }

// Shutter is the cover that closes over the solved puzzle: even rows slide
// in from the left, odd rows from the right, then a caption grows in the
// middle.
type Shutter struct {
	canvas  utils.Size
	rows    int
	speed   float64
	start   float64
	max     float64
	growth  float64
	offset  float64 // how far each block has travelled, 0..canvas.W
	caption float64 // 0 until the cover is closed
}

func NewShutter(canvas utils.Size, t Tuning) *Shutter {
	return &Shutter{
		canvas: canvas,
		rows:   t.ShutterRows,
		speed:  t.SlideSpeed,
		start:  t.CaptionStart,
		max:    t.CaptionMax,
		growth: t.CaptionGrowth,
	}
}

// Tick advances the animation and reports whether the caption is at full
// size.
func (s *Shutter) Tick() bool {
	if !s.Closed() {
		s.offset = math.Min(s.offset+s.speed, s.canvas.W)
		if s.Closed() {
			s.caption = s.start
		}
		return false
	}
	s.caption = math.Min(s.caption+s.growth, s.max)
	return s.Done()
}

// Closed reports whether the blocks fully overlap the canvas.
func (s *Shutter) Closed() bool { return s.offset >= s.canvas.W }

func (s *Shutter) Done() bool { return s.Closed() && s.caption >= s.max }

// Progress is the slide-in fraction, 0..1.
func (s *Shutter) Progress() float64 { return s.offset / s.canvas.W }

// Caption is the current caption scale, 0 while the blocks are sliding.
func (s *Shutter) Caption() float64 { return s.caption }

// Blocks returns the cover rectangles for the current frame.
func (s *Shutter) Blocks() []Rect {
	if s.offset <= 0 {
		return nil
	}
	h := s.canvas.H / float64(s.rows)
	out := make([]Rect, s.rows)
	for i := range out {
		x := s.offset - s.canvas.W // from the left
		if i%2 == 1 {
			x = s.canvas.W - s.offset // from the right
		}
		out[i] = Rect{X: x, Y: float64(i) * h, W: s.canvas.W, H: h}
	}
	return out
}

// Reset opens the shutter for the next puzzle.
func (s *Shutter) Reset() {
	s.offset = 0
	s.caption = 0
}
