package sequence

import "fmt"

// Tuning holds the per-tick animation constants of the win sequence.
type Tuning struct {
	ShutterRows   int     // alternating blocks in the cover
	SlideSpeed    float64 // px per tick the blocks slide in
	CaptionStart  float64 // caption scale when the cover closes
	CaptionMax    float64 // caption scale that ends the transition
	CaptionGrowth float64 // scale added per tick
	SwipeBands    int     // vertical color bands
	SwipeSpeed    float64 // px per tick the bands fall
	SwipeLength   float64 // band length as a multiple of canvas height, >= 1
}

func DefaultTuning() Tuning {
	return Tuning{
		ShutterRows:   8,
		SlideSpeed:    24,
		CaptionStart:  0.5,
		CaptionMax:    4,
		CaptionGrowth: 0.08,
		SwipeBands:    4,
		SwipeSpeed:    18,
		SwipeLength:   1.5,
	}
}

func (t Tuning) Validate() error {
	switch {
	case t.ShutterRows < 1:
		return fmt.Errorf("shutter rows must be >= 1, got %d", t.ShutterRows)
	case t.SlideSpeed <= 0:
		return fmt.Errorf("slide speed must be > 0, got %v", t.SlideSpeed)
	case t.CaptionGrowth <= 0:
		return fmt.Errorf("caption growth must be > 0, got %v", t.CaptionGrowth)
	case t.CaptionMax < t.CaptionStart:
		return fmt.Errorf("caption max %v below start %v", t.CaptionMax, t.CaptionStart)
	case t.SwipeBands < 1:
		return fmt.Errorf("swipe bands must be >= 1, got %d", t.SwipeBands)
	case t.SwipeSpeed <= 0:
		return fmt.Errorf("swipe speed must be > 0, got %v", t.SwipeSpeed)
	case t.SwipeLength < 1:
		return fmt.Errorf("swipe length must be >= 1, got %v", t.SwipeLength)
	}
	return nil
}
