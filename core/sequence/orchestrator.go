package sequence

import (
	"fmt"

	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
	"github.com/ingyamilmolinar/quadrants/internal/utils"
)

type Phase int

const (
	Idle Phase = iota
	Transitioning
	Swiping
	Ended
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	case Swiping:
		return "swiping"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Host is the side of the game the win sequence drives.
type Host interface {
	Solved() bool
	ResetSolved()
	// Swap replaces the puzzle under the cover with the next one. It reports
	// false when there is no next puzzle.
	Swap() (bool, error)
}

// Orchestrator runs solve -> transition -> swipe -> idle/ended.
type Orchestrator struct {
	host    Host
	shutter *Shutter
	swipe   *Swipe
	logger  *game_log.Logger

	phase    Phase
	endArmed bool
	rounds   int // completed win sequences
}

func NewOrchestrator(host Host, canvas utils.Size, t Tuning, logger *game_log.Logger) *Orchestrator {
	return &Orchestrator{
		host:    host,
		shutter: NewShutter(canvas, t),
		swipe:   NewSwipe(canvas, t),
		logger:  logger,
	}
}

func (o *Orchestrator) Phase() Phase       { return o.phase }
func (o *Orchestrator) Shutter() *Shutter  { return o.shutter }
func (o *Orchestrator) Swipe() *Swipe      { return o.swipe }
func (o *Orchestrator) EndArmed() bool     { return o.endArmed }
func (o *Orchestrator) Rounds() int        { return o.rounds }
func (o *Orchestrator) Interactive() bool  { return o.phase == Idle }

func (o *Orchestrator) enter(p Phase) {
	o.logger.Infof("[SEQ] Phase %s -> %s", o.phase, p)
	o.phase = p
}

// Tick advances the sequence by one frame. An error comes only from the host
// failing to build the next puzzle.
func (o *Orchestrator) Tick() error {
	switch o.phase {
	case Idle:
		if o.host.Solved() {
			o.host.ResetSolved()
			o.enter(Transitioning)
		}
	case Transitioning:
		if o.shutter.Tick() {
			o.swipe.Start()
			o.enter(Swiping)
		}
	case Swiping:
		cover, exited := o.swipe.Tick()
		if cover {
			if err := o.swapUnderCover(); err != nil {
				return err
			}
		}
		if exited {
			o.rounds++
			if o.endArmed {
				o.enter(Ended)
			} else {
				o.enter(Idle)
			}
		}
	case Ended:
	}
	return nil
}

func (o *Orchestrator) swapUnderCover() error {
	more, err := o.host.Swap()
	if err != nil {
		return fmt.Errorf("swap puzzle: %w", err)
	}
	o.shutter.Reset()
	if !more {
		o.endArmed = true
		o.logger.Infof("[SEQ] Puzzle set exhausted, end screen armed")
		return nil
	}
	o.logger.Debugf("[SEQ] Next puzzle swapped in under cover")
	return nil
}
