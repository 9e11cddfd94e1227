package levels

import (
	"errors"

	"github.com/ingyamilmolinar/quadrants/core/model"
	game_log "github.com/ingyamilmolinar/quadrants/internal/log"
)

var ErrEmptySet = errors.New("levels: puzzle set is empty")

// Sequencer hands out puzzle definitions front to back, once each.
// Running out is permanent.
type Sequencer struct {
	defs   []model.Definition
	next   int // index of the definition Advance returns next
	logger *game_log.Logger
}

// New validates defs and returns a sequencer positioned before the first
// puzzle.
func New(defs []model.Definition, logger *game_log.Logger) (*Sequencer, error) {
	if len(defs) == 0 {
		return nil, ErrEmptySet
	}
	for _, d := range defs {
		if err := model.Validate(d); err != nil {
			return nil, err
		}
	}
	cp := make([]model.Definition, len(defs))
	copy(cp, defs)
	logger.Infof("[LEVELS] Loaded %d puzzles", len(cp))
	return &Sequencer{defs: cp, logger: logger}, nil
}

// Advance returns the next definition. Once every definition has been handed
// out it returns false, on this call and every later one.
func (s *Sequencer) Advance() (model.Definition, bool) {
	if s.next >= len(s.defs) {
		s.next = len(s.defs) + 1 // past the end; Current reports nothing
		s.logger.Debugf("[LEVELS] Advance: exhausted")
		return model.Definition{}, false
	}
	d := s.defs[s.next]
	s.next++
	s.logger.Infof("[LEVELS] Advance: puzzle %d/%d %q", s.next, len(s.defs), d.Name)
	return d, true
}

// Current returns the definition last handed out by Advance.
func (s *Sequencer) Current() (model.Definition, bool) {
	if s.next == 0 || s.next > len(s.defs) {
		return model.Definition{}, false
	}
	return s.defs[s.next-1], true
}

// Exhausted reports whether Advance has run past the last definition.
func (s *Sequencer) Exhausted() bool { return s.next > len(s.defs) }

// Index is the 1-based position of the current puzzle, 0 before the first.
func (s *Sequencer) Index() int {
	if s.next > len(s.defs) {
		return len(s.defs)
	}
	return s.next
}

func (s *Sequencer) Len() int { return len(s.defs) }

// Remaining counts definitions Advance has not returned yet.
func (s *Sequencer) Remaining() int {
	if s.next >= len(s.defs) {
		return 0
	}
	return len(s.defs) - s.next
}
