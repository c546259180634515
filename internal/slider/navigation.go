package slider

import "go.uber.org/zap"

// terminalIndex is the last index at which the viewport is still full
func terminalIndex(itemCount, itemsPerViewport int) int {
	return max(0, itemCount-itemsPerViewport)
}

// nextIndex returns the target of a forward step and whether a transition
// should run. Without loop, a slider resting at the terminal index stays put.
func nextIndex(current, itemCount, itemsPerViewport int, loop bool) (int, bool) {
	candidate := current + 1
	if candidate > itemCount-itemsPerViewport {
		if loop {
			return 0, true
		}
		target := terminalIndex(itemCount, itemsPerViewport)
		return target, target != current
	}
	return candidate, true
}

// prevIndex is the backward counterpart of nextIndex
func prevIndex(current, itemCount, itemsPerViewport int, loop bool) (int, bool) {
	candidate := current - 1
	if candidate < 0 {
		if loop {
			return terminalIndex(itemCount, itemsPerViewport), true
		}
		return 0, current != 0
	}
	return candidate, true
}

// SlideTo moves to index. Out of range indexes fail with InvalidIndexError
// and leave the slider untouched.
func (s *Slider) SlideTo(index int) error {
	if err := s.usable(); err != nil {
		return err
	}
	return s.transitionTo(index)
}

// SlideNext moves one item forward, wrapping to the start when looping
func (s *Slider) SlideNext() error {
	if err := s.usable(); err != nil {
		return err
	}
	target, move := nextIndex(s.state.CurrentIndex, s.state.ItemCount, s.cfg.ItemsPerViewport, s.cfg.Loop)
	if !move {
		s.debug("already at last position", zap.Int("index", s.state.CurrentIndex))
		return nil
	}
	return s.transitionTo(target)
}

// SlidePrev moves one item backward, wrapping to the end when looping
func (s *Slider) SlidePrev() error {
	if err := s.usable(); err != nil {
		return err
	}
	target, move := prevIndex(s.state.CurrentIndex, s.state.ItemCount, s.cfg.ItemsPerViewport, s.cfg.Loop)
	if !move {
		s.debug("already at first position", zap.Int("index", s.state.CurrentIndex))
		return nil
	}
	return s.transitionTo(target)
}
