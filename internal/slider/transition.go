package slider

import (
	"go.uber.org/zap"

	"listslider/internal/domain"
)

// transitionTo runs one slide change: validate, supersede the running move,
// re-arm autoplay, announce the start, then hand the move to the renderer.
// A superseded transition never announces its end.
func (s *Slider) transitionTo(index int) error {
	if index < 0 || index >= s.state.ItemCount {
		err := &domain.InvalidIndexError{Index: index, ItemCount: s.state.ItemCount}
		s.logger.Warn("rejected slide", zap.Error(err))
		return err
	}

	s.autoplay.Stop()
	if s.state.Transitioning {
		s.renderer.Abort()
	}

	s.generation++
	gen := s.generation
	s.state.CurrentIndex = index
	s.state.Transitioning = true

	// The next advance is not gated on this move finishing
	if s.cfg.AutoSlide {
		s.autoplay.Start()
	}

	s.debug("slide start", zap.Int("index", index))
	s.bus.Publish(domain.SlideStartEvent{Index: index})

	// An observer started another transition while being notified
	if gen != s.generation {
		return nil
	}

	offset := s.currentGeometry().Offset(index)
	s.renderer.AnimateOffset(offset, s.cfg.SlideSpeed(), func() {
		s.finishTransition(gen, index, offset)
	})
	return nil
}

// finishTransition ends the move to index. target is the offset the move
// was started with; a resize while it ran leaves the board there, so it is
// placed at the offset of the current geometry.
func (s *Slider) finishTransition(gen uint64, index int, target float64) {
	if gen != s.generation || s.disposed {
		s.debug("stale slide end suppressed", zap.Int("index", index))
		return
	}
	s.state.Transitioning = false

	if offset := s.currentGeometry().Offset(index); offset != target {
		if setter, ok := s.renderer.(OffsetSetter); ok {
			s.debug("board realigned after resize", zap.Float64("offset", offset))
			setter.SetOffset(offset)
		}
	}

	s.debug("slide end", zap.Int("index", index))
	s.bus.Publish(domain.SlideEndEvent{Index: index})
}
