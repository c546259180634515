package slider

import (
	"time"

	"go.uber.org/zap"

	"listslider/internal/timer"
)

// autoplay owns the single pending advance of a slider
type autoplay struct {
	scheduler timer.Scheduler
	delay     time.Duration
	advance   func()
	handle    timer.Handle
}

func newAutoplay(scheduler timer.Scheduler, delay time.Duration, advance func()) *autoplay {
	return &autoplay{scheduler: scheduler, delay: delay, advance: advance}
}

// Start schedules one advance after the delay, replacing any pending one
func (a *autoplay) Start() {
	a.Stop()

	var h timer.Handle
	h = a.scheduler.Schedule(a.delay, func() {
		if a.handle != h {
			return
		}
		a.handle = 0
		a.advance()
	})
	a.handle = h
}

// Stop cancels the pending advance, if any
func (a *autoplay) Stop() {
	if a.handle == 0 {
		return
	}
	a.scheduler.Cancel(a.handle)
	a.handle = 0
}

// Active reports whether an advance is pending
func (a *autoplay) Active() bool {
	return a.handle != 0
}

// Start schedules an automatic advance after the slide delay
func (s *Slider) Start() error {
	if err := s.usable(); err != nil {
		return err
	}
	s.autoplay.Start()
	return nil
}

// Stop cancels the pending automatic advance
func (s *Slider) Stop() {
	s.autoplay.Stop()
}

// Reset cancels the pending advance and schedules a new one if auto_slide is set
func (s *Slider) Reset() error {
	if err := s.usable(); err != nil {
		return err
	}
	s.autoplay.Stop()
	if s.cfg.AutoSlide {
		s.autoplay.Start()
	}
	return nil
}

// Playing reports whether an automatic advance is pending
func (s *Slider) Playing() bool {
	return s.autoplay.Active()
}

func (s *Slider) autoAdvance() {
	if err := s.SlideNext(); err != nil {
		s.logger.Warn("automatic advance failed", zap.Error(err))
	}
}
