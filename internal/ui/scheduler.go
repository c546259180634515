package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listslider/internal/timer"
)

// teaScheduler implements timer.Scheduler on top of the bubbletea loop:
// a scheduled callback becomes a tea.Tick whose message runs it, so every
// callback executes inside Update.
type teaScheduler struct {
	queue   *cmdQueue
	nextID  timer.Handle
	pending map[timer.Handle]func()
}

func newTeaScheduler(queue *cmdQueue) *teaScheduler {
	return &teaScheduler{
		queue:   queue,
		pending: make(map[timer.Handle]func()),
	}
}

func (s *teaScheduler) Schedule(delay time.Duration, fn func()) timer.Handle {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queue.push(tea.Tick(delay, func(time.Time) tea.Msg {
		return timerFiredMsg{handle: id}
	}))
	return id
}

// Cancel forgets the callback; its tick still arrives and is ignored
func (s *teaScheduler) Cancel(h timer.Handle) {
	delete(s.pending, h)
}

func (s *teaScheduler) fire(h timer.Handle) {
	fn, ok := s.pending[h]
	if !ok {
		return
	}
	delete(s.pending, h)
	fn()
}
