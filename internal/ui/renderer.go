package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is roughly 60 frames per second
const frameInterval = 16 * time.Millisecond

// boardRenderer implements slider.Renderer for the terminal. It keeps the
// board offset in columns and tweens it with tea ticks.
type boardRenderer struct {
	queue *cmdQueue
	now   func() time.Time

	slideWidth float64
	boardWidth float64
	offset     float64
	styled     bool

	anim       *animation
	generation uint64
}

type animation struct {
	from, to   float64
	start      time.Time
	duration   time.Duration
	onComplete func()
	generation uint64
}

func newBoardRenderer(queue *cmdQueue) *boardRenderer {
	return &boardRenderer{queue: queue, now: time.Now}
}

func (r *boardRenderer) ApplyGeometry(slideWidth, boardWidth float64) {
	r.slideWidth = slideWidth
	r.boardWidth = boardWidth
}

// ApplyBaseStyles switches on card borders and the viewport frame
func (r *boardRenderer) ApplyBaseStyles() {
	r.styled = true
}

func (r *boardRenderer) SetOffset(offsetPx float64) {
	if r.anim == nil {
		r.offset = offsetPx
	}
}

func (r *boardRenderer) AnimateOffset(offsetPx float64, duration time.Duration, onComplete func()) {
	r.generation++
	if duration <= 0 {
		r.anim = nil
		r.offset = offsetPx
		onComplete()
		return
	}

	r.anim = &animation{
		from:       r.offset,
		to:         offsetPx,
		start:      r.now(),
		duration:   duration,
		onComplete: onComplete,
		generation: r.generation,
	}
	r.queue.push(r.nextFrame(r.generation))
}

func (r *boardRenderer) Abort() {
	r.anim = nil
	r.generation++
}

// Animating reports whether a move is in flight
func (r *boardRenderer) Animating() bool {
	return r.anim != nil
}

func (r *boardRenderer) nextFrame(generation uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{generation: generation}
	})
}

// step advances the running animation by one frame
func (r *boardRenderer) step(msg frameMsg) {
	a := r.anim
	if a == nil || msg.generation != a.generation {
		return
	}

	progress := float64(r.now().Sub(a.start)) / float64(a.duration)
	if progress >= 1 {
		r.offset = a.to
		r.anim = nil
		a.onComplete()
		return
	}

	r.offset = a.from + (a.to-a.from)*swing(progress)
	r.queue.push(r.nextFrame(a.generation))
}

// swing eases in and out along half a cosine period
func swing(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}
