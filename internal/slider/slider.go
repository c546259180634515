package slider

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"listslider/internal/config"
	"listslider/internal/domain"
	"listslider/internal/eventbus"
	"listslider/internal/geometry"
	"listslider/internal/timer"
)

// Container holds the slide board
type Container interface {
	// Board returns the list element holding the items, or nil if there is none
	Board() Board
}

// Board is the strip of items being paged through
type Board interface {
	ItemCount() int
}

// Renderer moves the board on screen
type Renderer interface {
	ApplyGeometry(slideWidth, boardWidth float64)
	// AnimateOffset moves the board to offsetPx over duration and calls
	// onComplete exactly once when the move finishes naturally.
	AnimateOffset(offsetPx float64, duration time.Duration, onComplete func())
	// Abort stops the in-flight move, if any, without calling its onComplete.
	Abort()
}

// Styler is implemented by renderers that can inject the base layout styles
type Styler interface {
	ApplyBaseStyles()
}

// OffsetSetter is implemented by renderers that can place the board without animating
type OffsetSetter interface {
	SetOffset(offsetPx float64)
}

// Viewport is the visible window onto the board
type Viewport interface {
	Width() float64
	// OnResize registers a callback fired on every resize and returns a function
	// that unregisters it.
	OnResize(callback func()) func()
}

// State is a snapshot of the slider state
type State struct {
	CurrentIndex  int
	ItemCount     int
	ViewportWidth float64
	SlideWidth    float64
	BoardWidth    float64
	Initialized   bool
	Transitioning bool
}

// Option configures a Slider
type Option func(*Slider)

// WithLogger sets the logger. Diagnostics are only written when the debug
// option is set; failures are always logged.
func WithLogger(l *zap.Logger) Option {
	return func(s *Slider) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEventBus makes the slider publish to an existing bus
func WithEventBus(b eventbus.EventBus) Option {
	return func(s *Slider) {
		if b != nil {
			s.bus = b
		}
	}
}

// Slider is a carousel controller presenting ItemsPerViewport items at a time
type Slider struct {
	container Container
	renderer  Renderer
	viewport  Viewport
	cfg       config.Config
	bus       eventbus.EventBus
	logger    *zap.Logger
	autoplay  *autoplay

	state      State
	generation uint64 // identifies the current transition
	unResize   func()
	subs       []eventbus.Subscription
	disposed   bool
}

// New creates a slider. The configuration is validated here; the container
// is only inspected by Init.
func New(container Container, cfg config.Config, renderer Renderer, viewport Viewport, scheduler timer.Scheduler, opts ...Option) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil || viewport == nil || scheduler == nil {
		return nil, &domain.InitializationError{Err: errors.New("renderer, viewport and scheduler are required")}
	}

	s := &Slider{
		container: container,
		renderer:  renderer,
		viewport:  viewport,
		cfg:       cfg,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = eventbus.New(eventbus.WithLogger(s.logger))
	}
	s.autoplay = newAutoplay(scheduler, cfg.SlideDelay(), s.autoAdvance)
	return s, nil
}

// Init inspects the container, sizes the board and moves to the first item.
// It can only succeed once.
func (s *Slider) Init() error {
	if s.disposed {
		return &domain.InitializationError{Err: domain.ErrDisposed}
	}
	if s.state.Initialized {
		return &domain.InitializationError{Err: domain.ErrAlreadyInitialized}
	}
	if s.container == nil {
		return &domain.InitializationError{Err: domain.ErrMissingContainer}
	}
	board := s.container.Board()
	if board == nil {
		return &domain.InitializationError{Err: domain.ErrMissingBoard}
	}

	count := board.ItemCount()
	if count < 0 {
		count = 0
	}
	g, err := geometry.Recompute(s.viewport.Width(), count, s.cfg.ItemsPerViewport)
	if err != nil {
		return err
	}

	if !s.cfg.NoStyling {
		if styler, ok := s.renderer.(Styler); ok {
			styler.ApplyBaseStyles()
		}
	}

	s.state = State{
		ItemCount:   count,
		Initialized: true,
	}
	s.applyGeometry(g)
	s.unResize = s.viewport.OnResize(s.handleResize)

	if count == 0 {
		s.logger.Warn("slider initialized with an empty board")
		return nil
	}
	return s.transitionTo(0)
}

// CurrentIndex returns the index of the leftmost visible item
func (s *Slider) CurrentIndex() int {
	return s.state.CurrentIndex
}

// MaxIndex returns the index of the last item
func (s *Slider) MaxIndex() int {
	return s.state.ItemCount - 1
}

// TerminalIndex returns the last index that still fills the viewport
func (s *Slider) TerminalIndex() int {
	return terminalIndex(s.state.ItemCount, s.cfg.ItemsPerViewport)
}

// State returns a snapshot of the current state
func (s *Slider) State() State {
	return s.state
}

// Config returns the configuration the slider was built with
func (s *Slider) Config() config.Config {
	return s.cfg
}

// disposedSubscription is handed out once the slider is disposed
type disposedSubscription struct{}

func (disposedSubscription) Dispose() {}

// Register adds an observer for every slider event. After Dispose the
// handler is not attached and the returned subscription is inert.
func (s *Slider) Register(handler eventbus.EventHandler) eventbus.Subscription {
	if s.disposed {
		return disposedSubscription{}
	}
	sub := s.bus.Register(handler)
	s.subs = append(s.subs, sub)
	return sub
}

// Subscribe adds an observer for one event type
func (s *Slider) Subscribe(eventType domain.EventType, handler eventbus.EventHandler) eventbus.Subscription {
	if s.disposed {
		return disposedSubscription{}
	}
	sub := s.bus.Subscribe(eventType, handler)
	s.subs = append(s.subs, sub)
	return sub
}

// Dispose stops autoplay, aborts any running move, stops listening for
// resizes and removes the observers registered through this slider.
func (s *Slider) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	s.autoplay.Stop()
	if s.state.Transitioning {
		s.renderer.Abort()
		s.state.Transitioning = false
	}
	s.generation++
	if s.unResize != nil {
		s.unResize()
		s.unResize = nil
	}
	for _, sub := range s.subs {
		sub.Dispose()
	}
	s.subs = nil
}

func (s *Slider) usable() error {
	if s.disposed {
		return &domain.InitializationError{Err: domain.ErrDisposed}
	}
	if !s.state.Initialized {
		return &domain.InitializationError{Err: domain.ErrNotInitialized}
	}
	return nil
}

func (s *Slider) handleResize() {
	if s.disposed {
		return
	}
	g, err := geometry.Recompute(s.viewport.Width(), s.state.ItemCount, s.cfg.ItemsPerViewport)
	if err != nil {
		s.logger.Error("failed to recompute geometry", zap.Error(err))
		return
	}
	s.applyGeometry(g)

	if !s.state.Transitioning {
		if setter, ok := s.renderer.(OffsetSetter); ok {
			setter.SetOffset(g.Offset(s.state.CurrentIndex))
		}
	}
}

func (s *Slider) applyGeometry(g geometry.Geometry) {
	s.state.ViewportWidth = g.ViewportWidth
	s.state.SlideWidth = g.SlideWidth
	s.state.BoardWidth = g.BoardWidth
	s.renderer.ApplyGeometry(g.SlideWidth, g.BoardWidth)

	s.debug("geometry updated",
		zap.Float64("viewport_width", g.ViewportWidth),
		zap.Float64("slide_width", g.SlideWidth),
		zap.Float64("board_width", g.BoardWidth))
}

func (s *Slider) currentGeometry() geometry.Geometry {
	return geometry.Geometry{
		ViewportWidth: s.state.ViewportWidth,
		SlideWidth:    s.state.SlideWidth,
		BoardWidth:    s.state.BoardWidth,
	}
}

func (s *Slider) debug(msg string, fields ...zap.Field) {
	if s.cfg.Debug {
		s.logger.Debug(msg, fields...)
	}
}
