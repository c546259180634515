package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"listslider/internal/config"
	"listslider/internal/domain"
	"listslider/internal/eventbus"
	"listslider/internal/slider"
	"listslider/internal/ui/views"
)

// defaultColumns is used until the first WindowSizeMsg arrives
const defaultColumns = 80

// Model represents the UI state
type Model struct {
	slider *slider.Slider
	items  []string
	cfg    config.Config
	logger *zap.Logger

	// Collaborators the slider drives
	queue     *cmdQueue
	renderer  *boardRenderer
	viewport  *terminalViewport
	scheduler *teaScheduler

	width  int
	height int
	help   help.Model
	keys   keyMap
	view   *views.Renderer

	status  string
	lastErr error
}

// NewModel creates the UI model and initializes its slider
func NewModel(items []string, cfg config.Config, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	queue := &cmdQueue{}
	m := &Model{
		items:     items,
		cfg:       cfg,
		logger:    logger,
		queue:     queue,
		renderer:  newBoardRenderer(queue),
		viewport:  newTerminalViewport(float64(defaultColumns - framePadding)),
		scheduler: newTeaScheduler(queue),
		width:     defaultColumns,
		help:      help.New(),
		keys:      newKeyMap(),
		view:      views.NewRenderer(),
	}

	s, err := slider.New(&itemList{items: items}, cfg, m.renderer, m.viewport, m.scheduler,
		slider.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create slider: %w", err)
	}
	m.slider = s
	m.slider.Register(m.handleEvent)

	if err := m.slider.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize slider: %w", err)
	}
	return m, nil
}

// Slider returns the underlying slider
func (m *Model) Slider() *slider.Slider {
	return m.slider
}

// Init returns the commands queued while the slider was initialized
func (m *Model) Init() tea.Cmd {
	return m.queue.drain()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.SetTerminalWidth(msg.Width)

	case timerFiredMsg:
		m.scheduler.fire(msg.handle)

	case frameMsg:
		m.renderer.step(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.slider.Dispose()
			return m, tea.Quit
		}
		m.handleKey(msg)
	}

	return m, m.queue.drain()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	var err error

	switch {
	case key.Matches(msg, m.keys.Prev):
		err = m.slider.SlidePrev()
	case key.Matches(msg, m.keys.Next):
		err = m.slider.SlideNext()
	case key.Matches(msg, m.keys.First):
		err = m.slider.SlideTo(0)
	case key.Matches(msg, m.keys.Last):
		err = m.slider.SlideTo(m.slider.TerminalIndex())
	case key.Matches(msg, m.keys.GoTo):
		n, _ := strconv.Atoi(msg.String())
		err = m.slider.SlideTo(n - 1)
	case key.Matches(msg, m.keys.Start):
		err = m.slider.Start()
	case key.Matches(msg, m.keys.Stop):
		m.slider.Stop()
	case key.Matches(msg, m.keys.Reset):
		err = m.slider.Reset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return
	}

	m.lastErr = err
	if err != nil {
		m.logger.Info("key action failed", zap.String("key", msg.String()), zap.Error(err))
	}
}

// handleEvent runs synchronously inside Update, so it may touch the model
func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case domain.SlideStartEvent:
		m.status = fmt.Sprintf("sliding to %d", ev.Index+1)
	case domain.SlideEndEvent:
		m.status = ""
	}
}

// View renders the carousel
func (m *Model) View() string {
	st := m.slider.State()
	return m.view.Render(views.ViewState{
		Board: views.BoardState{
			Items:         m.items,
			SlideWidth:    st.SlideWidth,
			Offset:        m.renderer.offset,
			ViewportWidth: int(st.ViewportWidth),
			Styled:        m.renderer.styled,
		},
		CurrentIndex:     st.CurrentIndex,
		ItemsPerViewport: m.cfg.ItemsPerViewport,
		Playing:          m.slider.Playing(),
		Loop:             m.cfg.Loop,
		StatusMessage:    m.status,
		Err:              m.lastErr,
		HelpModel:        m.help,
		KeyMap:           m.keys,
	})
}
