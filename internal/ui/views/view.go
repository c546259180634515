package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Board            BoardState
	CurrentIndex     int
	ItemsPerViewport int
	Playing          bool
	Loop             bool
	StatusMessage    string
	Err              error
	HelpModel        help.Model
	KeyMap           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("listslider"))
	content.WriteString("\n")

	frame := r.styles.PlainFrame
	if state.Board.Styled {
		frame = r.styles.Frame
	}
	window := RenderBoard(r.styles, state.Board)
	content.WriteString(frame.Render(strings.Join(window, "\n")))
	content.WriteString("\n")

	count := len(state.Board.Items)
	if count > 0 {
		content.WriteString(RenderDots(r.styles, count, state.CurrentIndex, state.ItemsPerViewport))
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state, count))
	content.WriteString("\n")

	if state.KeyMap != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}
	return content.String()
}

func (r *Renderer) renderStatus(state ViewState, count int) string {
	parts := []string{}
	if count > 0 {
		last := min(count, state.CurrentIndex+state.ItemsPerViewport)
		if state.ItemsPerViewport > 1 {
			parts = append(parts, fmt.Sprintf("%d-%d of %d", state.CurrentIndex+1, last, count))
		} else {
			parts = append(parts, fmt.Sprintf("%d of %d", state.CurrentIndex+1, count))
		}
	} else {
		parts = append(parts, "no items")
	}

	if state.Playing {
		parts = append(parts, r.styles.Playing.Render("▶ playing"))
	} else {
		parts = append(parts, r.styles.Dim.Render("■ stopped"))
	}
	if state.Loop {
		parts = append(parts, "loop")
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}

	line := r.styles.Status.Render(strings.Join(parts, " · "))
	if state.Err != nil {
		width := lipgloss.Width(line)
		line += "\n" + r.styles.StatusError.MaxWidth(max(width, 60)).Render("error: "+state.Err.Error())
	}
	return line
}
