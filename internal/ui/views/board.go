package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CardHeight is the number of lines of a rendered item, borders included
const CardHeight = 5

// BoardState describes the board to draw
type BoardState struct {
	Items         []string
	SlideWidth    float64
	Offset        float64 // board offset, negative when moved left
	ViewportWidth int
	Styled        bool
}

// RenderBoard lays the items out end to end and returns the part of the
// board visible through the viewport.
func RenderBoard(styles *Styles, state BoardState) []string {
	if state.ViewportWidth <= 0 {
		return nil
	}

	lines := make([]string, CardHeight)
	if len(state.Items) > 0 && state.SlideWidth > 0 {
		cards := make([]string, 0, len(state.Items))
		for i, item := range state.Items {
			// Round the edges rather than the widths so the board width stays exact
			left := int(math.Round(float64(i) * state.SlideWidth))
			right := int(math.Round(float64(i+1) * state.SlideWidth))
			cards = append(cards, renderCard(styles, item, right-left, state.Styled))
		}
		lines = strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")
	}

	start := int(math.Round(-state.Offset))
	window := make([]string, CardHeight)
	for i := range window {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		window[i] = cut(line, start, state.ViewportWidth)
	}
	return window
}

func renderCard(styles *Styles, item string, width int, styled bool) string {
	if width <= 0 {
		return ""
	}

	style := styles.PlainCard
	inner := width
	if styled && width >= 2 {
		style = styles.Card
		inner = width - 2
	}
	label := truncate(item, inner-2)
	if inner <= 0 {
		label = ""
	}

	height := CardHeight
	if style.GetBorderTop() {
		height -= 2
	}
	return style.Width(inner).Height(height).MaxWidth(width).Render(label)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.Truncate(s, n, "…")
}

// cut returns width cells of line starting at cell start, padded with spaces.
// A wide character split by either edge is replaced by padding.
func cut(line string, start, width int) string {
	var b strings.Builder
	if start < 0 {
		lead := min(-start, width)
		b.WriteString(strings.Repeat(" ", lead))
		width -= lead
		start = 0
	}
	visible := ansi.Cut(line, start, start+width)
	if ansi.StringWidth(visible) > width {
		// a wide character straddles the left edge
		visible = " " + ansi.Cut(line, start+1, start+width)
	}
	b.WriteString(visible)
	if pad := width - ansi.StringWidth(visible); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// RenderDots renders one indicator per item, highlighting the visible ones
func RenderDots(styles *Styles, count, current, perViewport int) string {
	dots := make([]string, count)
	for i := range dots {
		if i >= current && i < current+perViewport {
			dots[i] = styles.ActiveDot.Render("●")
		} else {
			dots[i] = styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
