package ui

import "listslider/internal/slider"

// framePadding is the horizontal space taken by the viewport frame
const framePadding = 2

// terminalViewport implements slider.Viewport from tea.WindowSizeMsg
type terminalViewport struct {
	width     float64
	callbacks map[int]func()
	nextID    int
}

func newTerminalViewport(width float64) *terminalViewport {
	return &terminalViewport{width: width, callbacks: make(map[int]func())}
}

func (v *terminalViewport) Width() float64 {
	return v.width
}

func (v *terminalViewport) OnResize(callback func()) func() {
	v.nextID++
	id := v.nextID
	v.callbacks[id] = callback
	return func() { delete(v.callbacks, id) }
}

// SetTerminalWidth updates the width from the terminal size and notifies
// resize listeners when it changed.
func (v *terminalViewport) SetTerminalWidth(columns int) {
	width := float64(max(0, columns-framePadding))
	if width == v.width {
		return
	}
	v.width = width
	for id := 1; id <= v.nextID; id++ {
		if cb, ok := v.callbacks[id]; ok {
			cb()
		}
	}
}

// itemList is the container handed to the slider
type itemList struct {
	items []string
}

func (l *itemList) Board() slider.Board {
	return l
}

func (l *itemList) ItemCount() int {
	return len(l.items)
}
