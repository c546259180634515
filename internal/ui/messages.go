package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"listslider/internal/timer"
)

// timerFiredMsg is delivered when a scheduled callback falls due
type timerFiredMsg struct {
	handle timer.Handle
}

// frameMsg is sent on a timer while the board is animating
type frameMsg struct {
	generation uint64
}

// cmdQueue collects commands produced by collaborators while a message is
// being handled. Update drains it into its return value.
type cmdQueue struct {
	cmds []tea.Cmd
}

func (q *cmdQueue) push(cmd tea.Cmd) {
	q.cmds = append(q.cmds, cmd)
}

func (q *cmdQueue) drain() tea.Cmd {
	if len(q.cmds) == 0 {
		return nil
	}
	cmds := q.cmds
	q.cmds = nil
	return tea.Batch(cmds...)
}
