package timer

import (
	"sort"
	"time"
)

// Handle identifies one scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs one-shot callbacks after a delay. Schedule and Cancel use
// the same handle type so cancelling always targets what was scheduled.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// Manual is a Scheduler driven by simulated time. Callbacks run on the
// goroutine that calls Advance.
type Manual struct {
	now     time.Duration
	nextID  Handle
	pending map[Handle]*entry
}

type entry struct {
	id  Handle
	due time.Duration
	fn  func()
}

// NewManual creates a manual scheduler at simulated time zero
func NewManual() *Manual {
	return &Manual{pending: make(map[Handle]*entry)}
}

// Schedule registers fn to run once simulated time reaches now+delay
func (m *Manual) Schedule(delay time.Duration, fn func()) Handle {
	m.nextID++
	m.pending[m.nextID] = &entry{id: m.nextID, due: m.now + delay, fn: fn}
	return m.nextID
}

// Cancel drops a pending callback. Unknown or fired handles are ignored.
func (m *Manual) Cancel(h Handle) {
	delete(m.pending, h)
}

// Pending returns the number of callbacks waiting to fire
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the simulated time elapsed since creation
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves simulated time forward by d, firing due callbacks in order
// of their due time. Callbacks scheduled while advancing fire too if they
// fall due within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.earliest(target)
		if next == nil {
			break
		}
		delete(m.pending, next.id)
		m.now = next.due
		next.fn()
	}
	m.now = target
}

func (m *Manual) earliest(limit time.Duration) *entry {
	due := make([]*entry, 0, len(m.pending))
	for _, e := range m.pending {
		if e.due <= limit {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	return due[0]
}
