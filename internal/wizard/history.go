package wizard

import "sync"

// Marker tags a history entry. Entries outside the wizard have Wizard unset.
type Marker struct {
	Wizard bool `json:"wizard"`
	Step   int  `json:"step"`
}

// History is a linear navigation stack with a cursor, the server-side
// counterpart of a browser session history. Moving the cursor with Back or
// Forward emits the entry moved to; Push and Replace never emit.
type History struct {
	mu       sync.Mutex
	entries  []Marker
	pos      int
	listener func(Marker)
}

// NewHistory starts with the given entries, the cursor on the last one.
// With no entries it holds a single non-wizard entry.
func NewHistory(entries ...Marker) *History {
	if len(entries) == 0 {
		entries = []Marker{{}}
	}
	return &History{entries: append([]Marker(nil), entries...), pos: len(entries) - 1}
}

// Listen sets the single pop listener, replacing any previous one.
func (h *History) Listen(fn func(Marker)) {
	h.mu.Lock()
	h.listener = fn
	h.mu.Unlock()
}

// Replace overwrites the current entry.
func (h *History) Replace(m Marker) {
	h.mu.Lock()
	h.entries[h.pos] = m
	h.mu.Unlock()
}

// Push drops every entry ahead of the cursor and appends m.
func (h *History) Push(m Marker) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.pos+1], m)
	h.pos++
	h.mu.Unlock()
}

// Back moves one entry back. It reports false at the oldest entry.
func (h *History) Back() bool {
	return h.move(-1)
}

// Forward moves one entry ahead. It reports false at the newest entry.
func (h *History) Forward() bool {
	return h.move(1)
}

func (h *History) move(delta int) bool {
	h.mu.Lock()
	next := h.pos + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.pos = next
	m, fn := h.entries[next], h.listener
	h.mu.Unlock()

	if fn != nil {
		fn(m)
	}
	return true
}

func (h *History) Current() Marker {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.pos]
}

// Len is the number of entries, including those ahead of the cursor.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
