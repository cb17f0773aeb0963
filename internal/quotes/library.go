package quotes

import "sync"

// Library is the (occasion, audience, index, language) -> template table.
// It is safe for concurrent use.
type Library struct {
	mu        sync.RWMutex
	templates map[Key]string
}

// NewLibrary returns a library holding the built-in templates.
func NewLibrary() *Library {
	l := &Library{templates: make(map[Key]string, len(builtinTemplates))}
	for _, t := range builtinTemplates {
		l.templates[t.Key] = t.Text
	}
	return l
}

// canonical folds the audience for occasions that do not distinguish it.
func canonical(k Key) Key {
	if k.Audience != Self {
		k.Audience = Other
	}
	if k.Audience == Self && !k.Occasion.HasSelfTemplates() && !k.Occasion.SplitsAudience() {
		k.Audience = Other
	}
	return k
}

// Lookup returns the template for k. Self lookups on occasions without
// first-person templates resolve to the shared set.
func (l *Library) Lookup(k Key) (Template, bool) {
	k = canonical(k)
	l.mu.RLock()
	text, ok := l.templates[k]
	l.mu.RUnlock()
	if !ok {
		return Template{}, false
	}
	return Template{Key: k, Text: text}, true
}

// Merge adds or replaces templates and returns how many were applied.
func (l *Library) Merge(ts []Template) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, t := range ts {
		if t.Text == "" || t.Index < MinIndex || t.Index > MaxIndex {
			continue
		}
		l.templates[canonical(t.Key)] = t.Text
		n++
	}
	return n
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.templates)
}
