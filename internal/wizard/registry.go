package wizard

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/quotes"
)

// DefaultSessionTTL bounds how long an abandoned wizard is kept.
const DefaultSessionTTL = 2 * time.Hour

// Registry holds in-progress wizards by id.
type Registry struct {
	c         *cache.Cache
	lib       *quotes.Library
	persister Persister
}

func NewRegistry(lib *quotes.Library, p Persister, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{c: cache.New(ttl, ttl/4), lib: lib, persister: p}
}

// Start opens a wizard for the category. Its history holds the entry the
// client came from, then the wizard's own page.
func (r *Registry) Start(category quotes.Occasion) (string, *Wizard) {
	h := NewHistory(Marker{}, Marker{})
	w := New(celebration.New(category), h, r.lib, quotes.NewTermPicker(nil), r.persister)
	id := uuid.NewString()
	r.c.SetDefault(id, w)
	return id, w
}

func (r *Registry) Get(id string) (*Wizard, bool) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Wizard), true
}

func (r *Registry) Remove(id string) {
	r.c.Delete(id)
}
