package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DefaultStoryTTL is how long a shared story stays readable.
const DefaultStoryTTL = 24 * time.Hour

// ErrInvalidStory is returned by Create when a required field is missing.
var ErrInvalidStory = errors.New("story needs names and category")

// Story is a shared celebration. It expires TTL after CreatedAt.
type Story struct {
	ID            string    `json:"id"`
	Names         string    `json:"names"`
	Category      string    `json:"category"`
	Photos        []string  `json:"photos"`
	MusicURL      string    `json:"musicUrl,omitempty"`
	CustomMessage string    `json:"customMessage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// StoryRepository holds stories in memory until they expire.
type StoryRepository struct {
	c   *cache.Cache
	ttl time.Duration
	now func() time.Time
}

// NewStoryRepository uses DefaultStoryTTL when ttl is not positive.
func NewStoryRepository(ttl time.Duration) *StoryRepository {
	if ttl <= 0 {
		ttl = DefaultStoryTTL
	}
	return &StoryRepository{
		c:   cache.New(ttl, time.Minute*10),
		ttl: ttl,
		now: time.Now,
	}
}

// OnExpire registers fn to run with the id of every story that expires or
// is deleted.
func (r *StoryRepository) OnExpire(fn func(id string)) {
	r.c.OnEvicted(func(id string, _ interface{}) { fn(id) })
}

// Create stores s under a new id and stamps its creation time.
func (r *StoryRepository) Create(s Story) (Story, error) {
	if strings.TrimSpace(s.Names) == "" || strings.TrimSpace(s.Category) == "" {
		return Story{}, ErrInvalidStory
	}
	if s.Photos == nil {
		s.Photos = []string{}
	}
	s.ID = uuid.NewString()
	s.CreatedAt = r.now().UTC()
	s.ExpiresAt = s.CreatedAt.Add(r.ttl)
	r.c.Set(s.ID, s, r.ttl)
	return s, nil
}

func (r *StoryRepository) Get(id string) (Story, error) {
	v, ok := r.c.Get(id)
	if !ok {
		return Story{}, ErrNotFound
	}
	return v.(Story), nil
}

func (r *StoryRepository) Delete(id string) {
	r.c.Delete(id)
}

func (r *StoryRepository) Len() int {
	return r.c.ItemCount()
}
