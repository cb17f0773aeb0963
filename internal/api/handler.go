package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/config"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/session"
	"github.com/youruser/jashn/internal/store"
	"github.com/youruser/jashn/internal/wizard"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

// Deps are the services the handlers work with.
type Deps struct {
	AI      *ai.Service
	Library *quotes.Library
	Loader  *imagepkg.Loader
	Stories *store.StoryRepository
	State   store.Store
	Poster  config.PosterConfig
}

type Handler struct {
	ai      *ai.Service
	lib     *quotes.Library
	loader  *imagepkg.Loader
	stories *store.StoryRepository
	state   store.Store
	wizards *wizard.Registry
	poster  config.PosterConfig
	now     func() time.Time

	// mu serializes read-modify-write cycles on the shared state keys.
	mu sync.Mutex
}

func NewHandler(d Deps) *Handler {
	h := &Handler{
		ai:      d.AI,
		lib:     d.Library,
		loader:  d.Loader,
		stories: d.Stories,
		state:   d.State,
		poster:  d.Poster,
		now:     time.Now,
	}
	if h.lib == nil {
		h.lib = quotes.NewLibrary()
	}
	if h.loader == nil {
		h.loader = &imagepkg.Loader{}
	}
	if h.stories == nil {
		h.stories = store.NewStoryRepository(0)
	}
	if h.state == nil {
		h.state = store.NewMemoryStore()
	}
	if h.ai == nil {
		h.ai = ai.NewServiceWithClient(nil, "")
	}
	h.wizards = wizard.NewRegistry(h.lib, storyPersister{h}, 0)
	h.stories.OnExpire(h.dropStoryState)
	return h
}

// storyState is the per-story view of the shared state store.
func (h *Handler) storyState(id string) store.Store {
	return store.Prefixed(h.state, "story/"+id+"/", session.SharedKeys...)
}

// dropStoryState runs when a story expires or is deleted. It clears the
// story's keys and its guestbook entries.
func (h *Handler) dropStoryState(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.storyState(id)
	var d celebration.Data
	if err := st.Get(store.KeyCelebration, &d); err == nil && d.StoryID != "" {
		if n, err := session.DropComments(st, d.StoryID); err != nil {
			logger.Warnf("drop comments of story %s: %v", id, err)
		} else if n > 0 {
			logger.Debugf("dropped %d comments of story %s", n, id)
		}
	}
	for _, key := range session.StoryKeys {
		if err := st.Delete(key); err != nil {
			logger.Warnf("drop state of story %s: %v", id, err)
		}
	}
}

// storyPersister turns a finished celebration into a shared story.
type storyPersister struct {
	h *Handler
}

func (p storyPersister) Persist(ctx context.Context, d *celebration.Data) (string, error) {
	return p.h.createStory(ctx, d)
}

func (h *Handler) createStory(ctx context.Context, d *celebration.Data) (string, error) {
	s, err := h.stories.Create(store.Story{
		Names:         firstNonEmpty(d.Names, d.DisplayName(), d.Title()),
		Category:      string(d.Category),
		Photos:        d.Photos,
		MusicURL:      d.Music,
		CustomMessage: d.CustomMessage,
	})
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	_, err = wizard.StorePersister{Store: h.storyState(s.ID)}.Persist(ctx, d)
	h.mu.Unlock()
	if err != nil {
		// the expiry hook takes h.mu, so delete outside the lock
		h.stories.Delete(s.ID)
		return "", err
	}
	logger.Infof("story %s created: category=%s", s.ID, s.Category)
	return s.ID, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.now().Unix(),
		"ai":        h.ai.HasCredentials(),
		"templates": h.lib.Len(),
		"stories":   h.stories.Len(),
	})
}

// QR returns a black-on-white PNG for the text query parameter.
func (h *Handler) QR(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, qrSize(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func qrSize(c *gin.Context) int {
	size := defaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = min(v, maxQRSize)
	}
	return size
}

type balloonResponse struct {
	Count       int                `json:"count"`
	Achievement *session.Milestone `json:"achievement"`
}

func (h *Handler) Balloons(c *gin.Context) {
	var n int
	if err := h.state.Get(store.KeyBalloonCount, &n); err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balloonResponse{Count: n, Achievement: session.Achievement(n)})
}

// PopBalloon bumps the global counter shared by every story.
func (h *Handler) PopBalloon(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var n int
	if err := h.state.Get(store.KeyBalloonCount, &n); err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	n++
	if err := h.state.Set(store.KeyBalloonCount, n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balloonResponse{Count: n, Achievement: session.Achievement(n)})
}
