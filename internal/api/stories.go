package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/celebration"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/session"
	"github.com/youruser/jashn/internal/store"
)

// CreateStory stores a finished celebration record as a shared story.
func (h *Handler) CreateStory(c *gin.Context) {
	d := celebration.New("")
	if err := c.ShouldBindJSON(d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.createStory(c.Request.Context(), d)
	if errors.Is(err, store.ErrInvalidStory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s, _ := h.stories.Get(id)
	c.JSON(http.StatusCreated, s)
}

// openStory loads the story and a session over its state. Callers hold h.mu.
func (h *Handler) openStory(c *gin.Context) (store.Story, *session.Session, bool) {
	id := c.Param("id")
	st, err := h.stories.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return store.Story{}, nil, false
	}
	sess, err := session.Open(h.storyState(id), h.now)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrNoCelebration) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return store.Story{}, nil, false
	}
	return st, sess, true
}

// GetStory returns the story with everything its playback screen shows.
func (h *Handler) GetStory(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, sess, ok := h.openStory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"story": st, "view": sess.View()})
}

func (h *Handler) ListComments(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, sess, ok := h.openStory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"storyId": sess.StoryID(), "comments": sess.Comments()})
}

type commentRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, sess, ok := h.openStory(c)
	if !ok {
		return
	}
	comment, err := sess.AddCommentFrom(req.Name, req.Message)
	if errors.Is(err, session.ErrEmptyComment) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type visitorRequest struct {
	Name string `json:"name"`
}

// SetVisitor remembers the guest's name for this story.
func (h *Handler) SetVisitor(c *gin.Context) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, sess, ok := h.openStory(c)
	if !ok {
		return
	}
	if err := sess.SaveVisitorName(req.Name); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrEmptyName) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess.View())
}

// PopStoryBalloon bumps the shared counter from a story's playback screen.
func (h *Handler) PopStoryBalloon(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, sess, ok := h.openStory(c)
	if !ok {
		return
	}
	n, err := sess.PopBalloon()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balloonResponse{Count: n, Achievement: session.Achievement(n)})
}

// ExportStory renders the story poster and sends it as a download.
func (h *Handler) ExportStory(c *gin.Context) {
	h.mu.Lock()
	_, sess, ok := h.openStory(c)
	h.mu.Unlock()
	if !ok {
		return
	}
	res, err := sess.Export(c.Request.Context(), session.ExportDeps{
		Palettes:  h.ai,
		Images:    h.loader,
		Quality:   h.jpegQuality(),
		MaxImages: h.poster.MaxImages,
	})
	if err != nil {
		logger.Errorf("export story %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendAttachment(c, res.JPEG, res.Filename)
}

// StoryQR encodes the story's share link in the story page colours.
func (h *Handler) StoryQR(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.stories.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return
	}
	b, err := imagepkg.GenerateStyledQRPNG(shareURL(c, id), qrSize(c), imagepkg.ShareQRForeground, imagepkg.ShareQRBackground)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func shareURL(c *gin.Context, id string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return fmt.Sprintf("%s://%s/celebrate/story/%s", scheme, c.Request.Host, id)
}
