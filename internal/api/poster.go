package api

import (
	"image"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/ai"
	imagepkg "github.com/youruser/jashn/internal/image"
)

type posterRequest struct {
	Layout       string            `json:"layout" binding:"required"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	RelationName string            `json:"relationName"`
	TermLine     string            `json:"termLine"`
	Images       []string          `json:"images"`
	Palette      map[string]string `json:"palette"`
	// AutoStyle asks the styling model for a palette when none is given.
	AutoStyle bool   `json:"autoStyle"`
	Filename  string `json:"filename"`
}

// Poster composes a poster from explicit content and returns the JPEG.
func (h *Handler) Poster(c *gin.Context) {
	var req posterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	layout, err := imagepkg.ParseLayout(req.Layout)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	palette := imagepkg.Palette(req.Palette)
	if len(palette) == 0 && req.AutoStyle {
		palette = h.ai.GeneratePalette(ctx, ai.PaletteKindFor(layout), ai.PaletteRequest{
			Occasion: req.Title,
			Name:     firstNonEmpty(req.RelationName, req.Title),
			Message:  req.Subtitle,
			Quote:    req.Subtitle,
		})
	}

	content := imagepkg.Content{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		RelationName: req.RelationName,
		TermLine:     req.TermLine,
		Images:       h.loader.Load(ctx, req.Images, h.poster.MaxImages),
	}
	poster, err := imagepkg.Compose(imagepkg.NewSurface(), layout, content, palette)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.sendPoster(c, poster.Image, firstNonEmpty(req.Filename, "Jashn-Celebration.jpg"))
}

func (h *Handler) jpegQuality() int {
	if q := h.poster.JPEGQuality; q > 0 && q <= 100 {
		return q
	}
	return imagepkg.ExportQuality
}

func (h *Handler) sendPoster(c *gin.Context, img image.Image, filename string) {
	b, err := imagepkg.EncodeJPEG(img, h.jpegQuality())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendAttachment(c, b, filename)
}

func sendAttachment(c *gin.Context, b []byte, filename string) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "image/jpeg", b)
}
