package session

import (
	"context"
	"fmt"
	"image"

	"github.com/youruser/jashn/internal/ai"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
)

// PaletteSource produces a palette for a poster. Implementations fall back
// on their own; an empty palette means compositor defaults.
type PaletteSource interface {
	GeneratePalette(ctx context.Context, kind ai.PaletteKind, req ai.PaletteRequest) imagepkg.Palette
}

// ImageLoader fetches and decodes photos, dropping the ones that fail.
type ImageLoader interface {
	Load(ctx context.Context, sources []string, limit int) []image.Image
}

type ExportDeps struct {
	Palettes  PaletteSource
	Images    ImageLoader
	Quality   int
	MaxImages int
}

// ExportResult is the encoded poster and its download name.
type ExportResult struct {
	JPEG     []byte
	Filename string
	Poster   *imagepkg.Poster
}

// Export renders the celebration as a poster. Missing styling or photos
// degrade to defaults and placeholders; only encoding can fail.
func (s *Session) Export(ctx context.Context, deps ExportDeps) (*ExportResult, error) {
	d := s.Data
	layout := d.Layout()

	var palette imagepkg.Palette
	if deps.Palettes != nil {
		palette = deps.Palettes.GeneratePalette(ctx, d.PaletteKind(), d.PaletteRequest())
	}

	limit := deps.MaxImages
	if limit <= 0 || limit > imagepkg.MaxPosterImages {
		limit = imagepkg.MaxPosterImages
	}
	content := d.PosterContent()
	if deps.Images != nil && len(d.Photos) > 0 {
		content.Images = deps.Images.Load(ctx, d.Photos, limit)
	}
	if layout == imagepkg.LayoutCollage {
		content.Images = padWithFirst(content.Images, imagepkg.MaxPosterImages)
	}

	poster, err := imagepkg.Compose(imagepkg.NewSurface(), layout, content, palette)
	if err != nil {
		return nil, fmt.Errorf("compose poster: %w", err)
	}

	quality := deps.Quality
	if quality <= 0 || quality > 100 {
		quality = imagepkg.ExportQuality
	}
	b, err := imagepkg.EncodeJPEG(poster.Image, quality)
	if err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"story":  d.StoryID,
		"layout": layout,
		"photos": len(content.Images),
		"bytes":  len(b),
	}).Info("poster exported")

	return &ExportResult{JPEG: b, Filename: d.PosterFilename(), Poster: poster}, nil
}

// padWithFirst repeats the first photo until there are n. An empty list
// stays empty so the collage draws placeholders.
func padWithFirst(imgs []image.Image, n int) []image.Image {
	if len(imgs) == 0 || len(imgs) >= n {
		return imgs
	}
	out := make([]image.Image, len(imgs), n)
	copy(out, imgs)
	for len(out) < n {
		out = append(out, imgs[0])
	}
	return out
}
