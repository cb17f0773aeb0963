package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
)

// PaletteKind selects which poster layout a palette is generated for.
type PaletteKind string

const (
	PaletteCollage     PaletteKind = "collage"
	PaletteSinglePanel PaletteKind = "single_panel"
)

// PaletteKindFor maps a poster layout to its palette kind.
func PaletteKindFor(l imagepkg.Layout) PaletteKind {
	if l == imagepkg.LayoutSinglePanel {
		return PaletteSinglePanel
	}
	return PaletteCollage
}

// PaletteRequest is the body of both styling endpoints.
type PaletteRequest struct {
	Occasion string `json:"occasion"`
	Name     string `json:"name"`
	Message  string `json:"message,omitempty"`
	Quote    string `json:"quote,omitempty"`
}

const paletteTemperature = 0.85

var collageAesthetics = []string{
	"Soft & Dreamy Pastels",
	"Dark Academia / Moody Luxury",
	"Vibrant & Cheerful",
	"Earthy & Muted Boho",
	"Royal Jewel Tones (Emerald, Ruby, Sapphire)",
	"Warm Sunset Glow",
	"Cool Ocean Blues & Aquas",
	"Vintage & Nostalgic",
	"Minimalist Monochrome Elegance",
	"Desert Sand & Terracotta",
}

var singlePanelAesthetics = []string{
	"Earthy & Spiritual (Saffron, Sand, Sage)",
	"Royal Festive (Marigold, Deep Red, Emerald)",
	"Modern Minimalist (Slate, Cream, Muted Navy)",
	"Warm Vintage Sepia (Terracotta, Brown, Cream)",
	"Soft Spiritual Pastels (Peach, Mint, Lavender)",
	"Dark Mode Luxury (Charcoal, Gold, Deep Green)",
	"Vibrant Celebration (Pink, Orange, Yellow)",
	"Cool & Calm (Teal, Aqua, Soft Gray)",
}

// FallbackPalette is returned whenever generation fails.
func FallbackPalette(kind PaletteKind) imagepkg.Palette {
	if kind == PaletteSinglePanel {
		return imagepkg.DefaultPalette(imagepkg.LayoutSinglePanel)
	}
	return imagepkg.Palette{
		imagepkg.RoleBackground:       "#F9F5EB",
		imagepkg.RoleFrame:            "#FFFFFF",
		imagepkg.RoleGreetingCard:     "#FFFFFF",
		imagepkg.RoleTitleText:        "#1A1A1A",
		imagepkg.RoleSubtitleText:     "#666666",
		imagepkg.RoleDecorativeAccent: "#D4AF37",
	}
}

// GeneratePalette asks the model for a colour palette. It never fails: any
// problem upstream yields FallbackPalette(kind).
func (s *Service) GeneratePalette(ctx context.Context, kind PaletteKind, req PaletteRequest) imagepkg.Palette {
	if kind != PaletteSinglePanel {
		kind = PaletteCollage
	}
	if !s.HasCredentials() {
		logger.Warnf("palette: %v, using fallback", ErrNoCredentials)
		return FallbackPalette(kind)
	}

	content, err := s.complete(ctx, s.palettePrompt(kind, req), paletteTemperature, 0)
	if err != nil {
		logger.Warnf("palette: %v, using fallback", err)
		return FallbackPalette(kind)
	}
	p, err := parsePalette(content)
	if err != nil {
		logger.Warnf("palette: %v, using fallback", err)
		return FallbackPalette(kind)
	}
	return p
}

func (s *Service) palettePrompt(kind PaletteKind, req PaletteRequest) string {
	attempt := s.now().UnixMilli()
	if kind == PaletteSinglePanel {
		aesthetic := singlePanelAesthetics[s.pick(len(singlePanelAesthetics))]
		return fmt.Sprintf(singlePanelPrompt, req.Occasion, aesthetic, attempt)
	}
	aesthetic := collageAesthetics[s.pick(len(collageAesthetics))]
	return fmt.Sprintf(collagePrompt, req.Occasion, aesthetic, attempt)
}

// parsePalette reads a JSON object from a model reply that may be wrapped in
// markdown fences. Scalar values are kept as strings.
func parsePalette(content string) (imagepkg.Palette, error) {
	content = stripFences(content)
	if content == "" {
		return nil, fmt.Errorf("empty reply")
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse palette json: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("palette reply is not an object")
	}
	out := make(imagepkg.Palette, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	return out, nil
}

var jsonFence = regexp.MustCompile("(?i)```json")

func stripFences(s string) string {
	s = jsonFence.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

const collagePrompt = `
Role: You are an elite, award-winning UI/UX Designer and Color Theorist.
Task: Create a highly professional, aesthetically perfect, and MODERN color palette for a 1080x1920 portrait poster.
Occasion: "%s"
Aesthetic Theme to Follow: "%s" (Attempt ID: %d)

Layout Structure & Color Assignment Rules:
1. "backgroundColor": The base canvas. Must set the mood.
2. "frameColor": The border of 5 polaroid photos. MUST contrast perfectly with the backgroundColor so the photos pop out.
3. "greetingCardColor": The central message card. MUST contrast with the backgroundColor so it acts as a focal point.
4. "titleTextColor" & "subtitleTextColor": These go INSIDE the greeting card. If "greetingCardColor" is light, these texts MUST be very dark. If the card is dark, these texts MUST be light. They must be highly readable.
5. "decorativeAccentColor": For small background dots/lines. Should complement the overall palette.

Design Standards:
- Do NOT use raw neon colors (like #FF0000 or #00FF00). Use sophisticated, modern hex codes.
- Every color must belong to a unified harmony.

Return ONLY a raw JSON object. Do not wrap it in a code fence or add any conversational text.
Required exact keys:
{
  "backgroundColor": "HEX_CODE",
  "frameColor": "HEX_CODE",
  "greetingCardColor": "HEX_CODE",
  "titleTextColor": "HEX_CODE",
  "subtitleTextColor": "HEX_CODE",
  "decorativeAccentColor": "HEX_CODE"
}
`

const singlePanelPrompt = `
Role: You are an elite, award-winning UI/UX Designer and Color Theorist specializing in Indian cultural aesthetics.
Task: Create a highly professional, aesthetically perfect color palette for a 1080x1080 square poster.
Occasion: "%s"
Aesthetic Theme to Follow: "%s" (Attempt ID: %d)

Layout Structure & Color Assignment Rules:
1. "posterBackgroundColor": The main background canvas.
2. "decorativeShape1Color" to "4": Four large organic blobs in the background. They MUST harmonize with "posterBackgroundColor".
3. "imageFrameBorderColor": A thick border around the main image. Usually crisp White, Cream, or a deep accent color.
4. "textPanelColor": The solid block at the bottom for text. Visually distinct but complementary to the image above it.
5. "titleTextColor" & "subtitleTextColor": These sit INSIDE "textPanelColor" and MUST have high contrast with it.
6. "accentLineColor": For elegant curve lines. Usually a metallic tone or a strong elegant accent.

Design Standards:
- Do NOT use default HTML colors (like pure blue #0000FF). Use sophisticated, muted, rich, or pastel hex codes.
- Match the occasion (Respectful for Jayanti, Festive for Diwali, Modern for Special Days).

Return ONLY a raw JSON object. Do not wrap it in a code fence or add any conversational text.
Required exact keys:
{
  "posterBackgroundColor": "HEX_CODE",
  "decorativeShape1Color": "HEX_CODE",
  "decorativeShape2Color": "HEX_CODE",
  "decorativeShape3Color": "HEX_CODE",
  "decorativeShape4Color": "HEX_CODE",
  "accentLineColor": "HEX_CODE",
  "imageFrameBorderColor": "HEX_CODE",
  "textPanelColor": "HEX_CODE",
  "titleTextColor": "HEX_CODE",
  "subtitleTextColor": "HEX_CODE"
}
`
