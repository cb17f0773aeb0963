package imagepkg

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxSubtitleRunes is the collage subtitle limit before the ellipsis.
const MaxSubtitleRunes = 140

// Tiers are the length-derived sizes used when no override or default applies.
// Title: <=20 runes, <=50 runes, longer. Subtitle: <=50 runes, longer.
type Tiers struct {
	Title    [3]float64
	Subtitle [2]float64
}

// CollageTiers drive font sizing on the collage layout.
var CollageTiers = Tiers{
	Title:    [3]float64{55, 40, 30},
	Subtitle: [2]float64{24, 18},
}

// FontSize picks the size for a text block. A positive numeric override wins,
// then a positive layout default, then the length tier.
func FontSize(text string, isTitle bool, override string, def float64, tiers Tiers) float64 {
	if v, ok := parseLeadingInt(override); ok && v > 0 {
		return float64(v)
	}
	if def > 0 {
		return def
	}
	n := utf8.RuneCountInString(text)
	if isTitle {
		switch {
		case n <= 20:
			return tiers.Title[0]
		case n <= 50:
			return tiers.Title[1]
		default:
			return tiers.Title[2]
		}
	}
	if n <= 50 {
		return tiers.Subtitle[0]
	}
	return tiers.Subtitle[1]
}

// parseLeadingInt reads an optional sign and the leading digits, so "48px" is 48.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for i, r := range s {
		if i == 0 && (r == '-' || r == '+') {
			end = 1
			continue
		}
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			break
		}
		end = i + 1
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// TruncateSubtitle cuts s to MaxSubtitleRunes and appends "..." when longer.
func TruncateSubtitle(s string) string {
	if utf8.RuneCountInString(s) <= MaxSubtitleRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxSubtitleRunes]) + "..."
}

// WrapText packs words greedily: a word joins the current line only while the
// measured width stays under maxWidth. A word wider than maxWidth sits alone
// on its own line. Empty text yields a single empty line.
func WrapText(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) < maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleMedium
)

var loadFonts = sync.OnceValues(func() (map[fontStyle]*truetype.Font, error) {
	sources := map[fontStyle][]byte{
		styleRegular: goregular.TTF,
		styleBold:    gobold.TTF,
		styleItalic:  goitalic.TTF,
		styleMedium:  gomedium.TTF,
	}
	out := make(map[fontStyle]*truetype.Font, len(sources))
	for style, ttf := range sources {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", style, err)
		}
		out[style] = f
	}
	return out, nil
})

// newFace builds a face sized in pixels. Faces cache glyphs and are not shared
// between renders.
func newFace(style fontStyle, size float64) (font.Face, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fonts[style], &truetype.Options{
		Size:    size,
		Hinting: font.HintingNone,
	}), nil
}
