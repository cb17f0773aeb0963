package imagepkg

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps colour roles to hex strings. It may also carry the numeric
// overrides titleFontSize and subtitleFontSize as strings.
type Palette map[string]string

const (
	KeyTitleFontSize    = "titleFontSize"
	KeySubtitleFontSize = "subtitleFontSize"
	KeyTextAlignment    = "textAlignment"
)

// Colour roles of the collage layout.
const (
	RoleBackground       = "backgroundColor"
	RoleDecorativeAccent = "decorativeAccentColor"
	RoleGreetingCard     = "greetingCardColor"
	RoleFrame            = "frameColor"
	RoleTitleText        = "titleTextColor"
	RoleSubtitleText     = "subtitleTextColor"
)

// Colour roles of the single-panel layout (title/subtitle roles are shared).
const (
	RolePosterBackground = "posterBackgroundColor"
	RoleDecorativeShape1 = "decorativeShape1Color"
	RoleDecorativeShape2 = "decorativeShape2Color"
	RoleDecorativeShape3 = "decorativeShape3Color"
	RoleDecorativeShape4 = "decorativeShape4Color"
	RoleAccentLine       = "accentLineColor"
	RoleImageFrameBorder = "imageFrameBorderColor"
	RoleTextPanel        = "textPanelColor"
)

var collageDefaults = map[string]string{
	RoleBackground:       "#F9F5EB",
	RoleDecorativeAccent: "#A89F91",
	RoleGreetingCard:     "#FFFFFF",
	RoleTitleText:        "#1A1A1A",
	RoleSubtitleText:     "#333333",
	RoleFrame:            "#FFFFFF",
}

var singlePanelDefaults = map[string]string{
	RolePosterBackground: "#F4F1EC",
	RoleDecorativeShape1: "#7D95A5",
	RoleDecorativeShape2: "#C3D5C0",
	RoleDecorativeShape3: "#BED0C3",
	RoleDecorativeShape4: "#B3A99D",
	RoleAccentLine:       "#D1B67F",
	RoleImageFrameBorder: "#FFFFFF",
	RoleTextPanel:        "#F3EFE6",
	RoleTitleText:        "#2B3A4A",
	RoleSubtitleText:     "#1A1A1A",
}

// PlaceholderColor fills image regions that have no photo.
var PlaceholderColor = color.NRGBA{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF}

// DefaultPalette returns a fresh copy of the hardcoded palette for a layout.
func DefaultPalette(l Layout) Palette {
	out := Palette{}
	for k, v := range defaultsFor(l) {
		out[k] = v
	}
	return out
}

func defaultsFor(l Layout) map[string]string {
	if l == LayoutSinglePanel {
		return singlePanelDefaults
	}
	return collageDefaults
}

// Colors is a palette resolved to concrete colours.
type Colors map[string]color.NRGBA

// Resolve produces a colour for every role of the layout, taking the
// palette value when it parses and the hardcoded default otherwise.
func (p Palette) Resolve(l Layout) Colors {
	defs := defaultsFor(l)
	out := make(Colors, len(defs))
	for role, def := range defs {
		out[role] = p.Color(role, def)
	}
	return out
}

// Color parses the role's value, falling back to def.
func (p Palette) Color(role, def string) color.NRGBA {
	if c, ok := parseHex(p[role]); ok {
		return c
	}
	c, _ := parseHex(def)
	return c
}

// Get returns a trimmed value; a nil palette behaves as empty.
func (p Palette) Get(key string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p[key])
}

func parseHex(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{A: 0xFF}, false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{A: 0xFF}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, true
}
