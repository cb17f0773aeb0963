package imagepkg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMissingKeysUseDefaults(t *testing.T) {
	for _, l := range []Layout{LayoutCollage, LayoutSinglePanel} {
		var empty Palette
		resolved := empty.Resolve(l)
		defs := defaultsFor(l)
		assert.Len(t, resolved, len(defs))
		for role, hex := range defs {
			want, ok := parseHex(hex)
			assert.True(t, ok, hex)
			assert.Equal(t, want, resolved[role], "%s %s", l, role)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	p := Palette{
		RoleBackground:   "#102030",
		RoleTitleText:    "abc",
		RoleSubtitleText: "",
		RoleFrame:        "#GGGGGG",
	}
	c := p.Resolve(LayoutCollage)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, c[RoleBackground])
	assert.Equal(t, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF}, c[RoleTitleText])
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}, c[RoleSubtitleText])
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c[RoleFrame])
}

func TestPaletteGetNil(t *testing.T) {
	var p Palette
	assert.Equal(t, "", p.Get(KeyTitleFontSize))
	assert.Equal(t, "left", Palette{KeyTextAlignment: " left "}.Get(KeyTextAlignment))
}

func TestDefaultPaletteIsCopy(t *testing.T) {
	p := DefaultPalette(LayoutSinglePanel)
	p[RoleTextPanel] = "#000000"
	assert.Equal(t, "#F3EFE6", DefaultPalette(LayoutSinglePanel)[RoleTextPanel])
}
