package imagepkg

import (
	"errors"
	"fmt"
	"strings"
)

// Layout selects one of the two fixed poster designs.
type Layout string

const (
	LayoutCollage     Layout = "LAYOUT_1_COLLAGE"
	LayoutSinglePanel Layout = "LAYOUT_2_JAYANTI"
)

var ErrUnknownLayout = errors.New("unknown poster layout")

// ParseLayout accepts the wire names and a couple of readable aliases.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LayoutCollage), "COLLAGE":
		return LayoutCollage, nil
	case string(LayoutSinglePanel), "JAYANTI", "SINGLE_PANEL", "SINGLE-PANEL":
		return LayoutSinglePanel, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Size returns the fixed pixel dimensions of the layout.
func (l Layout) Size() (int, int, error) {
	switch l {
	case LayoutCollage:
		return 1080, 1920, nil
	case LayoutSinglePanel:
		return 1080, 1080, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownLayout, string(l))
}

// Placement is one polaroid slot: top-left corner, size and rotation in degrees.
type Placement struct {
	X, Y, W, H float64
	Rotation   float64
}

var collagePlacements = map[int][]Placement{
	2: {
		{80, 150, 480, 600, -6},
		{520, 1050, 480, 600, 6},
	},
	3: {
		{60, 100, 450, 550, -8},
		{570, 100, 450, 550, 8},
		{315, 1100, 450, 550, -2},
	},
	4: {
		{40, 100, 420, 520, -10},
		{620, 100, 420, 520, 10},
		{50, 1100, 420, 520, 5},
		{610, 1100, 420, 520, -5},
	},
	5: {
		{30, 80, 400, 500, -12},
		{650, 80, 400, 500, 12},
		{40, 1150, 400, 500, 8},
		{640, 1150, 400, 500, -8},
		{340, 80, 400, 500, 0},
	},
}

// ClampImageCount maps any image count onto the table keys 2..5.
func ClampImageCount(n int) int {
	return max(2, min(5, n))
}

// PlacementsFor returns a copy of the slot table for the clamped count.
func PlacementsFor(count int) []Placement {
	src := collagePlacements[ClampImageCount(count)]
	out := make([]Placement, len(src))
	copy(out, src)
	return out
}
