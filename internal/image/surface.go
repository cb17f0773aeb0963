package imagepkg

import "image"

// Surface is a caller-owned raster target. Compose resizes it to the
// layout's dimensions and draws into it in place.
type Surface struct {
	img *image.RGBA
}

// NewSurface returns an empty surface; its size is set by Compose.
func NewSurface() *Surface {
	return &Surface{}
}

// Image returns the current raster, nil before the first Compose.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// resize reallocates the raster, which also clears it.
func (s *Surface) resize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Content is what goes onto a poster. Nil entries in Images are photos that
// failed to decode; they are skipped.
type Content struct {
	Title        string
	Subtitle     string
	Images       []image.Image
	RelationName string
	TermLine     string
}

// Text roles recorded in Poster.Lines.
const (
	LineTitle     = "title"
	LineRelation  = "relation"
	LineTerm      = "term"
	LineSubtitle  = "subtitle"
	LineWatermark = "watermark"
)

// TextLine records one drawn line of text; Y is the anchor line it was drawn on.
type TextLine struct {
	Role string
	Text string
	Size float64
	Y    float64
}

// Poster is the result of a Compose call.
type Poster struct {
	Layout    Layout
	Width     int
	Height    int
	Image     *image.RGBA
	Polaroids []Placement
	Lines     []TextLine
}

// LinesFor returns the recorded lines of one role in draw order.
func (p *Poster) LinesFor(role string) []TextLine {
	var out []TextLine
	for _, l := range p.Lines {
		if l.Role == role {
			out = append(out, l)
		}
	}
	return out
}
