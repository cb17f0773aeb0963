package imagepkg

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	watermarkText = "CREATED WITH JASHN"

	cardSize       = 750.0
	cardCutout     = 20.0
	cardCutoutGap  = 30.0
	cardTextMargin = 140.0

	collageTitleSize = 55.0
	collageSubSize   = 24.0
	relationSize     = 36.0
	termSize         = 20.0
	gapRelation      = 40.0
	gapTerm          = 30.0
	gapMessage       = 50.0
	lineSpacing      = 1.5
)

var errNilSurface = errors.New("nil surface")

// Compose draws content onto s using one of the two fixed layouts. The
// surface is sized before anything is drawn, so on error it is either
// untouched (unknown layout) or fully sized.
func Compose(s *Surface, layout Layout, content Content, palette Palette) (*Poster, error) {
	if s == nil {
		return nil, errNilSurface
	}
	w, h, err := layout.Size()
	if err != nil {
		return nil, err
	}
	s.resize(w, h)

	r := &renderer{
		dc:      gg.NewContextForRGBA(s.img),
		palette: palette,
		colors:  palette.Resolve(layout),
		faces:   make(map[faceKey]font.Face),
		poster: &Poster{
			Layout: layout,
			Width:  w,
			Height: h,
			Image:  s.img,
		},
	}

	switch layout {
	case LayoutCollage:
		err = r.collage(content)
	case LayoutSinglePanel:
		err = r.singlePanel(content)
	}
	if err != nil {
		return nil, err
	}
	return r.poster, nil
}

type faceKey struct {
	style fontStyle
	size  float64
}

type renderer struct {
	dc      *gg.Context
	palette Palette
	colors  Colors
	faces   map[faceKey]font.Face
	poster  *Poster
}

func (r *renderer) setFont(style fontStyle, size float64) error {
	key := faceKey{style, size}
	f, ok := r.faces[key]
	if !ok {
		var err error
		if f, err = newFace(style, size); err != nil {
			return err
		}
		r.faces[key] = f
	}
	r.dc.SetFontFace(f)
	return nil
}

func (r *renderer) measure(s string) float64 {
	w, _ := r.dc.MeasureString(s)
	return w
}

// text draws s with its vertical middle on y; ax is the horizontal anchor.
func (r *renderer) text(role, s string, size, x, y, ax float64) {
	r.dc.DrawStringAnchored(s, x, y, ax, 0.5)
	r.poster.Lines = append(r.poster.Lines, TextLine{Role: role, Text: s, Size: size, Y: y})
}

func (r *renderer) fillRect(c color.Color, x, y, w, h float64) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}

// usableImages drops the slots of photos that failed to decode.
func usableImages(imgs []image.Image) []image.Image {
	out := make([]image.Image, 0, len(imgs))
	for _, img := range imgs {
		if img != nil {
			out = append(out, img)
		}
	}
	return out
}

func (r *renderer) collage(c Content) error {
	dc := r.dc
	width, height := float64(r.poster.Width), float64(r.poster.Height)
	decor := r.colors[RoleDecorativeAccent]

	r.fillRect(r.colors[RoleBackground], 0, 0, width, height)
	dc.SetColor(withAlpha(decor, 0.2))
	dc.DrawCircle(100, 300, 10)
	dc.Fill()
	dc.DrawCircle(950, 1700, 15)
	dc.Fill()

	cardX := (width - cardSize) / 2
	cardY := (height - cardSize) / 2
	r.shadow(30, func(l *gg.Context) {
		l.Translate(0, 10)
		scallopedCard(l, cardX, cardY, cardSize, cardSize)
		l.Fill()
	})
	dc.SetColor(r.colors[RoleGreetingCard])
	scallopedCard(dc, cardX, cardY, cardSize, cardSize)
	dc.Fill()

	imgs := usableImages(c.Images)
	if len(imgs) == 1 {
		imgs = append(imgs, imgs[0])
	}
	for i, slot := range PlacementsFor(len(imgs)) {
		var img image.Image
		if i < len(imgs) {
			img = imgs[i]
		}
		r.polaroid(img, slot, r.colors[RoleFrame])
		r.poster.Polaroids = append(r.poster.Polaroids, slot)
	}

	if err := r.collageText(c, width/2, cardY+cardSize/2); err != nil {
		return err
	}

	if err := r.setFont(styleBold, 16); err != nil {
		return err
	}
	dc.SetColor(decor)
	y := height - 40
	dc.DrawStringAnchored(watermarkText, width/2, y, 0.5, 0)
	r.poster.Lines = append(r.poster.Lines, TextLine{Role: LineWatermark, Text: watermarkText, Size: 16, Y: y})
	return nil
}

// scallopedCard traces the card outline: a rectangle whose top edge has
// square notches stepped across it.
func scallopedCard(dc *gg.Context, x, y, w, h float64) {
	dc.NewSubPath()
	dc.MoveTo(x, y)
	for i := x + cardCutoutGap; i < x+w-cardCutoutGap; i += cardCutout + cardCutoutGap {
		dc.LineTo(i, y)
		dc.LineTo(i, y+cardCutout)
		dc.LineTo(i+cardCutout, y+cardCutout)
		dc.LineTo(i+cardCutout, y)
	}
	dc.LineTo(x+w, y)
	dc.LineTo(x+w, y+h)
	dc.LineTo(x, y+h)
	dc.ClosePath()
}

func (r *renderer) collageText(c Content, centerX, centerY float64) error {
	titleSize := FontSize(c.Title, true, r.palette.Get(KeyTitleFontSize), collageTitleSize, CollageTiers)
	subSize := FontSize(c.Subtitle, false, r.palette.Get(KeySubtitleFontSize), collageSubSize, CollageTiers)

	msg := TruncateSubtitle(c.Subtitle)
	if err := r.setFont(styleItalic, subSize); err != nil {
		return err
	}
	lines := WrapText(r.measure, msg, cardSize-cardTextMargin)
	lineHeight := subSize * lineSpacing

	total := titleSize
	if c.RelationName != "" {
		total += gapRelation + relationSize
	}
	if c.TermLine != "" {
		total += gapTerm + termSize
	}
	if msg != "" {
		total += gapMessage + float64(len(lines))*lineHeight
	}
	y := centerY - total/2 + titleSize/2

	titleColor := r.colors[RoleTitleText]
	subColor := r.colors[RoleSubtitleText]

	if err := r.setFont(styleItalic, titleSize); err != nil {
		return err
	}
	r.dc.SetColor(titleColor)
	r.text(LineTitle, c.Title, titleSize, centerX, y, 0.5)

	if c.RelationName != "" {
		y += gapRelation + relationSize/2
		if err := r.setFont(styleBold, relationSize); err != nil {
			return err
		}
		r.dc.SetColor(titleColor)
		r.text(LineRelation, strings.ToUpper(c.RelationName), relationSize, centerX, y, 0.5)
	}

	if c.TermLine != "" {
		y += gapTerm + termSize/2
		if err := r.setFont(styleMedium, termSize); err != nil {
			return err
		}
		r.dc.SetColor(subColor)
		r.text(LineTerm, c.TermLine, termSize, centerX, y, 0.5)
	}

	if msg != "" {
		y += gapMessage + lineHeight/2 - 10
		if err := r.setFont(styleItalic, subSize); err != nil {
			return err
		}
		r.dc.SetColor(subColor)
		for _, line := range lines {
			r.text(LineSubtitle, line, subSize, centerX, y, 0.5)
			y += lineHeight
		}
	}
	return nil
}
