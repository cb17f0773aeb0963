package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	polaroidPadX = 20.0
	polaroidPadY = 20.0
	polaroidChin = 90.0

	// shadowScale is the resolution of the blurred shadow layer.
	shadowScale = 0.25
)

var (
	shadowColor  = color.NRGBA{A: 38}
	polaroidTint = color.NRGBA{R: 255, G: 255, B: 240, A: 13}
)

func placementTransform(dc *gg.Context, p Placement) {
	dc.Translate(p.X+p.W/2, p.Y+p.H/2)
	dc.Rotate(gg.Radians(p.Rotation))
	dc.Translate(-p.W/2, -p.H/2)
}

// polaroid draws a rotated frame with a drop shadow and the photo
// cover-fitted into its inset. A nil img leaves the inset as placeholder.
func (r *renderer) polaroid(img image.Image, p Placement, frame color.NRGBA) {
	r.shadow(20, func(l *gg.Context) {
		l.Translate(8, 12)
		placementTransform(l, p)
		l.DrawRectangle(0, 0, p.W, p.H)
		l.Fill()
	})

	dc := r.dc
	dc.Push()
	defer dc.Pop()
	placementTransform(dc, p)

	r.fillRect(frame, 0, 0, p.W, p.H)

	iw := int(p.W - 2*polaroidPadX)
	ih := int(p.H - polaroidPadY - polaroidChin)
	if img == nil {
		r.fillRect(PlaceholderColor, polaroidPadX, polaroidPadY, float64(iw), float64(ih))
		return
	}
	dc.DrawImage(coverFit(img, iw, ih, true), int(polaroidPadX), int(polaroidPadY))
	r.fillRect(polaroidTint, polaroidPadX, polaroidPadY, float64(iw), float64(ih))
}

// coverFit crops img to the target aspect ratio and scales it to w x h.
func coverFit(img image.Image, w, h int, topAnchorTall bool) image.Image {
	b := img.Bounds()
	crop := CoverCrop(b.Dx(), b.Dy(), w, h, topAnchorTall).Add(b.Min)
	return imaging.Resize(imaging.Crop(img, crop), w, h, imaging.Lanczos)
}

// shadow renders draw into a reduced-resolution layer, blurs it and
// composites it over the whole canvas. blur follows the canvas shadowBlur
// convention (sigma = blur/2). The main context must be untransformed.
func (r *renderer) shadow(blur float64, draw func(*gg.Context)) {
	w, h := r.poster.Width, r.poster.Height
	layer := gg.NewContext(int(float64(w)*shadowScale), int(float64(h)*shadowScale))
	layer.Scale(shadowScale, shadowScale)
	layer.SetColor(shadowColor)
	draw(layer)

	blurred := imaging.Blur(layer.Image(), blur/2*shadowScale)
	r.dc.DrawImage(imaging.Resize(blurred, w, h, imaging.Linear), 0, 0)
}
