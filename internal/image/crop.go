package imagepkg

import "image"

// tallImageRatio marks portrait photos that are cropped from the top.
const tallImageRatio = 0.65

// CoverCrop returns the source rectangle that, scaled to dstW x dstH, fills
// the target without distortion. The longer dimension is cropped around the
// centre, except that with topAnchorTall a source narrower than 0.65:1 keeps
// its top edge.
func CoverCrop(srcW, srcH, dstW, dstH int, topAnchorTall bool) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rect(0, 0, max(srcW, 0), max(srcH, 0))
	}
	imgRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(dstW) / float64(dstH)

	sw, sh := float64(srcW), float64(srcH)
	var sx, sy float64
	switch {
	case topAnchorTall && imgRatio < tallImageRatio:
		sh = float64(srcW) / targetRatio
	case imgRatio > targetRatio:
		sw = float64(srcH) * targetRatio
		sx = (float64(srcW) - sw) / 2
	default:
		sh = float64(srcW) / targetRatio
		sy = (float64(srcH) - sh) / 2
	}

	r := image.Rect(int(sx+0.5), int(sy+0.5), int(sx+sw+0.5), int(sy+sh+0.5))
	return r.Intersect(image.Rect(0, 0, srcW, srcH))
}
