package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// Share QR colours of a story page.
var (
	ShareQRForeground = color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}
	ShareQRBackground = color.NRGBA{R: 0x3D, G: 0x10, B: 0x10, A: 0xFF}
)

// GenerateQRPNG returns PNG bytes of a black-on-white QR code.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return GenerateStyledQRPNG(text, size, color.Black, color.White)
}

// GenerateStyledQRPNG returns PNG bytes of a QR code in the given colours.
func GenerateStyledQRPNG(text string, size int, fg, bg color.Color) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("qr: empty text")
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	b, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return b, nil
}

// GenerateQRImage returns the QR code decoded for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
