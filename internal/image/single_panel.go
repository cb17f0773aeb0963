package imagepkg

import "math"

const (
	panelMargin      = 90.0
	panelSize        = 900.0
	panelBorder      = 20.0
	panelImageShare  = 0.7
	panelTitleGap    = 25.0
	panelTextMargin  = 120.0
	panelAlignInset  = 60.0
	panelTitleSize   = 72.0
	panelSubSize     = 32.0
	defaultPanelText = "Special Occasion"
)

func (r *renderer) singlePanel(c Content) error {
	dc := r.dc
	width, height := float64(r.poster.Width), float64(r.poster.Height)

	titleSize := FontSize(c.Title, true, r.palette.Get(KeyTitleFontSize), panelTitleSize, CollageTiers)
	subSize := FontSize(c.Subtitle, false, r.palette.Get(KeySubtitleFontSize), panelSubSize, CollageTiers)

	r.fillRect(r.colors[RolePosterBackground], 0, 0, width, height)

	blobs := []struct {
		role   string
		x, y   float64
		rx, ry float64
	}{
		{RoleDecorativeShape1, 0, 0, 450, 350},
		{RoleDecorativeShape2, width, 0, 400, 450},
		{RoleDecorativeShape3, 0, height, 500, 400},
		{RoleDecorativeShape4, width, height, 400, 350},
	}
	for _, b := range blobs {
		dc.SetColor(withAlpha(r.colors[b.role], 0.8))
		dc.DrawEllipse(b.x, b.y, b.rx, b.ry)
		dc.Fill()
	}

	dc.SetColor(withAlpha(r.colors[RoleAccentLine], 0.8))
	dc.SetLineWidth(3)
	dc.NewSubPath()
	dc.DrawArc(width, 250, 300, math.Pi/2, math.Pi)
	dc.Stroke()
	dc.NewSubPath()
	dc.DrawArc(150, height, 250, 0, 3*math.Pi/2)
	dc.Stroke()

	dc.SetColor(r.colors[RoleImageFrameBorder])
	dc.SetLineWidth(panelBorder)
	dc.DrawRectangle(panelMargin-panelBorder/2, panelMargin-panelBorder/2, panelSize+panelBorder, panelSize+panelBorder)
	dc.Stroke()

	imgH := panelSize * panelImageShare
	r.fillRect(PlaceholderColor, panelMargin, panelMargin, panelSize, imgH)
	if imgs := usableImages(c.Images); len(imgs) > 0 {
		dc.DrawImage(coverFit(imgs[0], int(panelSize), int(imgH), false), int(panelMargin), int(panelMargin))
	}

	panelY := panelMargin + imgH
	panelH := panelSize - imgH
	r.fillRect(r.colors[RoleTextPanel], panelMargin, panelY, panelSize, panelH)

	x, ax := panelMargin+panelSize/2, 0.5
	switch r.palette.Get(KeyTextAlignment) {
	case "left":
		x, ax = panelMargin+panelAlignInset, 0
	case "right":
		x, ax = panelMargin+panelSize-panelAlignInset, 1
	}

	if err := r.setFont(styleItalic, subSize); err != nil {
		return err
	}
	lines := WrapText(r.measure, c.Subtitle, panelSize-panelTextMargin)
	lineHeight := subSize * lineSpacing

	total := titleSize + panelTitleGap + float64(len(lines))*lineHeight
	y := panelY + panelH/2 - total/2 + titleSize/2

	title := c.Title
	if title == "" {
		title = defaultPanelText
	}
	if err := r.setFont(styleBold, titleSize); err != nil {
		return err
	}
	dc.SetColor(r.colors[RoleTitleText])
	r.text(LineTitle, title, titleSize, x, y, ax)

	y += panelTitleGap + lineHeight/2
	if err := r.setFont(styleItalic, subSize); err != nil {
		return err
	}
	dc.SetColor(r.colors[RoleSubtitleText])
	for _, line := range lines {
		r.text(LineSubtitle, line, subSize, x, y, ax)
		y += lineHeight
	}
	return nil
}
