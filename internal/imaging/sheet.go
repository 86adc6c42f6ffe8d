package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ComparisonSheet lays out the original, the mask, and the enhanced image
// left to right on a dark background, separated by gap pixels.
//
// Panels are pasted at their natural size; the sheet is as tall as the
// tallest panel.
func ComparisonSheet(original, mask, enhanced image.Image, gap int) *image.NRGBA {
	if gap < 0 {
		gap = 0
	}
	panels := []image.Image{original, mask, enhanced}

	width, height := gap, 0
	for _, p := range panels {
		b := p.Bounds()
		width += b.Dx() + gap
		if b.Dy() > height {
			height = b.Dy()
		}
	}
	height += 2 * gap

	sheet := imaging.New(width, height, color.NRGBA{24, 24, 24, 255})
	x := gap
	for _, p := range panels {
		sheet = imaging.Paste(sheet, p, image.Pt(x, gap))
		x += p.Bounds().Dx() + gap
	}
	return sheet
}
