package enhance

import (
	"image"

	"github.com/disintegration/imaging"
)

// Normalize copies img into an opaque NRGBA buffer anchored at (0,0), the
// representation every stage works on. Alpha is set to 255.
func Normalize(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// isEmpty reports whether img has no pixels.
func isEmpty(img image.Image) bool {
	return img.Bounds().Empty()
}
