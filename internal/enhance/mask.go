package enhance

import (
	"image"
	"image/color"
)

// Luma returns the BT.601 luma of an 8-bit RGB triple,
// 0.299*R + 0.587*G + 0.114*B rounded to the nearest integer.
//
// It is the same Y the YCbCr conversion in EqualizeTone produces.
func Luma(r, g, b uint8) uint8 {
	y, _, _ := color.RGBToYCbCr(r, g, b)
	return y
}

// BuildMask marks every pixel whose luma is strictly below threshold.
//
// The returned mask has the same dimensions as img, origin (0,0), and holds
// only MaskDark (255) or MaskLight (0).
func BuildMask(img *image.NRGBA, threshold int) *image.Gray {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	mask := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width*4]
		dst := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		for x := 0; x < width; x++ {
			i := x * 4
			if int(Luma(src[i], src[i+1], src[i+2])) < threshold {
				dst[x] = MaskDark
			} else {
				dst[x] = MaskLight
			}
		}
	}
	return mask
}
