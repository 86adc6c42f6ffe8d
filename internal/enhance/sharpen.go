package enhance

import (
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
)

// Sharpen convolves each color channel of img with SharpenKernel.
//
// Results are clamped to 0-255 and edge pixels are replicated outside the
// image, matching GaussianBlur. The output has the same dimensions as img.
func Sharpen(img *image.NRGBA) *image.NRGBA {
	if isEmpty(img) {
		return imaging.Clone(img)
	}

	k := convolution.NewKernel(3, 3)
	copy(k.Matrix, SharpenKernel[:])

	// Sums are integral here, so the 0.5 bias never changes a value.
	sharpened := convolution.Convolve(img, k, &convolution.Options{Bias: 0.5, Wrap: false, KeepAlpha: true})
	return imaging.Clone(sharpened)
}
