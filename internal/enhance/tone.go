package enhance

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
)

// Fixed binomial tables used for small kernels when sigma is derived from
// the kernel size. They match the usual Gaussian-blur convention exactly.
var smallGaussianTables = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// GaussianKernel returns a normalized 1-D Gaussian of the given odd size.
//
// Sizes 1, 3, 5 and 7 use fixed binomial weights. Larger sizes derive sigma
// from the size as 0.3*((size-1)*0.5-1)+0.8.
func GaussianKernel(size int) []float64 {
	if table, ok := smallGaussianTables[size]; ok {
		out := make([]float64, len(table))
		copy(out, table)
		return out
	}

	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	radius := float64(size-1) / 2
	weights := make([]float64, size)
	var sum float64
	for i := range weights {
		d := float64(i) - radius
		weights[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// GaussianBlur smooths img with a separable size x size Gaussian.
// Pixels outside the image replicate the nearest edge pixel.
func GaussianBlur(img *image.NRGBA, size int) *image.NRGBA {
	if isEmpty(img) || size <= 1 {
		return imaging.Clone(img)
	}

	weights := GaussianKernel(size)
	k := convolution.NewKernel(size, 1)
	copy(k.Matrix, weights)

	// Bias 0.5 turns bild's truncation into round-to-nearest.
	opts := &convolution.Options{Bias: 0.5, Wrap: false, KeepAlpha: true}
	horizontal := convolution.Convolve(img, k, opts)
	vertical := convolution.Convolve(horizontal, k.Transposed(), opts)
	return imaging.Clone(vertical)
}

// EqualizeLuma histogram-equalizes an 8-bit channel.
//
// Each value v maps to round((cdf[v]-cdfMin)/(total-cdfMin)*255), where
// cdfMin is the cumulative count of the lowest occupied bin. When every sample
// shares one value the denominator is zero and the channel is returned
// unchanged.
func EqualizeLuma(y []uint8) []uint8 {
	out := make([]uint8, len(y))
	copy(out, y)
	if len(y) == 0 {
		return out
	}

	var hist [256]int
	for _, v := range y {
		hist[v]++
	}

	var cdf [256]int
	running := 0
	cdfMin := -1
	for v := 0; v < 256; v++ {
		running += hist[v]
		cdf[v] = running
		if cdfMin < 0 && hist[v] > 0 {
			cdfMin = running
		}
	}

	total := len(y)
	denom := total - cdfMin
	if denom == 0 {
		return out
	}

	var lut [256]uint8
	for v := 0; v < 256; v++ {
		mapped := math.Round(float64(cdf[v]-cdfMin) / float64(denom) * 255)
		lut[v] = uint8(math.Max(0, math.Min(255, mapped)))
	}
	for i, v := range y {
		out[i] = lut[v]
	}
	return out
}

// EqualizeTone denoises img and stretches its brightness.
//
// The image is blurred, converted to YCbCr, its Y channel equalized with
// EqualizeLuma, and converted back to RGB. Chroma passes through unchanged.
func EqualizeTone(img *image.NRGBA, blurSize int) *image.NRGBA {
	blurred := GaussianBlur(img, blurSize)
	bounds := blurred.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	n := width * height

	ys := make([]uint8, n)
	cbs := make([]uint8, n)
	crs := make([]uint8, n)
	for y := 0; y < height; y++ {
		row := blurred.Pix[y*blurred.Stride:]
		for x := 0; x < width; x++ {
			i := x * 4
			ys[y*width+x], cbs[y*width+x], crs[y*width+x] = color.RGBToYCbCr(row[i], row[i+1], row[i+2])
		}
	}

	eq := EqualizeLuma(ys)

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < width; x++ {
			j := y*width + x
			r, g, b := color.YCbCrToRGB(eq[j], cbs[j], crs[j])
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = r, g, b, 0xff
		}
	}
	return out
}
