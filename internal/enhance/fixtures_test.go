package enhance

import (
	"image"
	"image/color"
	"math/rand"
)

// solidImage creates an opaque image filled with one color.
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// checkerboard alternates black and white single pixels.
func checkerboard(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

// grayRamp creates a horizontal gray ramp from lo to hi.
func grayRamp(width, height int, lo, hi uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := int(lo)
			if width > 1 {
				v += (int(hi) - int(lo)) * x / (width - 1)
			}
			img.SetNRGBA(x, y, color.NRGBA{uint8(v), uint8(v), uint8(v), 255})
		}
	}
	return img
}

// randomImage creates a reproducible noisy image with a darker left half.
func randomImage(width, height int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			limit := 256
			if x < width/2 {
				limit = 120
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(limit)),
				G: uint8(rng.Intn(limit)),
				B: uint8(rng.Intn(limit)),
				A: 255,
			})
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
