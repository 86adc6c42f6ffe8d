package enhance

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Stats summarizes what the pipeline did to an image.
type Stats struct {
	Pixels       int     `json:"pixels"`
	DarkPixels   int     `json:"dark_pixels"`
	DarkFraction float64 `json:"dark_fraction"`

	// Mean CIE L* (0-100) over the dark region, before and after. Both are
	// zero when the mask is empty.
	MeanLightnessBefore float64 `json:"mean_lightness_before"`
	MeanLightnessAfter  float64 `json:"mean_lightness_after"`
}

// Summarize measures the dark region of original and enhanced.
// The three images must share dimensions; extra pixels are ignored.
func Summarize(original, enhanced *image.NRGBA, mask *image.Gray) Stats {
	width, height := mask.Bounds().Dx(), mask.Bounds().Dy()
	st := Stats{Pixels: width * height}

	var before, after float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.Pix[y*mask.Stride+x] != MaskDark {
				continue
			}
			st.DarkPixels++
			before += lightness(original, x, y)
			after += lightness(enhanced, x, y)
		}
	}

	if st.Pixels > 0 {
		st.DarkFraction = float64(st.DarkPixels) / float64(st.Pixels)
	}
	if st.DarkPixels > 0 {
		st.MeanLightnessBefore = before / float64(st.DarkPixels) * 100
		st.MeanLightnessAfter = after / float64(st.DarkPixels) * 100
	}
	return st
}

func lightness(img *image.NRGBA, x, y int) float64 {
	i := y*img.Stride + x*4
	c := colorful.Color{
		R: float64(img.Pix[i]) / 255,
		G: float64(img.Pix[i+1]) / 255,
		B: float64(img.Pix[i+2]) / 255,
	}
	l, _, _ := c.Lab()
	return l
}
